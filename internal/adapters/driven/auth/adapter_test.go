package auth

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vitragvani-labs/granth-core/internal/core/domain"
)

// MinCost keeps the bcrypt work factor out of the test runtime
func newTestAdapter() *Adapter {
	return NewAdapterWithCost("test-secret", bcrypt.MinCost)
}

func TestHashAndVerifyPassword(t *testing.T) {
	adapter := newTestAdapter()

	hash, err := adapter.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the password")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	if !adapter.VerifyPassword("secret123", hash) {
		t.Error("expected the correct password to verify")
	}
	if adapter.VerifyPassword("wrong", hash) {
		t.Error("expected a wrong password to fail")
	}
	if adapter.VerifyPassword("secret123", "not-a-hash") {
		t.Error("expected a malformed hash to fail")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	adapter := newTestAdapter()
	now := time.Now()

	claims := &domain.TokenClaims{
		UserID:    "user-1",
		Email:     "jiji@vitragvani.org",
		SessionID: "session-1",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}

	token, err := adapter.GenerateToken(claims)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := adapter.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.UserID != claims.UserID || parsed.Email != claims.Email || parsed.SessionID != claims.SessionID {
		t.Errorf("claims mismatch: %+v", parsed)
	}
	if parsed.ExpiresAt != claims.ExpiresAt {
		t.Errorf("expected expiry %d, got %d", claims.ExpiresAt, parsed.ExpiresAt)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	now := time.Now()
	claims := &domain.TokenClaims{
		UserID:    "user-1",
		SessionID: "session-1",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}

	token, err := newTestAdapter().GenerateToken(claims)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewAdapterWithCost("different-secret", bcrypt.MinCost)
	if _, err := other.ParseToken(token); err == nil {
		t.Error("expected a token signed with another secret to fail")
	}
}

func TestParseToken_Tampered(t *testing.T) {
	adapter := newTestAdapter()
	now := time.Now()
	token, err := adapter.GenerateToken(&domain.TokenClaims{
		UserID:    "user-1",
		SessionID: "session-1",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := adapter.ParseToken(tampered); err == nil {
		t.Error("expected a tampered token to fail")
	}
	if _, err := adapter.ParseToken("not.a.jwt"); err == nil {
		t.Error("expected garbage to fail")
	}
}

func TestParseToken_Expired(t *testing.T) {
	adapter := newTestAdapter()
	now := time.Now()
	token, err := adapter.GenerateToken(&domain.TokenClaims{
		UserID:    "user-1",
		SessionID: "session-1",
		IssuedAt:  now.Add(-2 * time.Hour).Unix(),
		ExpiresAt: now.Add(-time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := adapter.ParseToken(token); err == nil {
		t.Error("expected an expired token to fail validation")
	}
}
