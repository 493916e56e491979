package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vitragvani-labs/granth-core/internal/core/domain"
	"github.com/vitragvani-labs/granth-core/internal/core/ports/driven/mocks"
)

func newTestAuthService(t *testing.T) (*authService, *mocks.MockUserStore, *mocks.MockSessionStore) {
	t.Helper()
	userStore := mocks.NewMockUserStore()
	sessionStore := mocks.NewMockSessionStore()
	svc := NewAuthService(userStore, sessionStore, mocks.NewMockAuthAdapter())
	return svc.(*authService), userStore, sessionStore
}

func seedUser(t *testing.T, store *mocks.MockUserStore, email, password string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           "u-" + email,
		Email:        email,
		PasswordHash: "hashed:" + password,
		FirstName:    "Test",
		LastName:     "User",
		CreatedAt:    time.Now(),
	}
	if err := store.Save(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthenticate(t *testing.T) {
	svc, userStore, sessionStore := newTestAuthService(t)
	seedUser(t, userStore, "jiji@vitragvani.org", "secret123")

	resp, err := svc.Authenticate(context.Background(), domain.LoginRequest{
		Email:    "jiji@vitragvani.org",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Status != "success" {
		t.Errorf("expected success status, got %q", resp.Status)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.User == nil || resp.User.Email != "jiji@vitragvani.org" {
		t.Errorf("unexpected user summary: %+v", resp.User)
	}

	claims, err := mocks.NewMockAuthAdapter().ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if _, err := sessionStore.Get(context.Background(), claims.SessionID); err != nil {
		t.Errorf("expected a persisted session: %v", err)
	}
}

func TestAuthenticate_EmailCaseInsensitive(t *testing.T) {
	svc, userStore, _ := newTestAuthService(t)
	seedUser(t, userStore, "jiji@vitragvani.org", "secret123")

	_, err := svc.Authenticate(context.Background(), domain.LoginRequest{
		Email:    "  JIJI@Vitragvani.ORG ",
		Password: "secret123",
	})
	if err != nil {
		t.Errorf("expected case-insensitive email match, got %v", err)
	}
}

func TestAuthenticate_IdenticalErrorForBothFailures(t *testing.T) {
	svc, userStore, _ := newTestAuthService(t)
	seedUser(t, userStore, "jiji@vitragvani.org", "secret123")

	_, unknownErr := svc.Authenticate(context.Background(), domain.LoginRequest{
		Email:    "nobody@vitragvani.org",
		Password: "whatever",
	})
	_, wrongPassErr := svc.Authenticate(context.Background(), domain.LoginRequest{
		Email:    "jiji@vitragvani.org",
		Password: "wrong",
	})

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPassErr, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	// The two failures must be indistinguishable to the caller
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Errorf("error wording differs: %q vs %q", unknownErr, wrongPassErr)
	}
}

func TestAuthenticate_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	for _, req := range []domain.LoginRequest{
		{},
		{Email: "jiji@vitragvani.org"},
		{Password: "secret123"},
	} {
		if _, err := svc.Authenticate(context.Background(), req); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("req %+v: expected ErrInvalidCredentials, got %v", req, err)
		}
	}
}

func TestValidateToken(t *testing.T) {
	svc, userStore, _ := newTestAuthService(t)
	user := seedUser(t, userStore, "jiji@vitragvani.org", "secret123")

	resp, err := svc.Authenticate(context.Background(), domain.LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	authCtx, err := svc.ValidateToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if authCtx.UserID != user.ID {
		t.Errorf("expected user %q, got %q", user.ID, authCtx.UserID)
	}
}

func TestValidateToken_Invalid(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.ValidateToken(context.Background(), ""); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("empty token: expected ErrTokenInvalid, got %v", err)
	}
	if _, err := svc.ValidateToken(context.Background(), "garbage"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("garbage token: expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateToken_SessionGone(t *testing.T) {
	svc, userStore, sessionStore := newTestAuthService(t)
	user := seedUser(t, userStore, "jiji@vitragvani.org", "secret123")

	resp, err := svc.Authenticate(context.Background(), domain.LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	claims, _ := mocks.NewMockAuthAdapter().ParseToken(resp.Token)
	if err := sessionStore.Delete(context.Background(), claims.SessionID); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	if _, err := svc.ValidateToken(context.Background(), resp.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestValidateToken_ExpiredSession(t *testing.T) {
	svc, _, sessionStore := newTestAuthService(t)

	session := &domain.Session{
		ID:        "sid",
		UserID:    "uid",
		Token:     "token:uid:sid",
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-25 * time.Hour),
	}
	if err := sessionStore.Save(context.Background(), session); err != nil {
		t.Fatalf("save session: %v", err)
	}

	if _, err := svc.ValidateToken(context.Background(), session.Token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	svc, userStore, sessionStore := newTestAuthService(t)
	user := seedUser(t, userStore, "jiji@vitragvani.org", "secret123")

	resp, err := svc.Authenticate(context.Background(), domain.LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if err := svc.Logout(context.Background(), resp.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	claims, _ := mocks.NewMockAuthAdapter().ParseToken(resp.Token)
	if _, err := sessionStore.Get(context.Background(), claims.SessionID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected session deleted, got %v", err)
	}
}

func TestLogout_InvalidTokenIsNoop(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Errorf("empty token: expected nil, got %v", err)
	}
	if err := svc.Logout(context.Background(), "garbage"); err != nil {
		t.Errorf("garbage token: expected nil, got %v", err)
	}
}
