package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

// Save maps Postgres unique violations onto domain.ErrAlreadyExists so a
// duplicate registration racing past the service's check-then-act guard
// still surfaces as a conflict, not a raw driver error.
func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "users_email_key"}

	if !isUniqueViolation(unique) {
		t.Error("expected 23505 to be a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("save user: %w", unique)) {
		t.Error("expected a wrapped 23505 to be a unique violation")
	}

	for _, err := range []error{
		nil,
		errors.New("connection reset"),
		&pq.Error{Code: "23503"}, // foreign key violation
	} {
		if isUniqueViolation(err) {
			t.Errorf("expected %v not to be a unique violation", err)
		}
	}
}
