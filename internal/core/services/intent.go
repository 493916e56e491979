package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vitragvani-labs/granth-core/internal/core/domain"
	"github.com/vitragvani-labs/granth-core/internal/core/ports/driven"
)

// IntentResolver turns a free-text query into a validated SearchIntent.
// The oracle's output is treated as untrusted data: it is strictly parsed and
// only ever contributes enumerated intent fields, never query syntax.
type IntentResolver struct {
	oracle  driven.IntentOracle
	timeout time.Duration
}

// NewIntentResolver creates a new IntentResolver. A non-positive timeout
// leaves the oracle call bounded only by the request context.
func NewIntentResolver(oracle driven.IntentOracle, timeout time.Duration) *IntentResolver {
	return &IntentResolver{
		oracle:  oracle,
		timeout: timeout,
	}
}

// Resolve issues one blocking oracle call and validates the response.
// Oracle transport failure maps to ErrOracleUnavailable; any malformed or
// out-of-enum response maps to ErrIntentParse. No retries: callers treat
// failure here as fatal for the request.
func (r *IntentResolver) Resolve(ctx context.Context, query string) (*domain.SearchIntent, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	raw, err := r.oracle.Infer(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOracleUnavailable, err)
	}

	return domain.ParseIntent(raw, query)
}
