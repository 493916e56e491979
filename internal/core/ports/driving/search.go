package driving

import (
	"context"

	"github.com/vitragvani-labs/granth-core/internal/core/domain"
)

// SearchService is the entry point for federated catalog search
type SearchService interface {
	// Search resolves the query into an intent and federates it across every
	// matching catalog. Empty queries short-circuit to an empty response
	// without consulting the oracle.
	Search(ctx context.Context, query string) (*domain.AggregatedResponse, error)

	// Chat answers a conversational message with the single best-matching record
	Chat(ctx context.Context, message string) (*domain.ChatResponse, error)
}
