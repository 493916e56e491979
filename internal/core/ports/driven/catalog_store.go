package driven

import (
	"context"

	"github.com/vitragvani-labs/granth-core/internal/core/domain"
)

// CatalogStore executes one source's query plan against the catalog store.
// Read-only: implementations never mutate catalog data. Rows come back tagged
// and normalised, in the store's natural return order.
type CatalogStore interface {
	// Query runs a single parameterized query for the plan's source
	Query(ctx context.Context, plan domain.QueryPlan) ([]domain.SearchResultRecord, error)
}
