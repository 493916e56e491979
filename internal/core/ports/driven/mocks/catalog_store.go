package mocks

import (
	"context"
	"sync"

	"github.com/vitragvani-labs/granth-core/internal/core/domain"
)

// MockCatalogStore is a mock implementation of CatalogStore for testing.
// Rows and errors are registered per source name; QueryFn overrides both.
type MockCatalogStore struct {
	mu sync.Mutex

	rows map[string][]domain.SearchResultRecord
	errs map[string]error

	// QueryFn, when set, handles every call
	QueryFn func(ctx context.Context, plan domain.QueryPlan) ([]domain.SearchResultRecord, error)

	// Plans records every plan passed to Query
	Plans []domain.QueryPlan
}

// NewMockCatalogStore creates a new MockCatalogStore
func NewMockCatalogStore() *MockCatalogStore {
	return &MockCatalogStore{
		rows: make(map[string][]domain.SearchResultRecord),
		errs: make(map[string]error),
	}
}

// SetRows registers the rows returned for a source
func (m *MockCatalogStore) SetRows(source string, rows []domain.SearchResultRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[source] = rows
}

// SetErr registers a query error for a source
func (m *MockCatalogStore) SetErr(source string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[source] = err
}

func (m *MockCatalogStore) Query(ctx context.Context, plan domain.QueryPlan) ([]domain.SearchResultRecord, error) {
	m.mu.Lock()
	m.Plans = append(m.Plans, plan)
	fn := m.QueryFn
	rows := m.rows[plan.Source.Name]
	err := m.errs[plan.Source.Name]
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, plan)
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// QueriedSources returns the source names queried so far, in call order
func (m *MockCatalogStore) QueriedSources() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, len(m.Plans))
	for i, p := range m.Plans {
		names[i] = p.Source.Name
	}
	return names
}
