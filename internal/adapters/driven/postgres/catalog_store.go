package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitragvani-labs/granth-core/internal/core/domain"
	"github.com/vitragvani-labs/granth-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore executes query plans against the catalog tables. Strictly
// read-only; all plan values are bound parameters, and identifiers come from
// the source registry, never from user input.
type CatalogStore struct {
	db *DB
}

// NewCatalogStore creates a new CatalogStore
func NewCatalogStore(db *DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Query runs the plan's single SELECT and normalises every row into a tagged
// SearchResultRecord. Row order is the store's natural return order.
func (s *CatalogStore) Query(ctx context.Context, plan domain.QueryPlan) ([]domain.SearchResultRecord, error) {
	query, args := renderQuery(plan)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", plan.Source.Name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns %s: %w", plan.Source.Name, err)
	}

	var records []domain.SearchResultRecord
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", plan.Source.Name, err)
		}

		fields := make(map[string]any, len(columns))
		for i, col := range columns {
			fields[col] = normalizeValue(values[i])
		}
		records = append(records, domain.SearchResultRecord{
			SourceTag: plan.Source.ResultTag,
			Fields:    fields,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows %s: %w", plan.Source.Name, err)
	}

	return records, nil
}

// renderQuery turns a plan into one parameterized SELECT. Text predicates are
// OR-combined in one group, filter predicates are AND-appended. ILIKE keeps
// the catalogs' historical case-insensitive matching; the explicit ESCAPE
// pairs with the planner's wildcard escaping.
func renderQuery(plan domain.QueryPlan) (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString("SELECT * FROM ")
	b.WriteString(quoteIdent(plan.Source.Name))
	b.WriteString(" WHERE (")
	for i, p := range plan.TextPredicates {
		if i > 0 {
			b.WriteString(" OR ")
		}
		args = append(args, p.Value)
		fmt.Fprintf(&b, `%s ILIKE $%d ESCAPE '\'`, quoteIdent(p.Column), len(args))
	}
	b.WriteString(")")
	for _, p := range plan.FilterPredicates {
		args = append(args, p.Value)
		fmt.Fprintf(&b, ` AND %s ILIKE $%d ESCAPE '\'`, quoteIdent(p.Column), len(args))
	}

	return b.String(), args
}

// quoteIdent double-quotes an identifier. Needed because one catalog's verse
// column contains spaces and a slash.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// normalizeValue converts driver values into JSON-friendly ones
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
