package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vitragvani-labs/granth-core/internal/core/domain"
	"github.com/vitragvani-labs/granth-core/internal/core/ports/driven"
	"github.com/vitragvani-labs/granth-core/internal/core/ports/driving"
)

// Ensure searchService implements SearchService
var _ driving.SearchService = (*searchService)(nil)

// searchService drives one request through the pipeline: resolve intent,
// build per-source plans, fan out to the catalog store, aggregate.
type searchService struct {
	resolver      *IntentResolver
	catalog       driven.CatalogStore
	sources       []domain.SourceDescriptor
	sourceTimeout time.Duration
	logger        *slog.Logger
}

// NewSearchService creates a new SearchService over the given source registry
func NewSearchService(
	resolver *IntentResolver,
	catalog driven.CatalogStore,
	sources []domain.SourceDescriptor,
	sourceTimeout time.Duration,
	logger *slog.Logger,
) driving.SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &searchService{
		resolver:      resolver,
		catalog:       catalog,
		sources:       sources,
		sourceTimeout: sourceTimeout,
		logger:        logger,
	}
}

// Search resolves the query and federates it across matching catalogs.
// An empty query returns an empty response without an oracle call. Intent
// resolution failure is fatal; a single source failing is recorded as an
// annotation and never aborts its siblings.
func (s *searchService) Search(ctx context.Context, query string) (*domain.AggregatedResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &domain.AggregatedResponse{Results: []domain.SearchResultRecord{}}, nil
	}

	intent, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	plans := BuildPlans(intent, s.sources)
	resp := s.aggregate(ctx, plans)
	resp.ResolvedIntent = intent
	return resp, nil
}

// resTypeForTag is the explicit tag -> result-type dispatch table. Result
// types are carried from the adapter, never inferred from row field names.
var resTypeForTag = map[string]string{
	"audio": "audio",
	"video": "video",
	"book":  "book",
}

// Chat answers a conversational message with the single best-matching record:
// the first record in fixed source-priority order.
func (s *searchService) Chat(ctx context.Context, message string) (*domain.ChatResponse, error) {
	resp, err := s.Search(ctx, message)
	if err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return &domain.ChatResponse{
			Response: "I could not find anything matching that. Try naming a shastra or a gatha number.",
			Data:     nil,
			ResType:  "text",
		}, nil
	}

	best := resp.Results[0]
	resType, ok := resTypeForTag[best.SourceTag]
	if !ok {
		resType = "text"
	}

	return &domain.ChatResponse{
		Response: fmt.Sprintf("Here is the best match for %q.", message),
		Data:     &best,
		ResType:  resType,
	}, nil
}

// sourceOutcome is one adapter's result, kept with its plan index so the
// merge order never depends on completion order.
type sourceOutcome struct {
	records []domain.SearchResultRecord
	err     error
}

// aggregate runs every plan concurrently, waits for all of them, and
// concatenates successes in source-priority order. Failures become per-source
// annotations; a timed-out source fails alone without cancelling siblings.
func (s *searchService) aggregate(ctx context.Context, plans []domain.QueryPlan) *domain.AggregatedResponse {
	// Priority order is a property of the registry, not of plan construction
	ordered := make([]domain.QueryPlan, len(plans))
	copy(ordered, plans)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Source.Priority < ordered[j].Source.Priority
	})

	outcomes := make([]sourceOutcome, len(ordered))
	var wg sync.WaitGroup
	for i, plan := range ordered {
		wg.Add(1)
		go func(i int, plan domain.QueryPlan) {
			defer wg.Done()

			queryCtx := ctx
			if s.sourceTimeout > 0 {
				var cancel context.CancelFunc
				queryCtx, cancel = context.WithTimeout(ctx, s.sourceTimeout)
				defer cancel()
			}

			records, err := s.catalog.Query(queryCtx, plan)
			outcomes[i] = sourceOutcome{records: records, err: err}
		}(i, plan)
	}
	wg.Wait()

	resp := &domain.AggregatedResponse{Results: []domain.SearchResultRecord{}}
	for i, out := range outcomes {
		src := ordered[i].Source
		if out.err != nil {
			s.logger.Warn("source query failed",
				"source", src.Name,
				"error", out.err)
			resp.SourceErrors = append(resp.SourceErrors, domain.SourceError{
				Source:  src.Name,
				Message: "query failed",
			})
			continue
		}
		resp.Results = append(resp.Results, out.records...)
	}
	return resp
}
