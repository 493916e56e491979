package services

import (
	"strings"

	"github.com/vitragvani-labs/granth-core/internal/core/domain"
)

// BuildPlans maps a validated intent onto the registry: one QueryPlan per
// source whose category matches (all sources for BOTH), in registry order.
// Pure and deterministic - no side effects, same plans for the same inputs.
func BuildPlans(intent *domain.SearchIntent, sources []domain.SourceDescriptor) []domain.QueryPlan {
	anchor := likePattern(intent.Anchor())

	var plans []domain.QueryPlan
	for _, src := range sources {
		if !src.Matches(intent.Category) {
			continue
		}

		plan := domain.QueryPlan{Source: src}
		for _, col := range src.TextColumns {
			plan.TextPredicates = append(plan.TextPredicates, domain.Predicate{
				Column:   col,
				Operator: domain.OpLike,
				Value:    anchor,
			})
		}
		if intent.Gatha != "" && src.GathaColumn != "" {
			plan.FilterPredicates = append(plan.FilterPredicates, domain.Predicate{
				Column:   src.GathaColumn,
				Operator: domain.OpLike,
				Value:    likePattern(intent.Gatha),
			})
		}
		if intent.Month != "" && src.MonthColumn != "" {
			plan.FilterPredicates = append(plan.FilterPredicates, domain.Predicate{
				Column:   src.MonthColumn,
				Operator: domain.OpLike,
				Value:    likePattern(intent.Month),
			})
		}

		plans = append(plans, plan)
	}
	return plans
}

// likePattern wraps user text for substring matching. Literal wildcard
// metacharacters in the text are escaped first, so searching for "100%"
// matches only that literal substring; adapters must execute these values
// with ESCAPE '\'.
func likePattern(text string) string {
	return "%" + escapeWildcards(text) + "%"
}

var wildcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

func escapeWildcards(text string) string {
	return wildcardEscaper.Replace(text)
}
