package services

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vitragvani-labs/granth-core/internal/core/domain"
)

func TestBuildPlans_CategoryRouting(t *testing.T) {
	sources := domain.DefaultSources()

	cases := []struct {
		category domain.Category
		tags     []string
	}{
		{domain.CategoryListen, []string{"audio"}},
		{domain.CategoryWatch, []string{"video"}},
		{domain.CategoryRead, []string{"book"}},
		{domain.CategoryBoth, []string{"audio", "video", "book"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			intent := &domain.SearchIntent{RawQuery: "samaysar", Category: tc.category}
			plans := BuildPlans(intent, sources)

			var tags []string
			for _, p := range plans {
				tags = append(tags, p.Source.ResultTag)
			}
			if !reflect.DeepEqual(tags, tc.tags) {
				t.Errorf("expected %v, got %v", tc.tags, tags)
			}
		})
	}
}

func TestBuildPlans_AnchorAgainstEveryTextColumn(t *testing.T) {
	intent := &domain.SearchIntent{
		RawQuery: "pravachan on Samaysar",
		Shastra:  "Samaysar",
		Category: domain.CategoryListen,
	}

	plans := BuildPlans(intent, domain.DefaultSources())
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}

	plan := plans[0]
	if len(plan.TextPredicates) != 2 {
		t.Fatalf("expected 2 text predicates, got %d", len(plan.TextPredicates))
	}
	for _, p := range plan.TextPredicates {
		if p.Operator != domain.OpLike {
			t.Errorf("expected LIKE operator, got %s", p.Operator)
		}
		if p.Value != "%Samaysar%" {
			t.Errorf("expected %%Samaysar%%, got %q", p.Value)
		}
	}
	if plan.TextPredicates[0].Column != "shastra_name" || plan.TextPredicates[1].Column != "full_name" {
		t.Errorf("unexpected text columns: %+v", plan.TextPredicates)
	}
}

func TestBuildPlans_GathaFilterOnlyWhereDeclared(t *testing.T) {
	intent := &domain.SearchIntent{
		RawQuery: "gatha 15 of samaysar",
		Shastra:  "Samaysar",
		Gatha:    "15",
		Category: domain.CategoryBoth,
	}

	plans := BuildPlans(intent, domain.DefaultSources())
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}

	byTag := map[string]domain.QueryPlan{}
	for _, p := range plans {
		byTag[p.Source.ResultTag] = p
	}

	if len(byTag["audio"].FilterPredicates) != 1 {
		t.Errorf("expected audio gatha filter, got %+v", byTag["audio"].FilterPredicates)
	}
	if got := byTag["audio"].FilterPredicates[0].Column; got != "gatha_no_bol_no" {
		t.Errorf("expected gatha_no_bol_no, got %q", got)
	}
	if len(byTag["video"].FilterPredicates) != 1 {
		t.Errorf("expected video gatha filter, got %+v", byTag["video"].FilterPredicates)
	}
	if got := byTag["video"].FilterPredicates[0].Column; got != "Gatha No/Bol No" {
		t.Errorf("expected the video verse column, got %q", got)
	}
	// Books have no gatha column: the filter is silently not applicable
	if len(byTag["book"].FilterPredicates) != 0 {
		t.Errorf("expected no book filters, got %+v", byTag["book"].FilterPredicates)
	}
}

func TestBuildPlans_MonthFilter(t *testing.T) {
	intent := &domain.SearchIntent{
		RawQuery: "pravachans from January",
		Month:    "January",
		Category: domain.CategoryListen,
	}

	plans := BuildPlans(intent, domain.DefaultSources())
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}
	filters := plans[0].FilterPredicates
	if len(filters) != 1 || filters[0].Column != "rec_month" || filters[0].Value != "%January%" {
		t.Errorf("unexpected month filter: %+v", filters)
	}
}

func TestBuildPlans_RawQueryFallbackAnchor(t *testing.T) {
	intent := &domain.SearchIntent{RawQuery: "something obscure", Category: domain.CategoryRead}

	plans := BuildPlans(intent, domain.DefaultSources())
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}
	if plans[0].TextPredicates[0].Value != "%something obscure%" {
		t.Errorf("expected raw-query anchor, got %q", plans[0].TextPredicates[0].Value)
	}
}

func TestBuildPlans_Deterministic(t *testing.T) {
	intent := &domain.SearchIntent{RawQuery: "samaysar", Gatha: "15", Category: domain.CategoryBoth}
	sources := domain.DefaultSources()

	first := BuildPlans(intent, sources)
	second := BuildPlans(intent, sources)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical plans for identical inputs")
	}
}

func TestEscapeWildcards(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
		{"plain", "plain"},
	}

	for _, tc := range cases {
		if got := escapeWildcards(tc.in); got != tc.want {
			t.Errorf("escapeWildcards(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLikePattern_LiteralPercentStaysLiteral(t *testing.T) {
	// Searching for the literal text "100%" must not widen the match
	pattern := likePattern("100%")
	if pattern != `%100\%%` {
		t.Errorf("unexpected pattern %q", pattern)
	}
	if strings.Count(pattern, `\%`) != 1 {
		t.Errorf("expected exactly one escaped percent in %q", pattern)
	}
}
