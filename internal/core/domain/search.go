package domain

import "encoding/json"

// Operator is the comparison a predicate applies
type Operator string

const (
	// OpLike is substring matching; the only operator plans currently emit.
	// Values bound under OpLike are already wildcard-wrapped and escaped.
	OpLike Operator = "LIKE"
)

// Predicate is one (column, operator, bound value) triple. The value is always
// a bound parameter - a plan never carries concatenated query text.
type Predicate struct {
	Column   string   `json:"column"`
	Operator Operator `json:"operator"`
	Value    string   `json:"value"`
}

// QueryPlan is the parameterized query for one source. TextPredicates are
// OR-combined (anchor against each text column); FilterPredicates are each
// AND-appended (gatha, month). Pure data, built once per source per request.
type QueryPlan struct {
	Source           SourceDescriptor `json:"source"`
	TextPredicates   []Predicate      `json:"text_predicates"`
	FilterPredicates []Predicate      `json:"filter_predicates,omitempty"`
}

// SearchResultRecord is one catalog row normalised at the adapter boundary:
// the source's native columns plus the tag identifying where it came from.
// Request-scoped; never cached across requests.
type SearchResultRecord struct {
	SourceTag string
	Fields    map[string]any
}

// MarshalJSON flattens the native fields and adds res_type, matching the wire
// shape the original clients expect.
func (r SearchResultRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["res_type"] = r.SourceTag
	return json.Marshal(out)
}

// SourceError annotates a single source's query failure. It is recovered
// locally: siblings keep their results and the request still succeeds.
type SourceError struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// AggregatedResponse is the merged outcome of one search request: all
// successful rows in fixed source-priority order, the intent that produced
// them, and any per-source failures.
type AggregatedResponse struct {
	Results        []SearchResultRecord `json:"results"`
	ResolvedIntent *SearchIntent        `json:"ai_logic,omitempty"`
	SourceErrors   []SourceError        `json:"errors,omitempty"`
}

// ChatResponse is the single-best-match variant returned by the chat endpoint
type ChatResponse struct {
	Response string              `json:"response"`
	Data     *SearchResultRecord `json:"data"`
	ResType  string              `json:"res_type"`
}
