package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is the kind of content the user wants
type Category string

const (
	CategoryRead   Category = "READ"   // Books
	CategoryListen Category = "LISTEN" // Audio pravachans
	CategoryWatch  Category = "WATCH"  // Video pravachans
	CategoryBoth   Category = "BOTH"   // Everything
)

// Valid reports whether c is one of the four enumerated categories.
// Matching is case-sensitive: the oracle must emit the exact literal.
func (c Category) Valid() bool {
	switch c {
	case CategoryRead, CategoryListen, CategoryWatch, CategoryBoth:
		return true
	}
	return false
}

// SearchIntent is the validated, structured interpretation of a free-text query
type SearchIntent struct {
	RawQuery string   `json:"raw_query"`
	Shastra  string   `json:"shastra,omitempty"`
	Gatha    string   `json:"gatha,omitempty"`
	Month    string   `json:"month,omitempty"`
	Title    string   `json:"title,omitempty"`
	Category Category `json:"category"`
}

// Anchor returns the free-text match value for this intent: the shastra if the
// oracle extracted one, otherwise the title, otherwise the raw query itself.
func (i *SearchIntent) Anchor() string {
	if i.Shastra != "" {
		return i.Shastra
	}
	if i.Title != "" {
		return i.Title
	}
	return i.RawQuery
}

// intentFields are the optional string fields the oracle may return
var intentFields = []string{"shastra", "gatha", "month", "title"}

// ParseIntent strictly parses raw oracle output into a SearchIntent.
// The payload must be a JSON object; category must be exactly one of the four
// literals; every other recognised field must be a JSON string or absent.
// Empty and whitespace-only strings normalise to absent. Unrecognised keys are
// ignored so oracle drift in extra fields does not break requests. Anything
// else is ErrIntentParse - never a best-effort guess.
func ParseIntent(raw []byte, rawQuery string) (*SearchIntent, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrIntentParse)
	}

	catRaw, ok := payload["category"]
	if !ok {
		return nil, fmt.Errorf("%w: missing category", ErrIntentParse)
	}
	var cat string
	if err := json.Unmarshal(catRaw, &cat); err != nil {
		return nil, fmt.Errorf("%w: category is not a string", ErrIntentParse)
	}
	category := Category(cat)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrIntentParse, cat)
	}

	intent := &SearchIntent{
		RawQuery: rawQuery,
		Category: category,
	}

	for _, field := range intentFields {
		fieldRaw, ok := payload[field]
		if !ok {
			continue
		}
		// json.Unmarshal leaves a string untouched on a JSON null, so the
		// string-or-absent rule needs the literal rejected up front
		if string(fieldRaw) == "null" {
			return nil, fmt.Errorf("%w: field %s is null", ErrIntentParse, field)
		}
		var value string
		if err := json.Unmarshal(fieldRaw, &value); err != nil {
			return nil, fmt.Errorf("%w: field %s is not a string", ErrIntentParse, field)
		}
		value = strings.TrimSpace(value)
		switch field {
		case "shastra":
			intent.Shastra = value
		case "gatha":
			intent.Gatha = value
		case "month":
			intent.Month = value
		case "title":
			intent.Title = value
		}
	}

	return intent, nil
}
