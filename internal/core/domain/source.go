package domain

// SourceDescriptor describes one catalog: where it lives, how its columns map
// onto the intent fields, and where its rows sort in the merged result list.
// Reconciling a schema difference between catalogs is an edit here, not a code
// change anywhere else.
type SourceDescriptor struct {
	// Name is the physical table name of the catalog
	Name string `json:"name"`

	// ResultTag labels every row this source returns (audio, video, book)
	ResultTag string `json:"result_tag"`

	// Category is the single intent category this source serves.
	// A source is never BOTH - BOTH is a property of intents.
	Category Category `json:"category"`

	// TextColumns are the columns the anchor text is matched against, OR-combined
	TextColumns []string `json:"text_columns"`

	// GathaColumn is the verse-number filter column, empty if the source has none
	GathaColumn string `json:"gatha_column,omitempty"`

	// MonthColumn is the recording-month filter column, empty if the source has none
	MonthColumn string `json:"month_column,omitempty"`

	// Priority fixes the position of this source's rows in the aggregated
	// response: lower comes first, regardless of query completion order.
	Priority int `json:"priority"`
}

// Matches reports whether this source serves the given intent category
func (d *SourceDescriptor) Matches(category Category) bool {
	return category == CategoryBoth || category == d.Category
}

// DefaultSources is the registry of known catalogs in merge-priority order:
// audio pravachans, then video pravachans, then books. The column names are
// the catalogs' own; the video table's verse column really does contain
// spaces, which is why adapters must quote identifiers.
func DefaultSources() []SourceDescriptor {
	return []SourceDescriptor{
		{
			Name:        "gurudevshree_pravachan",
			ResultTag:   "audio",
			Category:    CategoryListen,
			TextColumns: []string{"shastra_name", "full_name"},
			GathaColumn: "gatha_no_bol_no",
			MonthColumn: "rec_month",
			Priority:    0,
		},
		{
			Name:        "video_pravachan_with_pdf",
			ResultTag:   "video",
			Category:    CategoryWatch,
			TextColumns: []string{"shastra_name"},
			GathaColumn: "Gatha No/Bol No",
			Priority:    1,
		},
		{
			Name:        "shastra_bhandar",
			ResultTag:   "book",
			Category:    CategoryRead,
			TextColumns: []string{"shastraname", "rachayita"},
			Priority:    2,
		},
	}
}
