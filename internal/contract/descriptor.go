package contract

// Descriptor is the whole contract as one value, for publishing over JSON.
type Descriptor struct {
	Authority       string       `json:"authority"`
	BaseContentURI  string       `json:"base_content_uri"`
	ContentURI      string       `json:"content_uri"`
	Path            string       `json:"path"`
	ContentListType string       `json:"content_list_type"`
	ContentItemType string       `json:"content_item_type"`
	Table           string       `json:"table"`
	Columns         []ColumnSpec `json:"columns"`
}

// Describe returns the books contract. Columns is a fresh copy on every call.
func Describe() Descriptor {
	return Descriptor{
		Authority:       ContentAuthority,
		BaseContentURI:  BaseContentURI,
		ContentURI:      ContentURI,
		Path:            PathBooks,
		ContentListType: ContentListType,
		ContentItemType: ContentItemType,
		Table:           TableName,
		Columns:         ColumnSpecs(),
	}
}
