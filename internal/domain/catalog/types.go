// Package catalog holds the family-agnostic service layer of the media
// catalog. Each media family (movies, series, music, ...) instantiates the
// generic Service with its own DTO type and a Store implementation; the
// per-family packages only contribute descriptors and validation rules.
package catalog

// Page is a zero-based page request.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Filter narrows a listing to rows whose column matches a value. Columns are
// chosen by the per-family HTTP layer from a fixed allow-list; user input
// never names a column directly.
type Filter struct {
	Column string
	Value  string
}

// Dimension identifies a column that aggregate counts can group by.
// Array dimensions (genres, tags, platforms) are unnested before grouping.
type Dimension struct {
	Name   string
	Column string
	Array  bool
}

// DimensionCount is one bucket of a group-by aggregate, ordered by Count.
type DimensionCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// YearCount is one bucket of a release-year aggregate.
type YearCount struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}
