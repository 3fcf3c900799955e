// Package repository implements catalog.Store for every media family with
// hand-written SQL. One generic Repository does the work; each family
// contributes a Descriptor naming its table, search columns, and the
// mapping between its wire DTO and its row entity.
package repository

import "time"

// Entity is the behavior the generic repository needs from a row type.
// Implementations live in the entities package; each carries a static
// column table so queries are decoded positionally.
type Entity interface {
	Columns() []string
	Values() []any
	ScanDest() []any
	Stamp(now time.Time)
}

// EntityPtr ties a row value type to its pointer implementation of Entity.
type EntityPtr[E any] interface {
	Entity
	*E
}

// Descriptor is the per-family schema description driving the generic
// repository.
type Descriptor[D any, E any] struct {
	// Table is the Postgres table name.
	Table string

	// SoftDelete marks families whose deletes set is_deleted instead of
	// removing rows. Listings filter on the flag; point lookups do not.
	SoftDelete bool

	// FullText marks tables that carry a trigger-maintained search_vector.
	FullText bool

	// HasYear enables the year::text fallback clause in keyword search.
	HasYear bool

	// SearchText lists scalar columns matched with ILIKE during keyword
	// search; SearchArrays lists text[] columns matched element-wise.
	SearchText   []string
	SearchArrays []string

	// SubstringFilters lists columns the advanced search matches as
	// substrings; ArrayFilters lists text[] columns matched by membership.
	// Every other filter column is an exact match.
	SubstringFilters []string
	ArrayFilters     []string

	// ListOrder is the ORDER BY clause of plain listings.
	ListOrder string

	// Versioned bumps the version column on every conflict update (movies).
	Versioned bool

	// ConflictTarget is the ON CONFLICT target of the upsert statement.
	// Empty means "(id)"; child families conflict on their natural position
	// key, matching the unique constraints the migrations install.
	ConflictTarget string

	// ToDTO and FromDTO convert between the row entity and the wire DTO.
	// FromDTO ignores client-supplied timestamps and the deletion flag.
	ToDTO   func(*E) D
	FromDTO func(*D) *E
}
