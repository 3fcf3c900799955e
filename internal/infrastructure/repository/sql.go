package repository

import (
	"fmt"
	"strings"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
)

// liveFilter excludes soft-deleted rows. The flag column predates the NOT
// NULL default, so NULL still counts as live.
const liveFilter = "(is_deleted = false OR is_deleted IS NULL)"

func (d *Descriptor[D, E]) live() string {
	if d.SoftDelete {
		return liveFilter
	}
	return "TRUE"
}

func (d *Descriptor[D, E]) selectSQL(cols []string) string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), d.Table)
}

// searchSQL builds the keyword-search statement. The second return value is
// the number of times the search term must be bound before LIMIT/OFFSET.
func (d *Descriptor[D, E]) searchSQL(cols []string) (string, int) {
	var clauses []string
	terms := 0
	if d.FullText {
		clauses = append(clauses, "search_vector @@ plainto_tsquery('english', ?)")
		terms++
	}
	for _, c := range d.SearchText {
		clauses = append(clauses, fmt.Sprintf("%s ILIKE '%%' || ? || '%%'", c))
		terms++
	}
	for _, c := range d.SearchArrays {
		clauses = append(clauses, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(%s) AS u(v) WHERE u.v ILIKE '%%' || ? || '%%')", c))
		terms++
	}
	if d.HasYear {
		clauses = append(clauses, "year::text = ?")
		terms++
	}

	order := "updated_at DESC"
	if d.FullText {
		order = "ts_rank(search_vector, plainto_tsquery('english', ?)) DESC, updated_at DESC"
	}
	query := fmt.Sprintf("%s WHERE %s AND (%s) ORDER BY %s LIMIT ? OFFSET ?",
		d.selectSQL(cols), d.live(), strings.Join(clauses, " OR "), order)
	if d.FullText {
		terms++
	}
	return query, terms
}

// filterSQL builds the advanced-search WHERE fragment and its arguments.
func (d *Descriptor[D, E]) filterSQL(filters []catalog.Filter) (string, []any) {
	clauses := []string{d.live()}
	args := make([]any, 0, len(filters))
	for _, f := range filters {
		switch {
		case contains(d.SubstringFilters, f.Column):
			clauses = append(clauses, fmt.Sprintf("%s ILIKE '%%' || ? || '%%'", f.Column))
		case contains(d.ArrayFilters, f.Column):
			clauses = append(clauses, fmt.Sprintf("? = ANY(%s)", f.Column))
		default:
			clauses = append(clauses, exactMatch(f.Column))
		}
		args = append(args, f.Value)
	}
	return strings.Join(clauses, " AND "), args
}

func (d *Descriptor[D, E]) insertSQL(cols []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		d.Table,
		strings.Join(cols, ", "),
		placeholders(len(cols)),
		strings.Join(cols, ", "))
}

// upsertSQL builds the insert-or-replace statement. On conflict every
// mutable column is replaced; id and created_at are preserved and a
// versioned table bumps its counter from the stored row. Child families
// conflict on their natural position key instead of the id.
func (d *Descriptor[D, E]) upsertSQL(cols []string) string {
	var set []string
	for _, c := range cols {
		switch c {
		case "id", "created_at":
			continue
		case "version":
			if d.Versioned {
				set = append(set, fmt.Sprintf("version = %s.version + 1", d.Table))
				continue
			}
		}
		set = append(set, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
	}
	target := d.ConflictTarget
	if target == "" {
		target = "(id)"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT %s DO UPDATE SET %s RETURNING %s",
		d.Table,
		strings.Join(cols, ", "),
		placeholders(len(cols)),
		target,
		strings.Join(set, ", "),
		strings.Join(cols, ", "))
}

// updatedSinceSQL builds the incremental-sync read. Soft-deleted rows are
// excluded like every other listing.
func (d *Descriptor[D, E]) updatedSinceSQL(cols []string) string {
	return fmt.Sprintf("%s WHERE %s AND updated_at > ? ORDER BY updated_at ASC LIMIT ? OFFSET ?",
		d.selectSQL(cols), d.live())
}

func (d *Descriptor[D, E]) deleteSQL() string {
	if d.SoftDelete {
		return fmt.Sprintf("UPDATE %s SET is_deleted = true, updated_at = ? WHERE id = ?", d.Table)
	}
	return fmt.Sprintf("DELETE FROM %s WHERE id = ?", d.Table)
}

func (d *Descriptor[D, E]) bulkDeleteSQL() string {
	if d.SoftDelete {
		return fmt.Sprintf("UPDATE %s SET is_deleted = true, updated_at = ? WHERE id = ANY(?)", d.Table)
	}
	return fmt.Sprintf("DELETE FROM %s WHERE id = ANY(?)", d.Table)
}

// exactMatch compares case-insensitively; the text cast keeps the clause
// valid for non-text columns like year.
func exactMatch(column string) string {
	return fmt.Sprintf("LOWER(%s::text) = LOWER(?)", column)
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
