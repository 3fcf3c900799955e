package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
)

// Repository is the single catalog.Store implementation. It is
// instantiated once per media family with that family's Descriptor.
type Repository[D any, E any, PE EntityPtr[E]] struct {
	db   *gorm.DB
	desc Descriptor[D, E]
	log  zerolog.Logger
	cols []string
}

// New builds a Repository for one family.
func New[D any, E any, PE EntityPtr[E]](db *gorm.DB, desc Descriptor[D, E], log zerolog.Logger) *Repository[D, E, PE] {
	var zero E
	return &Repository[D, E, PE]{
		db:   db,
		desc: desc,
		log:  log.With().Str("table", desc.Table).Logger(),
		cols: PE(&zero).Columns(),
	}
}

func (r *Repository[D, E, PE]) queryMany(ctx context.Context, query string, args ...any) ([]D, error) {
	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("%s query: %w", r.desc.Table, err)
	}
	defer rows.Close()

	out := []D{}
	for rows.Next() {
		var e E
		if err := rows.Scan(PE(&e).ScanDest()...); err != nil {
			return nil, fmt.Errorf("%s scan: %w", r.desc.Table, err)
		}
		out = append(out, r.desc.ToDTO(&e))
	}
	return out, rows.Err()
}

func (r *Repository[D, E, PE]) queryOne(ctx context.Context, query string, args ...any) (*D, error) {
	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("%s query: %w", r.desc.Table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, catalog.ErrNotFound
	}
	var e E
	if err := rows.Scan(PE(&e).ScanDest()...); err != nil {
		return nil, fmt.Errorf("%s scan: %w", r.desc.Table, err)
	}
	d := r.desc.ToDTO(&e)
	return &d, nil
}

// FindByID returns the row with the given id, deleted or not.
func (r *Repository[D, E, PE]) FindByID(ctx context.Context, id uuid.UUID) (*D, error) {
	query := fmt.Sprintf("%s WHERE id = ?", r.desc.selectSQL(r.cols))
	return r.queryOne(ctx, query, id)
}

// FindBy returns the first live row whose column equals value, compared
// case-insensitively.
func (r *Repository[D, E, PE]) FindBy(ctx context.Context, column, value string) (*D, error) {
	query := fmt.Sprintf("%s WHERE %s AND %s LIMIT 1", r.desc.selectSQL(r.cols), r.desc.live(), exactMatch(column))
	return r.queryOne(ctx, query, value)
}

// Exists reports whether a live row with the given id exists.
func (r *Repository[D, E, PE]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s AND id = ?)", r.desc.Table, r.desc.live())
	var exists bool
	if err := r.db.WithContext(ctx).Raw(query, id).Row().Scan(&exists); err != nil {
		return false, fmt.Errorf("%s exists: %w", r.desc.Table, err)
	}
	return exists, nil
}

// List returns one page of live rows in the family's default order.
func (r *Repository[D, E, PE]) List(ctx context.Context, page catalog.Page) ([]D, error) {
	query := fmt.Sprintf("%s WHERE %s ORDER BY %s LIMIT ? OFFSET ?",
		r.desc.selectSQL(r.cols), r.desc.live(), r.desc.ListOrder)
	return r.queryMany(ctx, query, page.Size, page.Offset())
}

// ListBy returns one page of live rows whose column equals value, compared
// case-insensitively.
func (r *Repository[D, E, PE]) ListBy(ctx context.Context, column, value string, page catalog.Page) ([]D, error) {
	query := fmt.Sprintf("%s WHERE %s AND %s ORDER BY %s LIMIT ? OFFSET ?",
		r.desc.selectSQL(r.cols), r.desc.live(), exactMatch(column), r.desc.ListOrder)
	return r.queryMany(ctx, query, value, page.Size, page.Offset())
}

// ListByYear returns one page of live rows released in the given year.
func (r *Repository[D, E, PE]) ListByYear(ctx context.Context, year int, page catalog.Page) ([]D, error) {
	query := fmt.Sprintf("%s WHERE %s AND year = ? ORDER BY %s LIMIT ? OFFSET ?",
		r.desc.selectSQL(r.cols), r.desc.live(), r.desc.ListOrder)
	return r.queryMany(ctx, query, year, page.Size, page.Offset())
}

// Search runs the keyword search: full-text match, per-field substring
// fallback, and literal year match, ranked by relevance then recency.
func (r *Repository[D, E, PE]) Search(ctx context.Context, keyword string, page catalog.Page) ([]D, error) {
	query, terms := r.desc.searchSQL(r.cols)
	args := make([]any, 0, terms+2)
	for i := 0; i < terms; i++ {
		args = append(args, keyword)
	}
	args = append(args, page.Size, page.Offset())
	return r.queryMany(ctx, query, args...)
}

// FindFiltered runs the advanced search: AND of the supplied filters only,
// in the family's default order.
func (r *Repository[D, E, PE]) FindFiltered(ctx context.Context, filters []catalog.Filter, page catalog.Page) ([]D, error) {
	where, args := r.desc.filterSQL(filters)
	query := fmt.Sprintf("%s WHERE %s ORDER BY %s LIMIT ? OFFSET ?",
		r.desc.selectSQL(r.cols), where, r.desc.ListOrder)
	args = append(args, page.Size, page.Offset())
	return r.queryMany(ctx, query, args...)
}

// UpdatedSince returns live rows changed after the given instant, oldest
// first.
func (r *Repository[D, E, PE]) UpdatedSince(ctx context.Context, since time.Time, page catalog.Page) ([]D, error) {
	return r.queryMany(ctx, r.desc.updatedSinceSQL(r.cols), since, page.Size, page.Offset())
}

// Count returns the number of live rows.
func (r *Repository[D, E, PE]) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", r.desc.Table, r.desc.live())
	var n int64
	if err := r.db.WithContext(ctx).Raw(query).Row().Scan(&n); err != nil {
		return 0, fmt.Errorf("%s count: %w", r.desc.Table, err)
	}
	return n, nil
}

// CountYear returns the number of live rows released in the given year.
func (r *Repository[D, E, PE]) CountYear(ctx context.Context, year int) (int64, error) {
	query := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s AND year = ?", r.desc.Table, r.desc.live())
	var n int64
	if err := r.db.WithContext(ctx).Raw(query, year).Row().Scan(&n); err != nil {
		return 0, fmt.Errorf("%s count year: %w", r.desc.Table, err)
	}
	return n, nil
}

// Insert writes a new row and returns the stored shape.
func (r *Repository[D, E, PE]) Insert(ctx context.Context, d *D) (*D, error) {
	e := r.desc.FromDTO(d)
	PE(e).Stamp(time.Now().UTC())
	return r.queryOne(ctx, r.desc.insertSQL(r.cols), PE(e).Values()...)
}

// Update replaces the row through the upsert statement; created_at is
// preserved by the conflict clause.
func (r *Repository[D, E, PE]) Update(ctx context.Context, d *D) (*D, error) {
	return r.Upsert(ctx, d)
}

// Upsert inserts the row or replaces every mutable column on conflict with
// the descriptor's conflict target.
func (r *Repository[D, E, PE]) Upsert(ctx context.Context, d *D) (*D, error) {
	e := r.desc.FromDTO(d)
	PE(e).Stamp(time.Now().UTC())
	return r.queryOne(ctx, r.desc.upsertSQL(r.cols), PE(e).Values()...)
}

// UpsertAll upserts the batch inside one transaction; any failure rolls
// the whole batch back.
func (r *Repository[D, E, PE]) UpsertAll(ctx context.Context, ds []D) ([]D, error) {
	out := make([]D, 0, len(ds))
	query := r.desc.upsertSQL(r.cols)
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range ds {
			e := r.desc.FromDTO(&ds[i])
			PE(e).Stamp(now)
			rows, err := tx.Raw(query, PE(e).Values()...).Rows()
			if err != nil {
				return fmt.Errorf("%s upsert: %w", r.desc.Table, err)
			}
			if !rows.Next() {
				rows.Close()
				if err := rows.Err(); err != nil {
					return err
				}
				return fmt.Errorf("%s upsert: no row returned", r.desc.Table)
			}
			var stored E
			if err := rows.Scan(PE(&stored).ScanDest()...); err != nil {
				rows.Close()
				return fmt.Errorf("%s scan: %w", r.desc.Table, err)
			}
			rows.Close()
			out = append(out, r.desc.ToDTO(&stored))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one row: soft for parent families, hard for children.
func (r *Repository[D, E, PE]) Delete(ctx context.Context, id uuid.UUID) error {
	var res *gorm.DB
	if r.desc.SoftDelete {
		res = r.db.WithContext(ctx).Exec(r.desc.deleteSQL(), time.Now().UTC(), id)
	} else {
		res = r.db.WithContext(ctx).Exec(r.desc.deleteSQL(), id)
	}
	if res.Error != nil {
		return fmt.Errorf("%s delete: %w", r.desc.Table, res.Error)
	}
	if res.RowsAffected == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// DeleteAll removes every row in ids with one statement. Missing ids are
// skipped silently.
func (r *Repository[D, E, PE]) DeleteAll(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var res *gorm.DB
	if r.desc.SoftDelete {
		res = r.db.WithContext(ctx).Exec(r.desc.bulkDeleteSQL(), time.Now().UTC(), pq.Array(ids))
	} else {
		res = r.db.WithContext(ctx).Exec(r.desc.bulkDeleteSQL(), pq.Array(ids))
	}
	if res.Error != nil {
		return fmt.Errorf("%s bulk delete: %w", r.desc.Table, res.Error)
	}
	return nil
}

// DeleteBy removes every row whose column equals value. Child families use
// it to drop a parent's records in one statement.
func (r *Repository[D, E, PE]) DeleteBy(ctx context.Context, column, value string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", r.desc.Table, column)
	if r.desc.SoftDelete {
		query = fmt.Sprintf("UPDATE %s SET is_deleted = true, updated_at = ? WHERE %s = ?", r.desc.Table, column)
		if err := r.db.WithContext(ctx).Exec(query, time.Now().UTC(), value).Error; err != nil {
			return fmt.Errorf("%s delete by %s: %w", r.desc.Table, column, err)
		}
		return nil
	}
	if err := r.db.WithContext(ctx).Exec(query, value).Error; err != nil {
		return fmt.Errorf("%s delete by %s: %w", r.desc.Table, column, err)
	}
	return nil
}

// CountBy returns the most frequent values of a dimension among live rows.
func (r *Repository[D, E, PE]) CountBy(ctx context.Context, dim catalog.Dimension, limit int) ([]catalog.DimensionCount, error) {
	var query string
	if dim.Array {
		query = fmt.Sprintf(
			"SELECT u.v, count(*) FROM %s, unnest(%s) AS u(v) WHERE %s GROUP BY u.v ORDER BY count(*) DESC LIMIT ?",
			r.desc.Table, dim.Column, r.desc.live())
	} else {
		query = fmt.Sprintf(
			"SELECT %s, count(*) FROM %s WHERE %s AND %s IS NOT NULL GROUP BY %s ORDER BY count(*) DESC LIMIT ?",
			dim.Column, r.desc.Table, r.desc.live(), dim.Column, dim.Column)
	}
	rows, err := r.db.WithContext(ctx).Raw(query, limit).Rows()
	if err != nil {
		return nil, fmt.Errorf("%s count by %s: %w", r.desc.Table, dim.Name, err)
	}
	defer rows.Close()

	out := []catalog.DimensionCount{}
	for rows.Next() {
		var c catalog.DimensionCount
		var value sql.NullString
		if err := rows.Scan(&value, &c.Count); err != nil {
			return nil, fmt.Errorf("%s count by %s scan: %w", r.desc.Table, dim.Name, err)
		}
		c.Value = value.String
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountByYear returns release-year buckets among live rows, newest first.
func (r *Repository[D, E, PE]) CountByYear(ctx context.Context, limit int) ([]catalog.YearCount, error) {
	query := fmt.Sprintf(
		"SELECT year, count(*) FROM %s WHERE %s AND year IS NOT NULL GROUP BY year ORDER BY year DESC LIMIT ?",
		r.desc.Table, r.desc.live())
	rows, err := r.db.WithContext(ctx).Raw(query, limit).Rows()
	if err != nil {
		return nil, fmt.Errorf("%s count by year: %w", r.desc.Table, err)
	}
	defer rows.Close()

	out := []catalog.YearCount{}
	for rows.Next() {
		var c catalog.YearCount
		if err := rows.Scan(&c.Year, &c.Count); err != nil {
			return nil, fmt.Errorf("%s count by year scan: %w", r.desc.Table, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
