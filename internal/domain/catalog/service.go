package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/mediavault/catalog-api/internal/config"
	"github.com/mediavault/catalog-api/internal/infrastructure/metrics"
	"github.com/mediavault/catalog-api/internal/validation"
)

// Service implements the read/write operations of one media family on top
// of a Store. Keyword search and bulk writes pass through a rate limiter and
// a circuit breaker; when either refuses, the caller gets an empty result
// instead of an error.
type Service[D any, PD RecordPtr[D]] struct {
	family    string
	store     Store[D]
	cache     *gocache.Cache
	log       zerolog.Logger
	normalize func(*D)

	searchLimiter *rate.Limiter
	bulkLimiter   *rate.Limiter
	searchBreaker *gobreaker.CircuitBreaker[[]D]
	bulkBreaker   *gobreaker.CircuitBreaker[[]D]
}

// NewService builds a Service for one family. normalize runs on every record
// before it is written and may be nil.
func NewService[D any, PD RecordPtr[D]](family string, store Store[D], cfg *config.Config, log zerolog.Logger, normalize func(*D)) *Service[D, PD] {
	return &Service[D, PD]{
		family:        family,
		store:         store,
		cache:         gocache.New(cfg.CacheTTL, cfg.CacheCleanup),
		log:           log.With().Str("family", family).Logger(),
		normalize:     normalize,
		searchLimiter: rate.NewLimiter(rate.Limit(cfg.SearchRatePerSec), cfg.SearchBurst),
		bulkLimiter:   rate.NewLimiter(rate.Limit(cfg.BulkRatePerSec), cfg.BulkBurst),
		searchBreaker: newBreaker[[]D](family+"-search", cfg),
		bulkBreaker:   newBreaker[[]D](family+"-bulk", cfg),
	}
}

func newBreaker[T any](name string, cfg *config.Config) *gobreaker.CircuitBreaker[T] {
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.BreakerMaxHalfOpen,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.BreakerFailureRatio
		},
	})
}

// Get returns one record by id, serving repeat lookups from the in-process
// cache. Deleted records are still returned; only listings hide them.
func (s *Service[D, PD]) Get(ctx context.Context, id uuid.UUID) (*D, error) {
	key := id.String()
	if v, ok := s.cache.Get(key); ok {
		metrics.RecordCacheLookup(s.family, "hit")
		d := v.(D)
		return &d, nil
	}
	metrics.RecordCacheLookup(s.family, "miss")

	d, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, *d, gocache.DefaultExpiration)
	return d, nil
}

// GetBy returns one record by an exact column match, e.g. an external id.
func (s *Service[D, PD]) GetBy(ctx context.Context, column, value string) (*D, error) {
	return s.store.FindBy(ctx, column, value)
}

// List returns one page of live records, newest first.
func (s *Service[D, PD]) List(ctx context.Context, page Page) ([]D, error) {
	return s.store.List(ctx, page)
}

// ListBy returns one page of live records matching an exact column value.
func (s *Service[D, PD]) ListBy(ctx context.Context, column, value string, page Page) ([]D, error) {
	return s.store.ListBy(ctx, column, value, page)
}

// ListByYear returns one page of live records released in the given year.
func (s *Service[D, PD]) ListByYear(ctx context.Context, year int, page Page) ([]D, error) {
	return s.store.ListByYear(ctx, year, page)
}

// Count returns the number of live records.
func (s *Service[D, PD]) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// CountYear returns the number of live records released in the given year.
func (s *Service[D, PD]) CountYear(ctx context.Context, year int) (int64, error) {
	return s.store.CountYear(ctx, year)
}

// Search runs a keyword search. A denied rate limit or an open breaker
// degrades to an empty page.
func (s *Service[D, PD]) Search(ctx context.Context, keyword string, page Page) ([]D, error) {
	if !s.searchLimiter.Allow() {
		metrics.RecordFallback(s.family, "search", "rate_limited")
		s.log.Warn().Str("keyword", keyword).Msg("Search rate limited, serving empty page")
		return []D{}, nil
	}
	results, err := s.searchBreaker.Execute(func() ([]D, error) {
		return s.store.Search(ctx, keyword, page)
	})
	if err != nil {
		metrics.RecordFallback(s.family, "search", breakerCause(err))
		s.log.Error().Err(err).Str("keyword", keyword).Msg("Search failed, serving empty page")
		return []D{}, nil
	}
	return results, nil
}

// FindFiltered runs an advanced search over explicit column filters. It is
// not wrapped by the resilience layer; failures surface to the caller.
func (s *Service[D, PD]) FindFiltered(ctx context.Context, filters []Filter, page Page) ([]D, error) {
	return s.store.FindFiltered(ctx, filters, page)
}

// UpdatedSince returns live records changed after the given instant, for
// incremental sync consumers.
func (s *Service[D, PD]) UpdatedSince(ctx context.Context, since time.Time, page Page) ([]D, error) {
	return s.store.UpdatedSince(ctx, since, page)
}

// Create validates and inserts a new record. The server generates an id
// when the client did not supply one.
func (s *Service[D, PD]) Create(ctx context.Context, d *D) (*D, error) {
	if err := validation.Struct(d); err != nil {
		return nil, err
	}
	s.ensureID(d)
	s.applyNormalize(d)
	return s.store.Insert(ctx, d)
}

// Update validates and replaces the record with the given id. The guard is
// an unfiltered point lookup, so a soft-deleted record can be updated back
// into the live set.
func (s *Service[D, PD]) Update(ctx context.Context, id uuid.UUID, d *D) (*D, error) {
	if err := validation.Struct(d); err != nil {
		return nil, err
	}
	if _, err := s.store.FindByID(ctx, id); err != nil {
		return nil, err
	}
	PD(d).SetRecordID(id)
	s.applyNormalize(d)
	return s.store.Update(ctx, d)
}

// CreateOrUpdate dispatches on id presence: a record without an id is
// created, a record with one is routed through Update and surfaces
// not-found when no such row exists.
func (s *Service[D, PD]) CreateOrUpdate(ctx context.Context, d *D) (*D, error) {
	if id := PD(d).RecordID(); id != uuid.Nil {
		return s.Update(ctx, id, d)
	}
	return s.Create(ctx, d)
}

// Delete removes the record with the given id. Parent families soft-delete;
// child families remove the row. The distinction lives in the Store.
func (s *Service[D, PD]) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// BulkUpsert validates every record, then upserts the batch in one
// transaction. The whole batch is rejected when any record is invalid.
// A denied rate limit or an open breaker degrades to an empty result.
func (s *Service[D, PD]) BulkUpsert(ctx context.Context, ds []D) ([]D, error) {
	for i := range ds {
		if err := validation.Struct(&ds[i]); err != nil {
			return nil, err
		}
	}
	if !s.bulkLimiter.Allow() {
		metrics.RecordFallback(s.family, "bulk_upsert", "rate_limited")
		s.log.Warn().Int("count", len(ds)).Msg("Bulk upsert rate limited, dropped")
		return []D{}, nil
	}
	results, err := s.bulkBreaker.Execute(func() ([]D, error) {
		for i := range ds {
			s.ensureID(&ds[i])
			s.applyNormalize(&ds[i])
		}
		return s.store.UpsertAll(ctx, ds)
	})
	if err != nil {
		metrics.RecordFallback(s.family, "bulk_upsert", breakerCause(err))
		s.log.Error().Err(err).Int("count", len(ds)).Msg("Bulk upsert failed, dropped")
		return []D{}, nil
	}
	return results, nil
}

// BulkDelete removes every record in ids. A denied rate limit or an open
// breaker turns the call into a no-op.
func (s *Service[D, PD]) BulkDelete(ctx context.Context, ids []uuid.UUID) error {
	if !s.bulkLimiter.Allow() {
		metrics.RecordFallback(s.family, "bulk_delete", "rate_limited")
		s.log.Warn().Int("count", len(ids)).Msg("Bulk delete rate limited, dropped")
		return nil
	}
	_, err := s.bulkBreaker.Execute(func() ([]D, error) {
		return nil, s.store.DeleteAll(ctx, ids)
	})
	if err != nil {
		metrics.RecordFallback(s.family, "bulk_delete", breakerCause(err))
		s.log.Error().Err(err).Int("count", len(ids)).Msg("Bulk delete failed, dropped")
	}
	return nil
}

// CountBy returns the most frequent values of a dimension among live records.
func (s *Service[D, PD]) CountBy(ctx context.Context, dim Dimension, limit int) ([]DimensionCount, error) {
	return s.store.CountBy(ctx, dim, limit)
}

// CountByYear returns release-year buckets among live records, newest first.
func (s *Service[D, PD]) CountByYear(ctx context.Context, limit int) ([]YearCount, error) {
	return s.store.CountByYear(ctx, limit)
}

// Exists reports whether a live record with the given id exists.
func (s *Service[D, PD]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.store.Exists(ctx, id)
}

func (s *Service[D, PD]) ensureID(d *D) {
	if PD(d).RecordID() == uuid.Nil {
		PD(d).SetRecordID(uuid.New())
	}
}

func (s *Service[D, PD]) applyNormalize(d *D) {
	if s.normalize != nil {
		s.normalize(d)
	}
}

func breakerCause(err error) string {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "breaker_open"
	}
	return "store_error"
}
