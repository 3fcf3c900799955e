package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediavault/catalog-api/internal/config"
	"github.com/mediavault/catalog-api/internal/infrastructure/logger"
)

type noteDTO struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title" validate:"required,max=255"`
}

func (d *noteDTO) RecordID() uuid.UUID      { return d.ID }
func (d *noteDTO) SetRecordID(id uuid.UUID) { d.ID = id }

type fakeStore struct {
	mu          sync.Mutex
	records     map[uuid.UUID]noteDTO
	softDeleted map[uuid.UUID]bool
	searchErr   error
	searchCalls int
	upsertCalls int
	deleteCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records:     map[uuid.UUID]noteDTO{},
		softDeleted: map[uuid.UUID]bool{},
	}
}

func (s *fakeStore) FindByID(_ context.Context, id uuid.UUID) (*noteDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (s *fakeStore) FindBy(context.Context, string, string) (*noteDTO, error) {
	return nil, ErrNotFound
}

func (s *fakeStore) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.records[id]
	return ok && !s.softDeleted[id], nil
}

func (s *fakeStore) List(context.Context, Page) ([]noteDTO, error) { return s.all(), nil }
func (s *fakeStore) ListBy(context.Context, string, string, Page) ([]noteDTO, error) {
	return s.all(), nil
}
func (s *fakeStore) ListByYear(context.Context, int, Page) ([]noteDTO, error) { return s.all(), nil }

func (s *fakeStore) Search(context.Context, string, Page) ([]noteDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchCalls++
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.allLocked(), nil
}

func (s *fakeStore) FindFiltered(context.Context, []Filter, Page) ([]noteDTO, error) {
	return s.all(), nil
}
func (s *fakeStore) UpdatedSince(context.Context, time.Time, Page) ([]noteDTO, error) {
	return s.all(), nil
}
func (s *fakeStore) Count(context.Context) (int64, error)          { return int64(len(s.all())), nil }
func (s *fakeStore) CountYear(context.Context, int) (int64, error) { return 0, nil }

func (s *fakeStore) Insert(_ context.Context, d *noteDTO) (*noteDTO, error) {
	return s.Upsert(context.Background(), d)
}
func (s *fakeStore) Update(_ context.Context, d *noteDTO) (*noteDTO, error) {
	return s.Upsert(context.Background(), d)
}

func (s *fakeStore) Upsert(_ context.Context, d *noteDTO) (*noteDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertCalls++
	s.records[d.ID] = *d
	stored := *d
	return &stored, nil
}

func (s *fakeStore) UpsertAll(ctx context.Context, ds []noteDTO) ([]noteDTO, error) {
	out := make([]noteDTO, 0, len(ds))
	for i := range ds {
		stored, err := s.Upsert(ctx, &ds[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *stored)
	}
	return out, nil
}

func (s *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteCalls++
	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *fakeStore) DeleteAll(_ context.Context, ids []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteCalls++
	for _, id := range ids {
		delete(s.records, id)
	}
	return nil
}

func (s *fakeStore) DeleteBy(context.Context, string, string) error { return nil }

func (s *fakeStore) CountBy(context.Context, Dimension, int) ([]DimensionCount, error) {
	return []DimensionCount{}, nil
}
func (s *fakeStore) CountByYear(context.Context, int) ([]YearCount, error) {
	return []YearCount{}, nil
}

func (s *fakeStore) all() []noteDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allLocked()
}

func (s *fakeStore) allLocked() []noteDTO {
	out := make([]noteDTO, 0, len(s.records))
	for _, d := range s.records {
		out = append(out, d)
	}
	return out
}

func testConfig() *config.Config {
	return &config.Config{
		ServiceName:         "catalog-api",
		Environment:         "test",
		LogLevel:            "error",
		CacheTTL:            time.Minute,
		CacheCleanup:        time.Minute,
		BreakerFailureRatio: 0.6,
		BreakerMinRequests:  10,
		BreakerOpenTimeout:  30 * time.Second,
		BreakerMaxHalfOpen:  3,
		SearchRatePerSec:    1000,
		SearchBurst:         1000,
		BulkRatePerSec:      1000,
		BulkBurst:           1000,
		DefaultPageSize:     10,
		MaxPageSize:         100,
	}
}

func newTestService(t *testing.T, store Store[noteDTO], cfg *config.Config) *Service[noteDTO, *noteDTO] {
	t.Helper()
	return NewService[noteDTO, *noteDTO]("notes", store, cfg, logger.New(cfg), nil)
}

func TestGetServesRepeatLookupsFromCache(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	store.records[id] = noteDTO{ID: id, Title: "cached"}

	svc := newTestService(t, store, testConfig())

	first, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "cached", first.Title)

	// Remove the backing row; the cached copy must still be served.
	store.mu.Lock()
	delete(store.records, id)
	store.mu.Unlock()

	second, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "cached", second.Title)
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(t, newFakeStore(), testConfig())
	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateGeneratesIDOnlyWhenAbsent(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, testConfig())

	generated, err := svc.Create(context.Background(), &noteDTO{Title: "fresh"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, generated.ID)

	clientID := uuid.New()
	kept, err := svc.Create(context.Background(), &noteDTO{ID: clientID, Title: "chosen"})
	require.NoError(t, err)
	assert.Equal(t, clientID, kept.ID)
}

func TestCreateRejectsInvalidRecord(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, testConfig())

	_, err := svc.Create(context.Background(), &noteDTO{})
	require.Error(t, err)
	assert.Equal(t, 0, store.upsertCalls)
}

func TestUpdateMissingRecord(t *testing.T) {
	svc := newTestService(t, newFakeStore(), testConfig())
	_, err := svc.Update(context.Background(), uuid.New(), &noteDTO{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReachesSoftDeletedRecord(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	store.records[id] = noteDTO{ID: id, Title: "removed"}
	store.softDeleted[id] = true
	svc := newTestService(t, store, testConfig())

	stored, err := svc.Update(context.Background(), id, &noteDTO{Title: "restored"})
	require.NoError(t, err)
	assert.Equal(t, "restored", stored.Title)
}

func TestCreateOrUpdateDispatchesOnIDPresence(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, testConfig())

	created, err := svc.CreateOrUpdate(context.Background(), &noteDTO{Title: "no id"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	updated, err := svc.CreateOrUpdate(context.Background(), &noteDTO{ID: created.ID, Title: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "renamed", updated.Title)
}

func TestCreateOrUpdateRejectsUnknownID(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, testConfig())

	upsertsBefore := store.upsertCalls
	_, err := svc.CreateOrUpdate(context.Background(), &noteDTO{ID: uuid.New(), Title: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, upsertsBefore, store.upsertCalls)
}

func TestSearchRateLimitDegradesToEmptyPage(t *testing.T) {
	store := newFakeStore()
	store.records[uuid.New()] = noteDTO{ID: uuid.New(), Title: "hidden"}

	cfg := testConfig()
	cfg.SearchRatePerSec = 0
	cfg.SearchBurst = 0
	svc := newTestService(t, store, cfg)

	results, err := svc.Search(context.Background(), "anything", Page{Size: 10})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, store.searchCalls)
}

func TestSearchStoreFailureDegradesToEmptyPage(t *testing.T) {
	store := newFakeStore()
	store.searchErr = errors.New("connection refused")
	svc := newTestService(t, store, testConfig())

	results, err := svc.Search(context.Background(), "anything", Page{Size: 10})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 1, store.searchCalls)
}

func TestBulkUpsertRejectsWholeBatchOnOneInvalidRecord(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, testConfig())

	_, err := svc.BulkUpsert(context.Background(), []noteDTO{
		{Title: "valid"},
		{Title: ""},
	})
	require.Error(t, err)
	assert.Equal(t, 0, store.upsertCalls)
}

func TestBulkDeleteRateLimitIsANoOp(t *testing.T) {
	store := newFakeStore()
	cfg := testConfig()
	cfg.BulkRatePerSec = 0
	cfg.BulkBurst = 0
	svc := newTestService(t, store, cfg)

	err := svc.BulkDelete(context.Background(), []uuid.UUID{uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, 0, store.deleteCalls)
}

func TestChildServiceGuardsParentExistence(t *testing.T) {
	parentStore := newFakeStore()
	parentSvc := newTestService(t, parentStore, testConfig())

	childStore := newFakeStore()
	childSvc := NewChildService(
		newTestService(t, childStore, testConfig()),
		"note", parentSvc,
		func(d *noteDTO) uuid.UUID { return d.ID },
	)

	orphan := noteDTO{ID: uuid.New(), Title: "orphan"}
	_, err := childSvc.CreateOrUpdate(context.Background(), &orphan)
	var pnf *ParentNotFoundError
	require.ErrorAs(t, err, &pnf)
	assert.Equal(t, "note", pnf.Parent)
	assert.Equal(t, 0, childStore.upsertCalls)

	parentID := uuid.New()
	parentStore.records[parentID] = noteDTO{ID: parentID, Title: "parent"}
	childStore.records[parentID] = noteDTO{ID: parentID, Title: "child"}
	_, err = childSvc.CreateOrUpdate(context.Background(), &noteDTO{ID: parentID, Title: "child renamed"})
	require.NoError(t, err)
	assert.Equal(t, 1, childStore.upsertCalls)
}
