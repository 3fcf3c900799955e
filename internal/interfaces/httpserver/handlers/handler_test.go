package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediavault/catalog-api/internal/config"
	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/validation"
)

type widgetDTO struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type fakeSvc struct {
	records   map[uuid.UUID]widgetDTO
	createErr error
	lastPage  catalog.Page
	deleted   []uuid.UUID
}

func newFakeSvc() *fakeSvc {
	return &fakeSvc{records: map[uuid.UUID]widgetDTO{}}
}

func (s *fakeSvc) Get(_ context.Context, id uuid.UUID) (*widgetDTO, error) {
	d, ok := s.records[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &d, nil
}

func (s *fakeSvc) GetBy(context.Context, string, string) (*widgetDTO, error) {
	return nil, catalog.ErrNotFound
}

func (s *fakeSvc) List(_ context.Context, page catalog.Page) ([]widgetDTO, error) {
	s.lastPage = page
	return s.all(), nil
}

func (s *fakeSvc) ListBy(context.Context, string, string, catalog.Page) ([]widgetDTO, error) {
	return s.all(), nil
}

func (s *fakeSvc) ListByYear(context.Context, int, catalog.Page) ([]widgetDTO, error) {
	return s.all(), nil
}

func (s *fakeSvc) Search(_ context.Context, _ string, page catalog.Page) ([]widgetDTO, error) {
	s.lastPage = page
	return s.all(), nil
}

func (s *fakeSvc) FindFiltered(context.Context, []catalog.Filter, catalog.Page) ([]widgetDTO, error) {
	return s.all(), nil
}

func (s *fakeSvc) UpdatedSince(context.Context, time.Time, catalog.Page) ([]widgetDTO, error) {
	return s.all(), nil
}

func (s *fakeSvc) Count(context.Context) (int64, error)          { return int64(len(s.records)), nil }
func (s *fakeSvc) CountYear(context.Context, int) (int64, error) { return 0, nil }

func (s *fakeSvc) Create(_ context.Context, d *widgetDTO) (*widgetDTO, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	d.ID = uuid.New()
	s.records[d.ID] = *d
	return d, nil
}

func (s *fakeSvc) Update(_ context.Context, id uuid.UUID, d *widgetDTO) (*widgetDTO, error) {
	if _, ok := s.records[id]; !ok {
		return nil, catalog.ErrNotFound
	}
	d.ID = id
	s.records[id] = *d
	return d, nil
}

func (s *fakeSvc) CreateOrUpdate(_ context.Context, d *widgetDTO) (*widgetDTO, error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	s.records[d.ID] = *d
	return d, nil
}

func (s *fakeSvc) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.records[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *fakeSvc) BulkUpsert(_ context.Context, ds []widgetDTO) ([]widgetDTO, error) { return ds, nil }

func (s *fakeSvc) BulkDelete(_ context.Context, ids []uuid.UUID) error {
	s.deleted = append(s.deleted, ids...)
	return nil
}

func (s *fakeSvc) CountBy(context.Context, catalog.Dimension, int) ([]catalog.DimensionCount, error) {
	return []catalog.DimensionCount{{Value: "en", Count: 2}}, nil
}

func (s *fakeSvc) CountByYear(context.Context, int) ([]catalog.YearCount, error) {
	return []catalog.YearCount{}, nil
}

func (s *fakeSvc) all() []widgetDTO {
	out := make([]widgetDTO, 0, len(s.records))
	for _, d := range s.records {
		out = append(out, d)
	}
	return out
}

func widgetErrBody(id uuid.UUID, msg string) any {
	return &widgetDTO{ID: id, Title: msg}
}

func testRouter(svc ServiceAPI[widgetDTO]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{DefaultPageSize: 10, MaxPageSize: 100}
	h := NewFamilyHandler("widgets", svc, cfg, zerolog.Nop(),
		func(c *gin.Context) []catalog.Filter { return nil },
		widgetErrBody)

	engine := gin.New()
	engine.GET("/widgets", h.List)
	engine.GET("/widgets/search", h.Search)
	engine.GET("/widgets/:id", h.Get)
	engine.POST("/widgets", h.Create)
	engine.PUT("/widgets/:id", h.Update)
	engine.DELETE("/widgets/:id", h.Delete)
	engine.DELETE("/widgets/bulk", h.BulkDelete)
	engine.GET("/widgets/top-languages", h.Top(catalog.Dimension{Name: "language", Column: "language"}))
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestGetByID(t *testing.T) {
	svc := newFakeSvc()
	id := uuid.New()
	svc.records[id] = widgetDTO{ID: id, Title: "found"}
	engine := testRouter(svc)

	rec := doRequest(t, engine, http.MethodGet, "/widgets/"+id.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "found")
}

func TestGetByIDNotFound(t *testing.T) {
	engine := testRouter(newFakeSvc())
	rec := doRequest(t, engine, http.MethodGet, "/widgets/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetByIDRejectsGarbageUUID(t *testing.T) {
	engine := testRouter(newFakeSvc())
	rec := doRequest(t, engine, http.MethodGet, "/widgets/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid UUID")
}

func TestCreateReturns201(t *testing.T) {
	engine := testRouter(newFakeSvc())
	rec := doRequest(t, engine, http.MethodPost, "/widgets", `{"title":"new"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "new")
}

func TestCreateValidationFailureUsesEntityShapedBody(t *testing.T) {
	svc := newFakeSvc()
	svc.createErr = &validation.Error{Fields: []validation.FieldError{
		{Field: "title", Message: "title is required"},
	}}
	engine := testRouter(svc)

	rec := doRequest(t, engine, http.MethodPost, "/widgets", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Validation failed. title: title is required"`)
}

func TestSearchRequiresTerm(t *testing.T) {
	engine := testRouter(newFakeSvc())
	rec := doRequest(t, engine, http.MethodGet, "/widgets/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListClampsPageSize(t *testing.T) {
	svc := newFakeSvc()
	engine := testRouter(svc)

	rec := doRequest(t, engine, http.MethodGet, "/widgets?page=2&size=5000", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, catalog.Page{Number: 2, Size: 100}, svc.lastPage)
}

func TestDeleteReturns204(t *testing.T) {
	svc := newFakeSvc()
	id := uuid.New()
	svc.records[id] = widgetDTO{ID: id, Title: "doomed"}
	engine := testRouter(svc)

	rec := doRequest(t, engine, http.MethodDelete, "/widgets/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBulkDelete(t *testing.T) {
	svc := newFakeSvc()
	engine := testRouter(svc)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	rec := doRequest(t, engine, http.MethodDelete,
		"/widgets/bulk", `["`+ids[0].String()+`","`+ids[1].String()+`"]`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, svc.deleted, 2)
	assert.Equal(t, ids, svc.deleted)
}

func TestTopDimension(t *testing.T) {
	engine := testRouter(newFakeSvc())
	rec := doRequest(t, engine, http.MethodGet, "/widgets/top-languages", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":"en"`)
}
