// Package handlers exposes the catalog over HTTP. One generic FamilyHandler
// serves every media family; routes decide which endpoints each family gets
// and with which columns and dimensions.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediavault/catalog-api/internal/config"
	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/validation"
)

// ServiceAPI is the slice of the catalog service the HTTP layer consumes.
// Both Service and ChildService satisfy it; child services guard writes
// with a parent-existence check.
type ServiceAPI[D any] interface {
	Get(ctx context.Context, id uuid.UUID) (*D, error)
	GetBy(ctx context.Context, column, value string) (*D, error)
	List(ctx context.Context, page catalog.Page) ([]D, error)
	ListBy(ctx context.Context, column, value string, page catalog.Page) ([]D, error)
	ListByYear(ctx context.Context, year int, page catalog.Page) ([]D, error)
	Search(ctx context.Context, keyword string, page catalog.Page) ([]D, error)
	FindFiltered(ctx context.Context, filters []catalog.Filter, page catalog.Page) ([]D, error)
	UpdatedSince(ctx context.Context, since time.Time, page catalog.Page) ([]D, error)
	Count(ctx context.Context) (int64, error)
	CountYear(ctx context.Context, year int) (int64, error)
	Create(ctx context.Context, d *D) (*D, error)
	Update(ctx context.Context, id uuid.UUID, d *D) (*D, error)
	CreateOrUpdate(ctx context.Context, d *D) (*D, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpsert(ctx context.Context, ds []D) ([]D, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) error
	CountBy(ctx context.Context, dim catalog.Dimension, limit int) ([]catalog.DimensionCount, error)
	CountByYear(ctx context.Context, limit int) ([]catalog.YearCount, error)
}

// FamilyHandler serves one media family's endpoints.
type FamilyHandler[D any] struct {
	family  string
	svc     ServiceAPI[D]
	cfg     *config.Config
	log     zerolog.Logger
	filters func(c *gin.Context) []catalog.Filter
	errBody func(id uuid.UUID, message string) any

	// deleteByParent is set for child families only.
	deleteByParent func(ctx context.Context, parentID uuid.UUID) error
}

// NewFamilyHandler builds a handler. filters maps a family's advanced-search
// query parameters to column filters; errBody builds the entity-shaped error
// payload with the message in the title field.
func NewFamilyHandler[D any](
	family string,
	svc ServiceAPI[D],
	cfg *config.Config,
	log zerolog.Logger,
	filters func(c *gin.Context) []catalog.Filter,
	errBody func(id uuid.UUID, message string) any,
) *FamilyHandler[D] {
	return &FamilyHandler[D]{
		family:  family,
		svc:     svc,
		cfg:     cfg,
		log:     log.With().Str("component", family+"-handler").Logger(),
		filters: filters,
		errBody: errBody,
	}
}

// WithDeleteByParent enables the parent-scoped delete endpoint.
func (h *FamilyHandler[D]) WithDeleteByParent(fn func(ctx context.Context, parentID uuid.UUID) error) *FamilyHandler[D] {
	h.deleteByParent = fn
	return h
}

func (h *FamilyHandler[D]) respondError(c *gin.Context, id uuid.UUID, err error) {
	var verr *validation.Error
	var pnf *catalog.ParentNotFoundError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, h.errBody(id, verr.Error()))
	case errors.As(err, &pnf):
		c.JSON(http.StatusNotFound, h.errBody(id, pnf.Error()))
	case errors.Is(err, catalog.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *FamilyHandler[D]) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, h.errBody(uuid.Nil, "Invalid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// Get handles GET /:id.
func (h *FamilyHandler[D]) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// List handles GET "".
func (h *FamilyHandler[D]) List(c *gin.Context) {
	ds, err := h.svc.List(c.Request.Context(), parsePage(c, h.cfg))
	if err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

// Search handles GET /search?term=.
func (h *FamilyHandler[D]) Search(c *gin.Context) {
	term := c.Query("term")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "term is required"})
		return
	}
	ds, err := h.svc.Search(c.Request.Context(), term, parsePage(c, h.cfg))
	if err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

// AdvancedSearch handles GET /advanced-search with per-family parameters.
func (h *FamilyHandler[D]) AdvancedSearch(c *gin.Context) {
	ds, err := h.svc.FindFiltered(c.Request.Context(), h.filters(c), parsePage(c, h.cfg))
	if err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

// GetByColumn handles point lookups like GET /imdb/:value.
func (h *FamilyHandler[D]) GetByColumn(column, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := h.svc.GetBy(c.Request.Context(), column, c.Param(param))
		if err != nil {
			h.respondError(c, uuid.Nil, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// ListByColumn handles listings like GET /language/:value.
func (h *FamilyHandler[D]) ListByColumn(column, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ds, err := h.svc.ListBy(c.Request.Context(), column, c.Param(param), parsePage(c, h.cfg))
		if err != nil {
			h.respondError(c, uuid.Nil, err)
			return
		}
		c.JSON(http.StatusOK, ds)
	}
}

// ListByParent handles child listings like GET /series/:parentId, validating
// the path segment as a UUID.
func (h *FamilyHandler[D]) ListByParent(column, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.pathID(c, param)
		if !ok {
			return
		}
		ds, err := h.svc.ListBy(c.Request.Context(), column, id.String(), parsePage(c, h.cfg))
		if err != nil {
			h.respondError(c, uuid.Nil, err)
			return
		}
		c.JSON(http.StatusOK, ds)
	}
}

// DeleteByParent handles DELETE of every child under a parent id.
func (h *FamilyHandler[D]) DeleteByParent(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.pathID(c, param)
		if !ok {
			return
		}
		if err := h.deleteByParent(c.Request.Context(), id); err != nil {
			h.respondError(c, id, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ListByFilterColumn handles listings over columns that need filter
// semantics rather than equality, e.g. membership in a text[] column.
func (h *FamilyHandler[D]) ListByFilterColumn(column, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := []catalog.Filter{{Column: column, Value: c.Param(param)}}
		ds, err := h.svc.FindFiltered(c.Request.Context(), filters, parsePage(c, h.cfg))
		if err != nil {
			h.respondError(c, uuid.Nil, err)
			return
		}
		c.JSON(http.StatusOK, ds)
	}
}

// ListByParentSegment handles two-segment child listings like
// GET /series/:seriesId/season/:seasonNumber.
func (h *FamilyHandler[D]) ListByParentSegment(parentColumn, parentParam, column, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.pathID(c, parentParam)
		if !ok {
			return
		}
		filters := []catalog.Filter{
			{Column: parentColumn, Value: id.String()},
			{Column: column, Value: c.Param(param)},
		}
		ds, err := h.svc.FindFiltered(c.Request.Context(), filters, parsePage(c, h.cfg))
		if err != nil {
			h.respondError(c, uuid.Nil, err)
			return
		}
		c.JSON(http.StatusOK, ds)
	}
}

// ListByYear handles GET /year/:year.
func (h *FamilyHandler[D]) ListByYear(c *gin.Context) {
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	ds, err := h.svc.ListByYear(c.Request.Context(), year, parsePage(c, h.cfg))
	if err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

// Updates handles GET /updates?since= for incremental sync.
func (h *FamilyHandler[D]) Updates(c *gin.Context) {
	raw := c.Query("since")
	since, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "since must be an RFC3339 timestamp"})
		return
	}
	ds, err := h.svc.UpdatedSince(c.Request.Context(), since, parsePage(c, h.cfg))
	if err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

// Count handles GET /count.
func (h *FamilyHandler[D]) Count(c *gin.Context) {
	n, err := h.svc.Count(c.Request.Context())
	if err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// CountForYear handles GET /count-by-year/:year.
func (h *FamilyHandler[D]) CountForYear(c *gin.Context) {
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	n, err := h.svc.CountYear(c.Request.Context(), year)
	if err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// YearCounts handles GET /year-count?limit=.
func (h *FamilyHandler[D]) YearCounts(c *gin.Context) {
	counts, err := h.svc.CountByYear(c.Request.Context(), parseLimit(c))
	if err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// Top handles aggregate listings like GET /top-languages?limit=.
func (h *FamilyHandler[D]) Top(dim catalog.Dimension) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := h.svc.CountBy(c.Request.Context(), dim, parseLimit(c))
		if err != nil {
			h.respondError(c, uuid.Nil, err)
			return
		}
		c.JSON(http.StatusOK, counts)
	}
}

// Create handles POST "".
func (h *FamilyHandler[D]) Create(c *gin.Context) {
	var d D
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, h.errBody(uuid.Nil, "Malformed request body"))
		return
	}
	stored, err := h.svc.Create(c.Request.Context(), &d)
	if err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// CreateOrUpdate handles POST /create-or-update with id-presence dispatch.
func (h *FamilyHandler[D]) CreateOrUpdate(c *gin.Context) {
	var d D
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, h.errBody(uuid.Nil, "Malformed request body"))
		return
	}
	stored, err := h.svc.CreateOrUpdate(c.Request.Context(), &d)
	if err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// Update handles PUT /:id.
func (h *FamilyHandler[D]) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var d D
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, h.errBody(id, "Malformed request body"))
		return
	}
	stored, err := h.svc.Update(c.Request.Context(), id, &d)
	if err != nil {
		h.respondError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// Delete handles DELETE /:id.
func (h *FamilyHandler[D]) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkUpdate handles PUT /bulk with a JSON array body.
func (h *FamilyHandler[D]) BulkUpdate(c *gin.Context) {
	var ds []D
	if err := c.ShouldBindJSON(&ds); err != nil {
		c.JSON(http.StatusBadRequest, h.errBody(uuid.Nil, "Malformed request body"))
		return
	}
	stored, err := h.svc.BulkUpsert(c.Request.Context(), ds)
	if err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// BulkDelete handles DELETE /bulk with a JSON array of ids.
func (h *FamilyHandler[D]) BulkDelete(c *gin.Context) {
	var ids []uuid.UUID
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be an array of UUIDs"})
		return
	}
	if err := h.svc.BulkDelete(c.Request.Context(), ids); err != nil {
		h.respondError(c, uuid.Nil, err)
		return
	}
	c.Status(http.StatusNoContent)
}
