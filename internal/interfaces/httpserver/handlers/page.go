package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mediavault/catalog-api/internal/config"
	"github.com/mediavault/catalog-api/internal/domain/catalog"
)

// parsePage reads page/size query parameters, clamping size to the
// configured maximum. Pages are zero-based.
func parsePage(c *gin.Context, cfg *config.Config) catalog.Page {
	page := catalog.Page{Number: 0, Size: cfg.DefaultPageSize}
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			page.Number = n
		}
	}
	if raw := c.Query("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page.Size = n
		}
	}
	if page.Size > cfg.MaxPageSize {
		page.Size = cfg.MaxPageSize
	}
	return page
}

// parseLimit reads the limit query parameter of aggregate endpoints.
func parseLimit(c *gin.Context) int {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	return limit
}

// intParam parses an integer path segment, answering 400 on garbage.
func intParam(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return n, true
}
