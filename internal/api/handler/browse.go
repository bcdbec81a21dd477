package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rohanv/vibes/internal/catalog"
	"github.com/rohanv/vibes/internal/service"
)

// BrowseHandler handles persisted-collection browsing endpoints.
type BrowseHandler struct {
	browseService *service.BrowseService
}

// NewBrowseHandler creates a new browse handler.
// Parameters:
//   - browseService: collection browsing service.
// Returns:
//   - *BrowseHandler: initialized handler.
func NewBrowseHandler(browseService *service.BrowseService) *BrowseHandler {
	return &BrowseHandler{browseService: browseService}
}

// ListRecommendations handles GET /api/v1/:domain/recommendations.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *BrowseHandler) ListRecommendations(c *gin.Context) {
	profile, ok := catalog.Lookup(c.Param("domain"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unknown domain: " + c.Param("domain"),
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	recs, err := h.browseService.List(c.Request.Context(), profile.Domain, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list recommendations: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"domain":  string(profile.Domain),
		"results": recs,
		"count":   len(recs),
		"limit":   limit,
		"offset":  offset,
	})
}

// GetRecommendation handles GET /api/v1/:domain/recommendations/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *BrowseHandler) GetRecommendation(c *gin.Context) {
	if _, ok := catalog.Lookup(c.Param("domain")); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unknown domain: " + c.Param("domain"),
		})
		return
	}

	id := c.Param("id")
	rec, err := h.browseService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Recommendation not found",
		})
		return
	}

	c.JSON(http.StatusOK, rec)
}
