package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rohanv/vibes/internal/catalog"
	"github.com/rohanv/vibes/internal/domain"
	"github.com/rohanv/vibes/internal/logger"
	"github.com/rohanv/vibes/internal/service"
)

// RecommendHandler handles recommendation pipeline endpoints.
type RecommendHandler struct {
	recommendService  *service.RecommendService
	preferenceService *service.PreferenceService
	statsService      *service.StatsService
}

// NewRecommendHandler creates a new recommend handler.
// Parameters:
//   - recommendService: pipeline service.
//   - preferenceService: selection seeding service.
//   - statsService: collection stats service.
// Returns:
//   - *RecommendHandler: initialized handler.
func NewRecommendHandler(
	recommendService *service.RecommendService,
	preferenceService *service.PreferenceService,
	statsService *service.StatsService,
) *RecommendHandler {
	return &RecommendHandler{
		recommendService:  recommendService,
		preferenceService: preferenceService,
		statsService:      statsService,
	}
}

// RecommendRequest carries the selection and display-filter state for one
// pipeline run.
type RecommendRequest struct {
	Mood     string   `json:"mood"`
	Tags     []string `json:"tags"`
	MealType string   `json:"meal_type"`
	Query    string   `json:"query"`
	Platform string   `json:"platform"`
	Spice    string   `json:"spice"`
	SortBy   string   `json:"sort_by"`
}

// RecommendResponse is the pipeline result projected for display.
type RecommendResponse struct {
	Domain    string         `json:"domain"`
	Cards     []service.Card `json:"cards"`
	Total     int            `json:"total"`
	Generated bool           `json:"generated"`
}

// GetRecommendations handles POST /api/v1/:domain/recommendations.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecommendHandler) GetRecommendations(c *gin.Context) {
	profile, ok := catalog.Lookup(c.Param("domain"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unknown domain: " + c.Param("domain"),
		})
		return
	}

	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	sel := &catalog.SelectionState{
		Mood:     req.Mood,
		Tags:     req.Tags,
		MealType: req.MealType,
	}
	if err := profile.ValidateSelection(sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !sel.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Select a mood or at least one tag",
		})
		return
	}

	ctx := logger.SetDomain(c.Request.Context(), string(profile.Domain))

	result := h.recommendService.Recommend(ctx, profile, sel)
	filtered := service.ApplyDisplayFilter(profile, result.Items, &catalog.DisplayFilter{
		Query:    req.Query,
		Platform: req.Platform,
		Spice:    req.Spice,
		SortBy:   req.SortBy,
	})

	c.JSON(http.StatusOK, RecommendResponse{
		Domain:    string(profile.Domain),
		Cards:     service.Present(profile, filtered),
		Total:     len(filtered),
		Generated: result.Generated,
	})
}

// ListDomains handles GET /api/v1/domains.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecommendHandler) ListDomains(c *gin.Context) {
	domains := make([]string, 0, len(catalog.Profiles()))
	for dom := range catalog.Profiles() {
		domains = append(domains, string(dom))
	}
	c.JSON(http.StatusOK, gin.H{
		"domains": domains,
		"total":   len(domains),
	})
}

// GetOptions handles GET /api/v1/:domain/options.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecommendHandler) GetOptions(c *gin.Context) {
	profile, ok := catalog.Lookup(c.Param("domain"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unknown domain: " + c.Param("domain"),
		})
		return
	}

	resp := gin.H{
		"domain":    string(profile.Domain),
		"moods":     profile.Moods,
		"tags":      profile.Tags,
		"platforms": profile.Platforms,
		"sort_keys": profile.SortKeyOrder,
		"max_tags":  catalog.MaxTags,
	}
	if len(profile.MealTypes) > 0 {
		resp["meal_types"] = profile.MealTypes
	}
	if profile.Domain == domain.DomainFood {
		resp["spice_levels"] = []domain.SpiceLevel{
			domain.SpiceMild, domain.SpiceMedium, domain.SpiceSpicy, domain.SpiceVerySpicy,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetSelection handles GET /api/v1/:domain/selection. It returns the
// selection seeded from the caller's saved preferences; unauthenticated
// callers get an empty selection, not an error.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecommendHandler) GetSelection(c *gin.Context) {
	profile, ok := catalog.Lookup(c.Param("domain"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unknown domain: " + c.Param("domain"),
		})
		return
	}

	email := c.GetHeader("X-User-Email")
	sel := h.preferenceService.SeedSelection(c.Request.Context(), profile, email)

	c.JSON(http.StatusOK, gin.H{
		"domain":    string(profile.Domain),
		"mood":      sel.Mood,
		"tags":      sel.Tags,
		"meal_type": sel.EffectiveMealType(),
	})
}

// ResolveLink handles GET /api/v1/:domain/links. The resolution is total:
// an unrecognized platform resolves through the generic web-search fallback.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecommendHandler) ResolveLink(c *gin.Context) {
	profile, ok := catalog.Lookup(c.Param("domain"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unknown domain: " + c.Param("domain"),
		})
		return
	}

	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'name' is required",
		})
		return
	}
	platform := c.Query("platform")

	c.JSON(http.StatusOK, gin.H{
		"domain":   string(profile.Domain),
		"platform": platform,
		"name":     name,
		"url":      profile.DeepLink(platform, name),
	})
}

// GetStats handles GET /api/v1/stats.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecommendHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
