package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rohanv/vibes/internal/domain"
	"github.com/rohanv/vibes/internal/service"
)

// PreferenceHandler handles saved-preference endpoints.
type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

// NewPreferenceHandler creates a new preference handler.
// Parameters:
//   - preferenceService: preference persistence service.
// Returns:
//   - *PreferenceHandler: initialized handler.
func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// SavePreferencesRequest carries a user's favorite tags per domain.
type SavePreferencesRequest struct {
	FavoriteMovieGenres []string `json:"favorite_movie_genres"`
	FavoriteMusicGenres []string `json:"favorite_music_genres"`
	FavoriteCuisines    []string `json:"favorite_cuisines"`
}

// SavePreferences handles PUT /api/v1/preferences. The caller is identified
// by the X-User-Email header.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *PreferenceHandler) SavePreferences(c *gin.Context) {
	email := c.GetHeader("X-User-Email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "X-User-Email header is required",
		})
		return
	}

	var req SavePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	pref := &domain.UserPreference{
		UserEmail:           email,
		FavoriteMovieGenres: req.FavoriteMovieGenres,
		FavoriteMusicGenres: req.FavoriteMusicGenres,
		FavoriteCuisines:    req.FavoriteCuisines,
	}
	if err := h.preferenceService.Save(c.Request.Context(), pref); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save preferences: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_email":            pref.UserEmail,
		"favorite_movie_genres": pref.FavoriteMovieGenres,
		"favorite_music_genres": pref.FavoriteMusicGenres,
		"favorite_cuisines":     pref.FavoriteCuisines,
	})
}
