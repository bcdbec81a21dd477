package domain

import "time"

// UserPreference holds a user's saved favorite tags per domain. It seeds the
// initial selection on page activation; the pipeline never writes it.
type UserPreference struct {
	ID                  string      `gorm:"type:text;primaryKey" json:"id"`
	UserEmail           string      `gorm:"type:text;not null;uniqueIndex:idx_preferences_email" json:"user_email"`
	FavoriteMovieGenres StringArray `gorm:"type:text" json:"favorite_movie_genres"`
	FavoriteMusicGenres StringArray `gorm:"type:text" json:"favorite_music_genres"`
	FavoriteCuisines    StringArray `gorm:"type:text" json:"favorite_cuisines"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// TableName returns the database table name for UserPreference.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (UserPreference) TableName() string {
	return "user_preferences"
}

// FavoritesFor returns the saved favorite tags for the given domain.
// Parameters:
//   - d: recommendation domain.
// Returns:
//   - StringArray: favorite tags for d; empty for unknown domains.
func (p *UserPreference) FavoritesFor(d Domain) StringArray {
	switch d {
	case DomainMovie:
		return p.FavoriteMovieGenres
	case DomainMusic:
		return p.FavoriteMusicGenres
	case DomainFood:
		return p.FavoriteCuisines
	default:
		return nil
	}
}
