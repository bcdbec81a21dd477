package repository

import (
	"context"
	"errors"

	"github.com/rohanv/vibes/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository handles user preference data operations.
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new PreferenceRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *PreferenceRepository: repository instance bound to db.
func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetByEmail retrieves the saved preference record for a user.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - email: user email address.
// Returns:
//   - *domain.UserPreference: preference record, nil when none is saved.
//   - error: non-nil if the lookup fails for any other reason.
func (r *PreferenceRepository) GetByEmail(ctx context.Context, email string) (*domain.UserPreference, error) {
	var pref domain.UserPreference
	err := r.db.WithContext(ctx).First(&pref, "user_email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert creates or updates a user's preference record keyed by email.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - pref: preference record to create or update.
// Returns:
//   - error: non-nil if the upsert fails.
func (r *PreferenceRepository) Upsert(ctx context.Context, pref *domain.UserPreference) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_email"}},
		UpdateAll: true,
	}).Create(pref).Error
}
