package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rohanv/vibes/internal/domain"
	"gorm.io/gorm"
)

// RecommendationRepository handles recommendation data operations.
type RecommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new RecommendationRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *RecommendationRepository: repository instance bound to db.
func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// FindBySelection retrieves recommendations matching the current selection:
// equality on mood when set, membership on tag when tags are non-empty, and
// equality on meal type when not "all". Rows older than the freshness window
// are excluded when freshness is positive. Results come back in insertion
// order.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - dom: recommendation domain to search.
//   - mood: selected mood; empty means any.
//   - tags: selected tags; empty means any.
//   - mealType: food sub-filter; empty or "all" means any.
//   - freshness: maximum record age; zero disables the window.
// Returns:
//   - []domain.Recommendation: matching records.
//   - error: non-nil if the query fails.
func (r *RecommendationRepository) FindBySelection(
	ctx context.Context,
	dom domain.Domain,
	mood string,
	tags []string,
	mealType string,
	freshness time.Duration,
) ([]domain.Recommendation, error) {
	query := r.db.WithContext(ctx).Where("domain = ?", dom)

	if mood != "" {
		query = query.Where("mood = ?", mood)
	}
	if len(tags) > 0 {
		query = query.Where("tag IN ?", tags)
	}
	if mealType != "" && mealType != "all" {
		query = query.Where("meal_type = ?", mealType)
	}
	if freshness > 0 {
		query = query.Where("created_at > ?", time.Now().Add(-freshness))
	}

	var recs []domain.Recommendation
	if err := query.Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	return recs, nil
}

// BulkCreate persists a batch of freshly generated recommendations in one write.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - recs: records to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *RecommendationRepository) BulkCreate(ctx context.Context, recs []domain.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&recs).Error
}

// GetByID retrieves a recommendation by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: record ID.
// Returns:
//   - *domain.Recommendation: record if found.
//   - error: non-nil if lookup fails.
func (r *RecommendationRepository) GetByID(ctx context.Context, id string) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByDomain retrieves recommendations for a domain with pagination.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - dom: domain to list.
//   - limit: maximum number of records to return.
//   - offset: number of records to skip.
// Returns:
//   - []domain.Recommendation: matching records, newest first.
//   - error: non-nil if the query fails.
func (r *RecommendationRepository) ListByDomain(ctx context.Context, dom domain.Domain, limit, offset int) ([]domain.Recommendation, error) {
	var recs []domain.Recommendation
	if err := r.db.WithContext(ctx).
		Where("domain = ?", dom).
		Limit(limit).
		Offset(offset).
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// CountByDomain counts persisted recommendations for a domain.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - dom: domain to count.
// Returns:
//   - int64: number of records.
//   - error: non-nil if the query fails.
func (r *RecommendationRepository) CountByDomain(ctx context.Context, dom domain.Domain) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Recommendation{}).
		Where("domain = ?", dom).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
