package service

import (
	"context"

	"github.com/rohanv/vibes/internal/domain"
)

// RecommendationReader pages through the persisted collection.
type RecommendationReader interface {
	ListByDomain(ctx context.Context, dom domain.Domain, limit, offset int) ([]domain.Recommendation, error)
	GetByID(ctx context.Context, id string) (*domain.Recommendation, error)
}

// BrowseService exposes the persisted collection directly, newest first,
// independent of any selection. It backs the catalog-browsing endpoints.
type BrowseService struct {
	reader RecommendationReader
}

// NewBrowseService creates a new browse service.
// Parameters:
//   - reader: persisted recommendation reader.
// Returns:
//   - *BrowseService: initialized service.
func NewBrowseService(reader RecommendationReader) *BrowseService {
	return &BrowseService{reader: reader}
}

// List returns a page of persisted recommendations for a domain.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - dom: domain to list.
//   - limit: page size; values outside 1..100 are clamped.
//   - offset: number of records to skip.
// Returns:
//   - []domain.Recommendation: page of records, newest first.
//   - error: non-nil if the query fails.
func (s *BrowseService) List(ctx context.Context, dom domain.Domain, limit, offset int) ([]domain.Recommendation, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.reader.ListByDomain(ctx, dom, limit, offset)
}

// Get returns a single persisted recommendation by ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: record ID.
// Returns:
//   - *domain.Recommendation: record if found.
//   - error: non-nil if lookup fails, including not-found.
func (s *BrowseService) Get(ctx context.Context, id string) (*domain.Recommendation, error) {
	return s.reader.GetByID(ctx, id)
}
