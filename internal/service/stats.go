package service

import (
	"context"

	"github.com/rohanv/vibes/internal/catalog"
	"github.com/rohanv/vibes/internal/domain"
)

// RecommendationCounter counts persisted recommendations per domain.
type RecommendationCounter interface {
	CountByDomain(ctx context.Context, dom domain.Domain) (int64, error)
}

// StatsService reports persisted-collection sizes per domain.
type StatsService struct {
	counter RecommendationCounter
}

// NewStatsService creates a new stats service.
// Parameters:
//   - counter: per-domain record counter.
// Returns:
//   - *StatsService: initialized service.
func NewStatsService(counter RecommendationCounter) *StatsService {
	return &StatsService{counter: counter}
}

// Stats holds per-domain and total record counts.
type Stats struct {
	Domains map[string]int64 `json:"domains"`
	Total   int64            `json:"total"`
}

// GetStats returns persisted record counts for every registered domain.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - *Stats: per-domain counts and their sum.
//   - error: non-nil if any count query fails.
func (s *StatsService) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{Domains: make(map[string]int64)}
	for dom := range catalog.Profiles() {
		count, err := s.counter.CountByDomain(ctx, dom)
		if err != nil {
			return nil, err
		}
		stats.Domains[string(dom)] = count
		stats.Total += count
	}
	return stats, nil
}
