package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rohanv/vibes/internal/catalog"
	"github.com/rohanv/vibes/internal/domain"
	"github.com/rohanv/vibes/internal/logger"
)

// PreferenceStore reads and writes saved user preferences.
type PreferenceStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.UserPreference, error)
	Upsert(ctx context.Context, pref *domain.UserPreference) error
}

// PreferenceService seeds initial selections from a user's saved favorites.
// An absent or unknown user is not an error: the selection simply starts
// empty and the pipeline proceeds without personalization.
type PreferenceService struct {
	store  PreferenceStore
	logger *logger.Logger
}

// NewPreferenceService creates a new preference service.
// Parameters:
//   - store: preference store.
//   - log: logger instance.
// Returns:
//   - *PreferenceService: initialized service.
func NewPreferenceService(store PreferenceStore, log *logger.Logger) *PreferenceService {
	return &PreferenceService{
		store:  store,
		logger: log,
	}
}

// SeedSelection builds the initial selection for a domain from the user's
// saved favorites, capped at the tag limit. Unauthenticated callers and
// lookup failures yield an empty selection.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - p: domain profile whose vocabulary gates the seeded tags.
//   - email: user email; empty means unauthenticated.
// Returns:
//   - *catalog.SelectionState: seeded (possibly empty) selection.
func (s *PreferenceService) SeedSelection(ctx context.Context, p *catalog.Profile, email string) *catalog.SelectionState {
	sel := &catalog.SelectionState{}
	if email == "" {
		return sel
	}

	pref, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		logger.CtxWarn(ctx, "Preference lookup failed, proceeding without personalization: err=%v", err)
		return sel
	}
	if pref == nil {
		return sel
	}

	for _, tag := range pref.FavoritesFor(p.Domain) {
		if len(sel.Tags) >= catalog.MaxTags {
			break
		}
		if p.HasTag(tag) && !sel.HasTag(tag) {
			sel.ToggleTag(tag)
		}
	}
	return sel
}

// Save upserts a user's preference record, assigning an ID when absent.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - pref: preference record to save.
// Returns:
//   - error: non-nil if the write fails.
func (s *PreferenceService) Save(ctx context.Context, pref *domain.UserPreference) error {
	if pref.ID == "" {
		pref.ID = uuid.New().String()
	}
	return s.store.Upsert(ctx, pref)
}
