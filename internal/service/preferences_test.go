package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rohanv/vibes/internal/catalog"
	"github.com/rohanv/vibes/internal/domain"
)

type stubPreferenceStore struct {
	pref   *domain.UserPreference
	getErr error
	saved  *domain.UserPreference
}

func (s *stubPreferenceStore) GetByEmail(_ context.Context, _ string) (*domain.UserPreference, error) {
	return s.pref, s.getErr
}

func (s *stubPreferenceStore) Upsert(_ context.Context, pref *domain.UserPreference) error {
	s.saved = pref
	return nil
}

func TestPreferenceService_SeedSelection(t *testing.T) {
	movie, _ := catalog.Lookup("movie")
	food, _ := catalog.Lookup("food")

	pref := &domain.UserPreference{
		UserEmail:           "rohan@example.com",
		FavoriteMovieGenres: domain.StringArray{"sci-fi", "western", "drama", "action", "comedy"},
		FavoriteCuisines:    domain.StringArray{"thai", "indian"},
	}

	tests := []struct {
		name    string
		store   *stubPreferenceStore
		profile *catalog.Profile
		email   string
		want    []string
	}{
		{
			name:    "unauthenticated gets empty selection",
			store:   &stubPreferenceStore{pref: pref},
			profile: movie,
			email:   "",
			want:    nil,
		},
		{
			name:    "unknown user gets empty selection",
			store:   &stubPreferenceStore{},
			profile: movie,
			email:   "rohan@example.com",
			want:    nil,
		},
		{
			name:    "lookup failure degrades to empty selection",
			store:   &stubPreferenceStore{getErr: errors.New("db down")},
			profile: movie,
			email:   "rohan@example.com",
			want:    nil,
		},
		{
			name:    "favorites seed tags, unknown ones skipped, capped at limit",
			store:   &stubPreferenceStore{pref: pref},
			profile: movie,
			email:   "rohan@example.com",
			want:    []string{"sci-fi", "drama", "action"},
		},
		{
			name:    "cuisines seed the food domain",
			store:   &stubPreferenceStore{pref: pref},
			profile: food,
			email:   "rohan@example.com",
			want:    []string{"thai", "indian"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPreferenceService(tt.store, nil)
			sel := svc.SeedSelection(context.Background(), tt.profile, tt.email)

			if len(tt.want) == 0 {
				if sel.Valid() {
					t.Errorf("expected empty selection, got %+v", sel)
				}
				return
			}
			if !reflect.DeepEqual(sel.Tags, tt.want) {
				t.Errorf("expected tags %v, got %v", tt.want, sel.Tags)
			}
			if sel.Mood != "" {
				t.Errorf("seeding must not set a mood, got %q", sel.Mood)
			}
		})
	}
}

func TestPreferenceService_SaveAssignsID(t *testing.T) {
	store := &stubPreferenceStore{}
	svc := NewPreferenceService(store, nil)

	pref := &domain.UserPreference{UserEmail: "rohan@example.com"}
	if err := svc.Save(context.Background(), pref); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.saved == nil || store.saved.ID == "" {
		t.Error("expected an assigned ID on save")
	}
}
