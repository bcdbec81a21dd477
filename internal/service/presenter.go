package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rohanv/vibes/internal/catalog"
	"github.com/rohanv/vibes/internal/domain"
)

// Card is the display projection of one recommendation: everything the
// client needs to render it, including resolved outbound platform links.
type Card struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Subtitle    string            `json:"subtitle,omitempty"`
	Description string            `json:"description,omitempty"`
	ImageURL    string            `json:"image_url"`
	Tags        []string          `json:"tags"`
	Platforms   []string          `json:"platforms"`
	Links       map[string]string `json:"links"`
}

// ApplyDisplayFilter narrows and orders a recommendation list for display.
// It is a pure function: the input slice is never mutated. Filters apply
// conjunctively (free-text substring over name/tag/description, platform
// membership, exact spice match), then the selected sort key orders the
// survivors. Sorting is stable, so equal keys keep their filtered order,
// and relevance (or an unknown key) preserves it entirely.
// Parameters:
//   - p: domain profile supplying the sort comparators.
//   - recs: working recommendation list.
//   - filter: display filter state.
// Returns:
//   - []domain.Recommendation: filtered, ordered copy.
func ApplyDisplayFilter(p *catalog.Profile, recs []domain.Recommendation, filter *catalog.DisplayFilter) []domain.Recommendation {
	if filter == nil {
		filter = &catalog.DisplayFilter{}
	}

	out := make([]domain.Recommendation, 0, len(recs))
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	for _, rec := range recs {
		if query != "" && !matchesQuery(rec, query) {
			continue
		}
		if filter.Platform != "" && filter.Platform != "all" && !rec.Platforms.Contains(filter.Platform) {
			continue
		}
		if filter.Spice != "" && filter.Spice != "all" && rec.SpiceLevel != domain.SpiceLevel(filter.Spice) {
			continue
		}
		out = append(out, rec)
	}

	if less := p.SortKeys[filter.SortBy]; less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j])
		})
	}

	return out
}

func matchesQuery(rec domain.Recommendation, query string) bool {
	return strings.Contains(strings.ToLower(rec.Name), query) ||
		strings.Contains(strings.ToLower(rec.Tag), query) ||
		strings.Contains(strings.ToLower(rec.Description), query)
}

// Present maps a filtered recommendation list to display cards.
// Parameters:
//   - p: domain profile supplying deep-link templates.
//   - recs: recommendations to project, already filtered and sorted.
// Returns:
//   - []Card: display cards with resolved platform links.
func Present(p *catalog.Profile, recs []domain.Recommendation) []Card {
	cards := make([]Card, 0, len(recs))
	for _, rec := range recs {
		links := make(map[string]string, len(rec.Platforms))
		for _, platform := range rec.Platforms {
			links[platform] = p.DeepLink(platform, rec.Name)
		}
		cards = append(cards, Card{
			ID:          rec.ID,
			Name:        rec.Name,
			Subtitle:    subtitle(rec),
			Description: rec.Description,
			ImageURL:    rec.ImageURL,
			Tags:        []string{rec.Tag, rec.Mood},
			Platforms:   rec.Platforms,
			Links:       links,
		})
	}
	return cards
}

func subtitle(rec domain.Recommendation) string {
	switch rec.Domain {
	case domain.DomainFood:
		if rec.PrepTime > 0 {
			return fmt.Sprintf("%s • %d min", rec.Tag, rec.PrepTime)
		}
		return rec.Tag
	default:
		if rec.Creator != "" && rec.Year > 0 {
			return fmt.Sprintf("%s • %d", rec.Creator, rec.Year)
		}
		if rec.Creator != "" {
			return rec.Creator
		}
		if rec.Year > 0 {
			return fmt.Sprintf("%d", rec.Year)
		}
		return ""
	}
}
