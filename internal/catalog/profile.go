package catalog

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rohanv/vibes/internal/domain"
)

// Profile carries everything domain-specific about a recommendation
// vertical: vocabularies, sufficiency tuning, deep-link templates, the
// derived-media template, and the generation schema/decoder. The pipeline
// itself is generic; only these tables differ between movies, music, and food.
type Profile struct {
	Domain domain.Domain

	// Selection vocabularies. Tags are genres for movies/music, cuisines for food.
	Moods     []string
	Tags      []string
	MealTypes []string // food only, includes "all"
	Platforms []string

	// Count is how many items a generation run asks for; Threshold is the
	// minimum persisted-match count below which generation is required.
	Count     int
	Threshold int

	// SortKeys maps a sort key to its comparator; a nil comparator means
	// relevance (keep filtered order). SortKeyOrder preserves display order.
	SortKeys     map[string]func(a, b domain.Recommendation) bool
	SortKeyOrder []string

	// DeepLinks maps a platform ID to a search URL template with a single
	// %s slot for the percent-encoded item name. FallbackQuery is the suffix
	// appended to the name for the generic web-search fallback.
	DeepLinks     map[string]string
	FallbackQuery string

	// ImageQuery builds the query segment of the derived image URL for an
	// item; ImageSize is the requested dimensions segment.
	ImageSize  string
	ImageQuery func(r domain.Recommendation) string

	// Schema is the response_json_schema handed to the generative-text
	// service; Decode parses its payload into recommendation records.
	Schema map[string]interface{}
	Decode func(raw json.RawMessage) ([]domain.Recommendation, error)
}

// HasMood reports whether the mood belongs to the profile vocabulary.
func (p *Profile) HasMood(mood string) bool {
	return contains(p.Moods, mood)
}

// HasTag reports whether the tag belongs to the profile vocabulary.
func (p *Profile) HasTag(tag string) bool {
	return contains(p.Tags, tag)
}

// HasMealType reports whether the meal type belongs to the profile vocabulary.
func (p *Profile) HasMealType(mealType string) bool {
	return contains(p.MealTypes, mealType)
}

// HasSortKey reports whether the sort key is defined for the profile.
func (p *Profile) HasSortKey(key string) bool {
	_, ok := p.SortKeys[key]
	return ok
}

// DeepLink resolves a (platform, item name) pair to an outbound search URL.
// The mapping is total: unrecognized platforms resolve through the generic
// web-search fallback, so callers never handle an error case.
// Parameters:
//   - platform: platform identifier, not required to be in the vocabulary.
//   - name: item display name, percent-encoded into the query position.
// Returns:
//   - string: non-empty provider search URL.
func (p *Profile) DeepLink(platform, name string) string {
	encoded := url.QueryEscape(name)
	if tmpl, ok := p.DeepLinks[platform]; ok {
		return fmt.Sprintf(tmpl, encoded)
	}
	return fmt.Sprintf("https://www.google.com/search?q=%s+%s", encoded, p.FallbackQuery)
}

// ImageURL derives the media URL for an item. The generative-text service
// never supplies images; this is a deterministic function of the item's
// attributes against the image-search endpoint.
// Parameters:
//   - baseURL: image endpoint base, e.g. "https://source.unsplash.com/random".
//   - r: item to derive media for.
// Returns:
//   - string: derived image URL.
func (p *Profile) ImageURL(baseURL string, r domain.Recommendation) string {
	return fmt.Sprintf("%s/%s/?%s", strings.TrimSuffix(baseURL, "/"), p.ImageSize, p.ImageQuery(r))
}

func contains(vocab []string, v string) bool {
	for _, s := range vocab {
		if s == v {
			return true
		}
	}
	return false
}

// profiles holds the registered domain profiles. Treated as immutable after
// package initialization.
var profiles = map[domain.Domain]*Profile{
	domain.DomainMovie: movieProfile,
	domain.DomainMusic: musicProfile,
	domain.DomainFood:  foodProfile,
}

// Profiles returns the registered domain profiles keyed by domain.
// Parameters: none.
// Returns:
//   - map[domain.Domain]*Profile: movie, music, and food profiles.
func Profiles() map[domain.Domain]*Profile {
	return profiles
}

// Lookup resolves a domain name to its profile.
// Parameters:
//   - name: domain identifier string.
// Returns:
//   - *Profile: matching profile.
//   - bool: false when the name is not a known domain.
func Lookup(name string) (*Profile, bool) {
	p, ok := profiles[domain.Domain(name)]
	return p, ok
}
