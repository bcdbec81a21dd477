package catalog

import (
	"fmt"
)

// MaxTags is the cap on simultaneously selected category tags.
const MaxTags = 3

// SelectionState holds the user's current mood and category tags for one
// domain. At most one mood and MaxTags tags may be set; tag order is
// preserved. MealType is the food-only sub-filter, where empty means "all".
type SelectionState struct {
	Mood     string   `json:"mood"`
	Tags     []string `json:"tags"`
	MealType string   `json:"meal_type,omitempty"`
}

// ToggleMood selects the mood, or clears it when it is already selected.
// Parameters:
//   - mood: mood value to toggle.
// Returns: none.
func (s *SelectionState) ToggleMood(mood string) {
	if s.Mood == mood {
		s.Mood = ""
		return
	}
	s.Mood = mood
}

// ToggleTag selects the tag, removes it when already selected, and is a
// no-op when the selection is at the MaxTags cap.
// Parameters:
//   - tag: tag value to toggle.
// Returns: none.
func (s *SelectionState) ToggleTag(tag string) {
	for i, t := range s.Tags {
		if t == tag {
			s.Tags = append(s.Tags[:i], s.Tags[i+1:]...)
			return
		}
	}
	if len(s.Tags) >= MaxTags {
		return
	}
	s.Tags = append(s.Tags, tag)
}

// HasTag reports whether the tag is currently selected.
func (s *SelectionState) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Valid reports whether the selection can drive a recommendation request:
// a mood is set or at least one tag is selected.
func (s *SelectionState) Valid() bool {
	return s.Mood != "" || len(s.Tags) > 0
}

// EffectiveMealType returns the meal-type sub-filter, defaulting to "all".
func (s *SelectionState) EffectiveMealType() string {
	if s.MealType == "" {
		return "all"
	}
	return s.MealType
}

// Reset clears the selection back to its initial state.
func (s *SelectionState) Reset() {
	s.Mood = ""
	s.Tags = nil
	s.MealType = ""
}

// ValidateSelection checks a selection against the profile vocabularies.
// Parameters:
//   - sel: selection to validate.
// Returns:
//   - error: non-nil when the mood, a tag, or the meal type is outside the
//     vocabulary, or the tag cap is exceeded.
func (p *Profile) ValidateSelection(sel *SelectionState) error {
	if sel.Mood != "" && !p.HasMood(sel.Mood) {
		return fmt.Errorf("unknown %s mood: %q", p.Domain, sel.Mood)
	}
	if len(sel.Tags) > MaxTags {
		return fmt.Errorf("at most %d tags may be selected", MaxTags)
	}
	for _, tag := range sel.Tags {
		if !p.HasTag(tag) {
			return fmt.Errorf("unknown %s tag: %q", p.Domain, tag)
		}
	}
	if sel.MealType != "" && len(p.MealTypes) > 0 && !p.HasMealType(sel.MealType) {
		return fmt.Errorf("unknown meal type: %q", sel.MealType)
	}
	return nil
}

// DisplayFilter is the presentation-only filter and sort state. It is never
// persisted; it narrows and orders the in-memory recommendation list.
// Empty Platform and Spice mean "all"; empty SortBy means relevance.
type DisplayFilter struct {
	Query    string `json:"query,omitempty" form:"query"`
	Platform string `json:"platform,omitempty" form:"platform"`
	Spice    string `json:"spice,omitempty" form:"spice"`
	SortBy   string `json:"sort_by,omitempty" form:"sort_by"`
}
