package prompts

import (
	"fmt"
	"strings"

	"github.com/rohanv/vibes/internal/catalog"
	"github.com/rohanv/vibes/internal/domain"
)

// Generation prompts mirror the per-domain instruction format the product
// has always used: desired count, mood (or "any mood"), tag list (or
// "all <categories>"), any sub-filter qualifier, and the field list the
// structured-output schema expects.

const moviePromptTemplate = `Generate %d movie recommendations for a user who is feeling %s and likes the following genres: %s.

For each movie, include:
- Movie title
- Director
- Year released (between 1970 and 2023)
- A short description (1-2 sentences)
- The mood it matches
- The primary genre
- On which platforms it might be available (%s)
- A rating between 7.0 and 9.5

Make sure the recommendations are diverse and actually match the requested mood and genres.`

const musicPromptTemplate = `Generate %d music recommendations for a user who is feeling %s and likes the following genres: %s.

For each song, include:
- Song title
- Artist name
- Year released (between 1970 and 2023)
- The mood it matches
- The primary genre
- A BPM (beats per minute) value
- On which platforms it might be available (%s)

Make sure the recommendations are diverse and actually match the requested mood and genres.`

const foodPromptTemplate = `Generate %d food recommendations for a user who is feeling %s and likes the following cuisines: %s.
%s
For each food item, include:
- Name of the dish
- Cuisine it belongs to
- Type of meal (breakfast, lunch, dinner, snack, or dessert)
- A short description (1-2 sentences)
- Prep time in minutes
- Spice level (mild, medium, spicy, or very_spicy)
- The mood it matches
- On which food delivery platforms it might be available (%s)

Make sure the recommendations are diverse, actually match the requested mood and cuisines, and are specific dishes (not generic food categories).`

// Generation builds the natural-language instruction for one generation run.
// Parameters:
//   - p: domain profile supplying count and platform vocabulary.
//   - sel: current selection state.
// Returns:
//   - string: complete prompt text.
func Generation(p *catalog.Profile, sel *catalog.SelectionState) string {
	mood := sel.Mood
	if mood == "" {
		mood = "any mood"
	}
	platforms := strings.Join(p.Platforms, ", ")

	switch p.Domain {
	case domain.DomainMusic:
		return fmt.Sprintf(musicPromptTemplate, p.Count, mood, tagList(sel.Tags, "all genres"), platforms)
	case domain.DomainFood:
		qualifier := ""
		if mt := sel.EffectiveMealType(); mt != "all" {
			qualifier = fmt.Sprintf("They are looking for %s options.\n", mt)
		}
		return fmt.Sprintf(foodPromptTemplate, p.Count, mood, tagList(sel.Tags, "all cuisines"), qualifier, platforms)
	default:
		return fmt.Sprintf(moviePromptTemplate, p.Count, mood, tagList(sel.Tags, "all genres"), platforms)
	}
}

func tagList(tags []string, fallback string) string {
	if len(tags) == 0 {
		return fallback
	}
	return strings.Join(tags, ", ")
}
