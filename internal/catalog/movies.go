package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/rohanv/vibes/internal/domain"
)

// movieItem is the wire shape of one generated movie recommendation.
// Numeric fields decode as float64 since the generative service is not
// guaranteed to emit integers.
type movieItem struct {
	Title       string   `json:"title"`
	Director    string   `json:"director"`
	Year        float64  `json:"year"`
	Description string   `json:"description"`
	Mood        string   `json:"mood"`
	Genre       string   `json:"genre"`
	Platforms   []string `json:"platforms"`
	Rating      float64  `json:"rating"`
}

var movieProfile = &Profile{
	Domain: domain.DomainMovie,
	Moods:  []string{"happy", "sad", "relaxed", "excited", "thoughtful", "nostalgic"},
	Tags: []string{
		"action", "comedy", "drama", "romance", "horror",
		"sci-fi", "thriller", "documentary", "animation", "fantasy",
	},
	Platforms: []string{"netflix", "prime", "hotstar", "zee5", "apple"},
	Count:     10,
	Threshold: 5,
	SortKeys: map[string]func(a, b domain.Recommendation) bool{
		"relevance": nil,
		"rating":    func(a, b domain.Recommendation) bool { return a.Rating > b.Rating },
		"year":      func(a, b domain.Recommendation) bool { return a.Year > b.Year },
	},
	SortKeyOrder: []string{"relevance", "rating", "year"},
	DeepLinks: map[string]string{
		"netflix": "https://www.netflix.com/search?q=%s",
		"prime":   "https://www.primevideo.com/search/ref=atv_nb_sr?phrase=%s",
		"hotstar": "https://www.hotstar.com/in/search?q=%s",
		"zee5":    "https://www.zee5.com/search?q=%s",
		"apple":   "https://tv.apple.com/search?term=%s",
	},
	FallbackQuery: "movie+streaming",
	ImageSize:     "300x400",
	ImageQuery: func(r domain.Recommendation) string {
		return fmt.Sprintf("movie,%s,%s", r.Tag, r.Mood)
	},
	Schema: itemListSchema(map[string]interface{}{
		"title":       map[string]interface{}{"type": "string"},
		"director":    map[string]interface{}{"type": "string"},
		"year":        map[string]interface{}{"type": "number"},
		"description": map[string]interface{}{"type": "string"},
		"mood":        map[string]interface{}{"type": "string"},
		"genre":       map[string]interface{}{"type": "string"},
		"platforms":   map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
		"rating":      map[string]interface{}{"type": "number"},
	}),
	Decode: decodeMovies,
}

func decodeMovies(raw json.RawMessage) ([]domain.Recommendation, error) {
	var payload struct {
		Recommendations []movieItem `json:"recommendations"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("malformed movie payload: %w", err)
	}
	if payload.Recommendations == nil {
		return nil, fmt.Errorf("movie payload missing recommendations field")
	}
	recs := make([]domain.Recommendation, 0, len(payload.Recommendations))
	for _, item := range payload.Recommendations {
		if item.Title == "" {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Domain:      domain.DomainMovie,
			Name:        item.Title,
			Creator:     item.Director,
			Tag:         item.Genre,
			Mood:        item.Mood,
			Description: item.Description,
			Year:        int(item.Year),
			Rating:      item.Rating,
			Platforms:   item.Platforms,
		})
	}
	return recs, nil
}

// itemListSchema wraps per-item properties in the response envelope schema
// shared by all three domains: an object with a recommendations array.
func itemListSchema(properties map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"recommendations": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":       "object",
					"properties": properties,
				},
			},
		},
	}
}
