package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/rohanv/vibes/internal/domain"
)

// musicItem is the wire shape of one generated song recommendation.
type musicItem struct {
	Title     string   `json:"title"`
	Artist    string   `json:"artist"`
	Year      float64  `json:"year"`
	Mood      string   `json:"mood"`
	Genre     string   `json:"genre"`
	BPM       float64  `json:"bpm"`
	Platforms []string `json:"platforms"`
}

var musicProfile = &Profile{
	Domain: domain.DomainMusic,
	Moods:  []string{"happy", "sad", "relaxed", "energetic", "focused", "romantic"},
	Tags: []string{
		"pop", "rock", "hip-hop", "electronic", "jazz",
		"classical", "r&b", "indie", "metal", "folk",
	},
	Platforms: []string{"spotify", "apple", "youtube", "amazon", "gaana"},
	Count:     10,
	Threshold: 5,
	SortKeys: map[string]func(a, b domain.Recommendation) bool{
		"relevance": nil,
		"bpm":       func(a, b domain.Recommendation) bool { return a.BPM > b.BPM },
		"year":      func(a, b domain.Recommendation) bool { return a.Year > b.Year },
	},
	SortKeyOrder: []string{"relevance", "bpm", "year"},
	DeepLinks: map[string]string{
		"spotify": "https://open.spotify.com/search/%s",
		"apple":   "https://music.apple.com/search?term=%s",
		"youtube": "https://www.youtube.com/results?search_query=%s",
		"amazon":  "https://music.amazon.in/search/%s",
		"gaana":   "https://gaana.com/search/%s",
	},
	FallbackQuery: "song",
	ImageSize:     "500x500",
	ImageQuery: func(r domain.Recommendation) string {
		return fmt.Sprintf("music,album,%s", r.Tag)
	},
	Schema: itemListSchema(map[string]interface{}{
		"title":     map[string]interface{}{"type": "string"},
		"artist":    map[string]interface{}{"type": "string"},
		"year":      map[string]interface{}{"type": "number"},
		"mood":      map[string]interface{}{"type": "string"},
		"genre":     map[string]interface{}{"type": "string"},
		"bpm":       map[string]interface{}{"type": "number"},
		"platforms": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
	}),
	Decode: decodeMusic,
}

func decodeMusic(raw json.RawMessage) ([]domain.Recommendation, error) {
	var payload struct {
		Recommendations []musicItem `json:"recommendations"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("malformed music payload: %w", err)
	}
	if payload.Recommendations == nil {
		return nil, fmt.Errorf("music payload missing recommendations field")
	}
	recs := make([]domain.Recommendation, 0, len(payload.Recommendations))
	for _, item := range payload.Recommendations {
		if item.Title == "" {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Domain:    domain.DomainMusic,
			Name:      item.Title,
			Creator:   item.Artist,
			Tag:       item.Genre,
			Mood:      item.Mood,
			Year:      int(item.Year),
			BPM:       int(item.BPM),
			Platforms: item.Platforms,
		})
	}
	return recs, nil
}
