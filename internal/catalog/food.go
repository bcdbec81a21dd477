package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rohanv/vibes/internal/domain"
)

// foodItem is the wire shape of one generated dish recommendation.
type foodItem struct {
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	MealType    string   `json:"meal_type"`
	Description string   `json:"description"`
	PrepTime    float64  `json:"prep_time"`
	SpiceLevel  string   `json:"spice_level"`
	Mood        string   `json:"mood"`
	Platforms   []string `json:"platforms"`
}

var foodProfile = &Profile{
	Domain: domain.DomainFood,
	Moods:  []string{"happy", "sad", "energetic", "relaxed", "stressed", "celebration"},
	Tags: []string{
		"italian", "indian", "chinese", "japanese", "mexican",
		"american", "mediterranean", "thai", "french", "spanish",
	},
	MealTypes: []string{"all", "breakfast", "lunch", "dinner", "snack", "dessert"},
	Platforms: []string{"swiggy", "zomato", "uber_eats", "doordash", "grubhub", "zepto", "blinkit"},
	Count:     10,
	Threshold: 5,
	SortKeys: map[string]func(a, b domain.Recommendation) bool{
		"relevance": nil,
		// Faster prep first.
		"prep_time": func(a, b domain.Recommendation) bool { return a.PrepTime < b.PrepTime },
		"spice":     func(a, b domain.Recommendation) bool { return a.SpiceLevel.Rank() > b.SpiceLevel.Rank() },
	},
	SortKeyOrder: []string{"relevance", "prep_time", "spice"},
	DeepLinks: map[string]string{
		"swiggy":    "https://www.swiggy.com/search?query=%s",
		"zomato":    "https://www.zomato.com/search?q=%s",
		"uber_eats": "https://www.ubereats.com/search?q=%s",
		"doordash":  "https://www.doordash.com/search/%s/",
		"grubhub":   "https://www.grubhub.com/search?queryText=%s",
		"zepto":     "https://www.zeptonow.com/search?q=%s",
		"blinkit":   "https://blinkit.com/search?query=%s",
	},
	FallbackQuery: "food+delivery",
	ImageSize:     "500x500",
	ImageQuery: func(r domain.Recommendation) string {
		// Whitespace runs in the dish name become comma-separated keywords.
		name := strings.Join(strings.Fields(r.Name), ",")
		return fmt.Sprintf("food,%s,%s", name, r.Tag)
	},
	Schema: itemListSchema(map[string]interface{}{
		"name":        map[string]interface{}{"type": "string"},
		"cuisine":     map[string]interface{}{"type": "string"},
		"meal_type":   map[string]interface{}{"type": "string"},
		"description": map[string]interface{}{"type": "string"},
		"prep_time":   map[string]interface{}{"type": "number"},
		"spice_level": map[string]interface{}{"type": "string"},
		"mood":        map[string]interface{}{"type": "string"},
		"platforms":   map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
	}),
	Decode: decodeFood,
}

func decodeFood(raw json.RawMessage) ([]domain.Recommendation, error) {
	var payload struct {
		Recommendations []foodItem `json:"recommendations"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("malformed food payload: %w", err)
	}
	if payload.Recommendations == nil {
		return nil, fmt.Errorf("food payload missing recommendations field")
	}
	recs := make([]domain.Recommendation, 0, len(payload.Recommendations))
	for _, item := range payload.Recommendations {
		if item.Name == "" {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Domain:      domain.DomainFood,
			Name:        item.Name,
			Tag:         item.Cuisine,
			Mood:        item.Mood,
			MealType:    item.MealType,
			Description: item.Description,
			PrepTime:    int(item.PrepTime),
			SpiceLevel:  domain.SpiceLevel(item.SpiceLevel),
			Platforms:   item.Platforms,
		})
	}
	return recs, nil
}
