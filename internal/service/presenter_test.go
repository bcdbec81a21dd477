package service

import (
	"reflect"
	"testing"

	"github.com/rohanv/vibes/internal/catalog"
	"github.com/rohanv/vibes/internal/domain"
)

func dishes() []domain.Recommendation {
	return []domain.Recommendation{
		{Domain: domain.DomainFood, Name: "Margherita Pizza", Tag: "italian", Description: "Wood-fired classic.", PrepTime: 25, SpiceLevel: domain.SpiceMild, Platforms: domain.StringArray{"swiggy", "zomato"}},
		{Domain: domain.DomainFood, Name: "Vindaloo", Tag: "indian", Description: "Goan pork curry.", PrepTime: 60, SpiceLevel: domain.SpiceVerySpicy, Platforms: domain.StringArray{"zomato"}},
		{Domain: domain.DomainFood, Name: "Pad Thai", Tag: "thai", Description: "Stir-fried noodles.", PrepTime: 20, SpiceLevel: domain.SpiceSpicy, Platforms: domain.StringArray{"uber_eats"}},
		{Domain: domain.DomainFood, Name: "Green Curry", Tag: "thai", Description: "Coconut and chilli.", PrepTime: 40, SpiceLevel: domain.SpiceSpicy, Platforms: domain.StringArray{"swiggy", "uber_eats"}},
	}
}

func names(recs []domain.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Name
	}
	return out
}

func TestApplyDisplayFilter_Conjunctive(t *testing.T) {
	food, _ := catalog.Lookup("food")

	tests := []struct {
		name   string
		filter catalog.DisplayFilter
		want   []string
	}{
		{
			name:   "no filter keeps order",
			filter: catalog.DisplayFilter{},
			want:   []string{"Margherita Pizza", "Vindaloo", "Pad Thai", "Green Curry"},
		},
		{
			name:   "query matches name case-insensitively",
			filter: catalog.DisplayFilter{Query: "pad"},
			want:   []string{"Pad Thai"},
		},
		{
			name:   "query matches tag",
			filter: catalog.DisplayFilter{Query: "thai"},
			want:   []string{"Pad Thai", "Green Curry"},
		},
		{
			name:   "query matches description",
			filter: catalog.DisplayFilter{Query: "curry"},
			want:   []string{"Vindaloo", "Green Curry"},
		},
		{
			name:   "platform filter",
			filter: catalog.DisplayFilter{Platform: "zomato"},
			want:   []string{"Margherita Pizza", "Vindaloo"},
		},
		{
			name:   "platform all is no filter",
			filter: catalog.DisplayFilter{Platform: "all"},
			want:   []string{"Margherita Pizza", "Vindaloo", "Pad Thai", "Green Curry"},
		},
		{
			name:   "spice filter is exact",
			filter: catalog.DisplayFilter{Spice: "spicy"},
			want:   []string{"Pad Thai", "Green Curry"},
		},
		{
			name:   "filters compose conjunctively",
			filter: catalog.DisplayFilter{Query: "thai", Platform: "swiggy", Spice: "spicy"},
			want:   []string{"Green Curry"},
		},
		{
			name:   "conjunction can be empty",
			filter: catalog.DisplayFilter{Query: "pizza", Spice: "very_spicy"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(ApplyDisplayFilter(food, dishes(), &tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApplyDisplayFilter_Sort(t *testing.T) {
	food, _ := catalog.Lookup("food")

	// prep_time orders fastest first
	got := names(ApplyDisplayFilter(food, dishes(), &catalog.DisplayFilter{SortBy: "prep_time"}))
	want := []string{"Pad Thai", "Margherita Pizza", "Green Curry", "Vindaloo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("prep_time sort: expected %v, got %v", want, got)
	}

	// spice orders hottest first; the two spicy dishes keep their input order
	got = names(ApplyDisplayFilter(food, dishes(), &catalog.DisplayFilter{SortBy: "spice"}))
	want = []string{"Vindaloo", "Pad Thai", "Green Curry", "Margherita Pizza"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("spice sort: expected %v, got %v", want, got)
	}

	// relevance and unknown keys preserve filtered order
	for _, key := range []string{"relevance", "", "alphabetical"} {
		got = names(ApplyDisplayFilter(food, dishes(), &catalog.DisplayFilter{SortBy: key}))
		want = []string{"Margherita Pizza", "Vindaloo", "Pad Thai", "Green Curry"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("sort_by=%q: expected %v, got %v", key, want, got)
		}
	}
}

func TestApplyDisplayFilter_MovieRating(t *testing.T) {
	movie, _ := catalog.Lookup("movie")
	recs := []domain.Recommendation{
		{Domain: domain.DomainMovie, Name: "B", Rating: 7.5},
		{Domain: domain.DomainMovie, Name: "A", Rating: 9.1},
		{Domain: domain.DomainMovie, Name: "C", Rating: 8.2},
	}

	got := names(ApplyDisplayFilter(movie, recs, &catalog.DisplayFilter{SortBy: "rating"}))
	want := []string{"A", "C", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestApplyDisplayFilter_DoesNotMutateInput(t *testing.T) {
	food, _ := catalog.Lookup("food")
	input := dishes()
	snapshot := dishes()

	ApplyDisplayFilter(food, input, &catalog.DisplayFilter{Query: "thai", SortBy: "prep_time"})

	if !reflect.DeepEqual(input, snapshot) {
		t.Error("input slice was mutated")
	}

	// Filtering is idempotent: re-applying the same filter to its own output
	// changes nothing.
	filter := &catalog.DisplayFilter{Spice: "spicy", SortBy: "prep_time"}
	once := ApplyDisplayFilter(food, input, filter)
	twice := ApplyDisplayFilter(food, once, filter)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected idempotent filtering, got %v then %v", names(once), names(twice))
	}
}

func TestApplyDisplayFilter_NilFilter(t *testing.T) {
	food, _ := catalog.Lookup("food")
	got := ApplyDisplayFilter(food, dishes(), nil)
	if len(got) != 4 {
		t.Errorf("expected all 4 records, got %d", len(got))
	}
}

func TestPresent(t *testing.T) {
	movie, _ := catalog.Lookup("movie")
	recs := []domain.Recommendation{
		{
			ID:          "rec-1",
			Domain:      domain.DomainMovie,
			Name:        "The Dark Knight",
			Creator:     "Christopher Nolan",
			Tag:         "action",
			Mood:        "excited",
			Description: "Gotham unravels.",
			Year:        2008,
			ImageURL:    "https://source.unsplash.com/random/300x400/?movie,action,excited",
			Platforms:   domain.StringArray{"netflix", "mubi"},
		},
	}

	cards := Present(movie, recs)
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}

	card := cards[0]
	if card.Subtitle != "Christopher Nolan • 2008" {
		t.Errorf("unexpected subtitle %q", card.Subtitle)
	}
	if !reflect.DeepEqual(card.Tags, []string{"action", "excited"}) {
		t.Errorf("unexpected tags %v", card.Tags)
	}

	// One resolved link per listed platform, including the fallback for
	// platforms outside the vocabulary.
	if len(card.Links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(card.Links))
	}
	if card.Links["netflix"] != "https://www.netflix.com/search?q=The+Dark+Knight" {
		t.Errorf("unexpected netflix link %q", card.Links["netflix"])
	}
	if card.Links["mubi"] != "https://www.google.com/search?q=The+Dark+Knight+movie+streaming" {
		t.Errorf("unexpected fallback link %q", card.Links["mubi"])
	}
}

func TestPresent_FoodSubtitle(t *testing.T) {
	food, _ := catalog.Lookup("food")

	cards := Present(food, []domain.Recommendation{
		{Domain: domain.DomainFood, Name: "Pad Thai", Tag: "thai", PrepTime: 20},
		{Domain: domain.DomainFood, Name: "Tiramisu", Tag: "italian"},
	})

	if cards[0].Subtitle != "thai • 20 min" {
		t.Errorf("unexpected subtitle %q", cards[0].Subtitle)
	}
	if cards[1].Subtitle != "italian" {
		t.Errorf("unexpected subtitle %q", cards[1].Subtitle)
	}
}
