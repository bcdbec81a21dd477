package catalog

import (
	"encoding/json"
	"testing"

	"github.com/rohanv/vibes/internal/domain"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"movie", "music", "food"} {
		p, ok := Lookup(name)
		if !ok {
			t.Fatalf("expected profile for %q", name)
		}
		if string(p.Domain) != name {
			t.Errorf("expected domain %q, got %q", name, p.Domain)
		}
		if p.Count != 10 || p.Threshold != 5 {
			t.Errorf("%s: expected count=10 threshold=5, got count=%d threshold=%d", name, p.Count, p.Threshold)
		}
	}

	if _, ok := Lookup("books"); ok {
		t.Error("expected no profile for unknown domain")
	}
}

func TestProfile_DeepLink(t *testing.T) {
	movie, _ := Lookup("movie")
	music, _ := Lookup("music")
	food, _ := Lookup("food")

	tests := []struct {
		name     string
		profile  *Profile
		platform string
		item     string
		want     string
	}{
		{
			name:     "netflix template",
			profile:  movie,
			platform: "netflix",
			item:     "Inception",
			want:     "https://www.netflix.com/search?q=Inception",
		},
		{
			name:     "name is percent encoded",
			profile:  movie,
			platform: "netflix",
			item:     "The Dark Knight",
			want:     "https://www.netflix.com/search?q=The+Dark+Knight",
		},
		{
			name:     "spotify template",
			profile:  music,
			platform: "spotify",
			item:     "Bohemian Rhapsody",
			want:     "https://open.spotify.com/search/Bohemian+Rhapsody",
		},
		{
			name:     "zomato template",
			profile:  food,
			platform: "zomato",
			item:     "Butter Chicken",
			want:     "https://www.zomato.com/search?q=Butter+Chicken",
		},
		{
			name:     "unknown platform falls back to web search",
			profile:  movie,
			platform: "mubi",
			item:     "Stalker",
			want:     "https://www.google.com/search?q=Stalker+movie+streaming",
		},
		{
			name:     "empty platform falls back to web search",
			profile:  food,
			platform: "",
			item:     "Pad Thai",
			want:     "https://www.google.com/search?q=Pad+Thai+food+delivery",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.profile.DeepLink(tt.platform, tt.item)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if got == "" {
				t.Error("deep link must never be empty")
			}
		})
	}
}

// Every vocabulary platform must have its own template; the fallback is for
// platforms outside the vocabulary only.
func TestProfile_DeepLinkCoversVocabulary(t *testing.T) {
	for dom, p := range Profiles() {
		for _, platform := range p.Platforms {
			if _, ok := p.DeepLinks[platform]; !ok {
				t.Errorf("%s: platform %q has no deep-link template", dom, platform)
			}
		}
	}
}

func TestProfile_ImageURL(t *testing.T) {
	movie, _ := Lookup("movie")
	food, _ := Lookup("food")

	rec := domain.Recommendation{Domain: domain.DomainMovie, Name: "Arrival", Tag: "sci-fi", Mood: "thoughtful"}
	got := movie.ImageURL("https://source.unsplash.com/random", rec)
	want := "https://source.unsplash.com/random/300x400/?movie,sci-fi,thoughtful"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// Trailing slash on the base is normalized
	if got := movie.ImageURL("https://source.unsplash.com/random/", rec); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	dish := domain.Recommendation{Domain: domain.DomainFood, Name: "Pad Thai", Tag: "thai"}
	got = food.ImageURL("https://source.unsplash.com/random", dish)
	want = "https://source.unsplash.com/random/500x500/?food,Pad,Thai,thai"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDecodeMovies(t *testing.T) {
	movie, _ := Lookup("movie")

	raw := json.RawMessage(`{"recommendations":[
		{"title":"Inception","director":"Christopher Nolan","year":2010,"description":"A heist inside dreams.","mood":"excited","genre":"sci-fi","platforms":["netflix","prime"],"rating":8.8},
		{"title":"","director":"Nobody","year":2000,"mood":"sad","genre":"drama"},
		{"title":"Whiplash","director":"Damien Chazelle","year":2014.0,"description":"Drummer meets tyrant.","mood":"excited","genre":"drama","platforms":["netflix"],"rating":8.5}
	]}`)

	recs, err := movie.Decode(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records (nameless dropped), got %d", len(recs))
	}

	first := recs[0]
	if first.Domain != domain.DomainMovie {
		t.Errorf("expected movie domain, got %q", first.Domain)
	}
	if first.Name != "Inception" || first.Creator != "Christopher Nolan" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.Year != 2010 || first.Rating != 8.8 {
		t.Errorf("expected year=2010 rating=8.8, got year=%d rating=%v", first.Year, first.Rating)
	}
	if !first.Platforms.Contains("prime") {
		t.Errorf("expected platforms to include prime, got %v", first.Platforms)
	}
}

func TestDecodeRejectsUnusablePayloads(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `here are some movies you might like`},
		{name: "wrong shape", raw: `{"items":[{"title":"Up"}]}`},
		{name: "recommendations not an array", raw: `{"recommendations":"none"}`},
	}

	for dom, p := range Profiles() {
		for _, tt := range tests {
			t.Run(string(dom)+"/"+tt.name, func(t *testing.T) {
				if _, err := p.Decode(json.RawMessage(tt.raw)); err == nil {
					t.Error("expected decode error")
				}
			})
		}
	}
}

func TestDecodeFood(t *testing.T) {
	food, _ := Lookup("food")

	raw := json.RawMessage(`{"recommendations":[
		{"name":"Paneer Tikka","cuisine":"indian","meal_type":"dinner","description":"Charred cottage cheese.","prep_time":35,"spice_level":"spicy","mood":"celebration","platforms":["swiggy","zomato"]}
	]}`)

	recs, err := food.Decode(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}

	rec := recs[0]
	if rec.Tag != "indian" || rec.MealType != "dinner" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.PrepTime != 35 {
		t.Errorf("expected prep_time 35, got %d", rec.PrepTime)
	}
	if rec.SpiceLevel != domain.SpiceSpicy {
		t.Errorf("expected spicy, got %q", rec.SpiceLevel)
	}
}
