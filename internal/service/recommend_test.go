package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rohanv/vibes/internal/catalog"
	"github.com/rohanv/vibes/internal/domain"
)

type stubStore struct {
	recs  []domain.Recommendation
	err   error
	calls int
}

func (s *stubStore) FindBySelection(_ context.Context, _ domain.Domain, _ string, _ []string, _ string, _ time.Duration) ([]domain.Recommendation, error) {
	s.calls++
	return s.recs, s.err
}

type stubGenerator struct {
	recs  []domain.Recommendation
	err   error
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, _ *catalog.Profile, _ *catalog.SelectionState) ([]domain.Recommendation, error) {
	s.calls++
	return s.recs, s.err
}

func batch(n int) []domain.Recommendation {
	recs := make([]domain.Recommendation, n)
	for i := range recs {
		recs[i] = domain.Recommendation{Domain: domain.DomainMovie, Name: "Movie", Mood: "happy"}
	}
	return recs
}

func TestRecommendService_InvalidSelectionShortCircuits(t *testing.T) {
	movie, _ := catalog.Lookup("movie")
	store := &stubStore{}
	gen := &stubGenerator{}
	svc := NewRecommendService(store, gen, nil, nil)

	result := svc.Recommend(context.Background(), movie, &catalog.SelectionState{})

	if len(result.Items) != 0 || result.Generated {
		t.Errorf("expected empty ungenerated result, got %+v", result)
	}
	if store.calls != 0 {
		t.Error("invalid selection must not query the store")
	}
	if gen.calls != 0 {
		t.Error("invalid selection must not trigger generation")
	}
}

func TestRecommendService_SufficientPersistedMatches(t *testing.T) {
	movie, _ := catalog.Lookup("movie")
	store := &stubStore{recs: batch(5)}
	gen := &stubGenerator{recs: batch(10)}
	svc := NewRecommendService(store, gen, nil, nil)

	result := svc.Recommend(context.Background(), movie, &catalog.SelectionState{Mood: "happy"})

	if len(result.Items) != 5 {
		t.Errorf("expected the 5 persisted items, got %d", len(result.Items))
	}
	if result.Generated {
		t.Error("persisted result must not be flagged as generated")
	}
	if gen.calls != 0 {
		t.Error("threshold met, generation must not run")
	}
}

func TestRecommendService_InsufficientMatchesGenerate(t *testing.T) {
	movie, _ := catalog.Lookup("movie")
	store := &stubStore{recs: batch(4)}
	gen := &stubGenerator{recs: batch(10)}
	svc := NewRecommendService(store, gen, nil, nil)

	result := svc.Recommend(context.Background(), movie, &catalog.SelectionState{Mood: "happy"})

	if gen.calls != 1 {
		t.Fatalf("expected 1 generation call, got %d", gen.calls)
	}
	if len(result.Items) != 10 || !result.Generated {
		t.Errorf("expected 10 generated items, got %d (generated=%v)", len(result.Items), result.Generated)
	}
}

func TestRecommendService_QueryFailureFallsBackToGeneration(t *testing.T) {
	movie, _ := catalog.Lookup("movie")
	store := &stubStore{err: errors.New("db locked")}
	gen := &stubGenerator{recs: batch(10)}
	svc := NewRecommendService(store, gen, nil, nil)

	result := svc.Recommend(context.Background(), movie, &catalog.SelectionState{Mood: "happy"})

	if gen.calls != 1 {
		t.Fatalf("expected generation fallback, got %d calls", gen.calls)
	}
	if len(result.Items) != 10 || !result.Generated {
		t.Errorf("expected generated batch, got %d items (generated=%v)", len(result.Items), result.Generated)
	}
}

func TestRecommendService_GenerationFailureYieldsEmpty(t *testing.T) {
	movie, _ := catalog.Lookup("movie")
	store := &stubStore{recs: batch(0)}
	gen := &stubGenerator{err: errors.New("quota exhausted")}
	svc := NewRecommendService(store, gen, nil, nil)

	result := svc.Recommend(context.Background(), movie, &catalog.SelectionState{Mood: "happy"})

	if len(result.Items) != 0 {
		t.Errorf("expected empty result, got %d items", len(result.Items))
	}
	if !result.Generated {
		t.Error("an attempted generation is still flagged as generated")
	}
}

// Concurrent requests for the same selection share one generation run.
func TestRecommendService_CoalescesConcurrentGeneration(t *testing.T) {
	movie, _ := catalog.Lookup("movie")

	started := make(chan struct{})
	release := make(chan struct{})
	gen := &blockingGenerator{started: started, release: release, recs: batch(10)}
	svc := NewRecommendService(&stubStore{}, gen, nil, nil)

	sel := &catalog.SelectionState{Mood: "happy", Tags: []string{"action"}}

	first := make(chan *RecommendResult, 1)
	go func() {
		first <- svc.Recommend(context.Background(), movie, sel)
	}()
	<-started

	second := make(chan *RecommendResult, 1)
	go func() {
		second <- svc.Recommend(context.Background(), movie, sel)
	}()

	// Give the second caller time to join the in-flight run
	time.Sleep(50 * time.Millisecond)
	close(release)

	r1 := <-first
	r2 := <-second
	if len(r1.Items) != 10 || len(r2.Items) != 10 {
		t.Errorf("expected both callers to get the batch, got %d and %d", len(r1.Items), len(r2.Items))
	}
	if gen.calls() != 1 {
		t.Errorf("expected a single shared generation run, got %d", gen.calls())
	}
}

type blockingGenerator struct {
	started   chan struct{}
	release   chan struct{}
	recs      []domain.Recommendation
	mu        sync.Mutex
	callCount int
}

func (g *blockingGenerator) Generate(_ context.Context, _ *catalog.Profile, _ *catalog.SelectionState) ([]domain.Recommendation, error) {
	g.mu.Lock()
	g.callCount++
	first := g.callCount == 1
	g.mu.Unlock()
	if first {
		close(g.started)
	}
	<-g.release
	return g.recs, nil
}

func (g *blockingGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.callCount
}
