package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rohanv/vibes/internal/catalog"
	"github.com/rohanv/vibes/internal/domain"
	"github.com/rohanv/vibes/internal/logger"
)

// RecommendationStore is the persisted-collection capability the retriever
// queries before falling back to generation.
type RecommendationStore interface {
	FindBySelection(ctx context.Context, dom domain.Domain, mood string, tags []string, mealType string, freshness time.Duration) ([]domain.Recommendation, error)
}

// Generator produces a fresh batch for a selection.
type Generator interface {
	Generate(ctx context.Context, p *catalog.Profile, sel *catalog.SelectionState) ([]domain.Recommendation, error)
}

// RecommendService is the pipeline entry point: retrieve persisted matches,
// fall back to generation when the result set is insufficient or the query
// fails, and never surface an internal failure past an empty result.
type RecommendService struct {
	store     RecommendationStore
	generator Generator
	logger    *logger.Logger
	freshness time.Duration

	// inflight coalesces concurrent generations for the same selection so
	// overlapping triggers don't stack duplicate LLM calls.
	mu       sync.Mutex
	inflight map[string]*inflightGeneration
}

type inflightGeneration struct {
	done chan struct{}
	recs []domain.Recommendation
}

// RecommendServiceConfig holds configuration for the recommend service.
type RecommendServiceConfig struct {
	Freshness time.Duration
}

// NewRecommendService creates a new recommend service.
// Parameters:
//   - store: persisted recommendation store.
//   - generator: fallback batch generator.
//   - log: logger instance.
//   - cfg: service configuration.
// Returns:
//   - *RecommendService: initialized service.
func NewRecommendService(store RecommendationStore, generator Generator, log *logger.Logger, cfg *RecommendServiceConfig) *RecommendService {
	var freshness time.Duration
	if cfg != nil {
		freshness = cfg.Freshness
	}
	return &RecommendService{
		store:     store,
		generator: generator,
		logger:    log,
		freshness: freshness,
		inflight:  make(map[string]*inflightGeneration),
	}
}

// RecommendResult is the outcome of one pipeline run.
type RecommendResult struct {
	Items     []domain.Recommendation
	Generated bool // true when the batch came from the generator
}

// Recommend runs the retrieval/generation pipeline for a selection.
// An invalid selection (no mood, no tags) performs no query and no
// generation call and yields an empty result. Retrieval results at or above
// the profile threshold are returned in persisted order; short results and
// query failures fall back to generation. Generation failures yield an
// empty result, never an error (the caller cannot distinguish "nothing
// matched" from "backend down" and that is the intended policy).
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - p: domain profile.
//   - sel: current selection state.
// Returns:
//   - *RecommendResult: items and their provenance.
func (s *RecommendService) Recommend(ctx context.Context, p *catalog.Profile, sel *catalog.SelectionState) *RecommendResult {
	if !sel.Valid() {
		return &RecommendResult{}
	}

	recs, err := s.store.FindBySelection(ctx, p.Domain, sel.Mood, sel.Tags, sel.EffectiveMealType(), s.freshness)
	if err != nil {
		logger.CtxWarn(ctx, "Recommendation query failed, falling back to generation: domain=%s, err=%v", p.Domain, err)
		return &RecommendResult{Items: s.generate(ctx, p, sel), Generated: true}
	}

	if len(recs) >= p.Threshold {
		logger.With(logger.Fields{logger.FieldCount: len(recs)}).
			Debug(ctx, "Serving persisted recommendations: domain=%s", p.Domain)
		return &RecommendResult{Items: recs}
	}

	logger.CtxInfo(ctx, "Insufficient persisted matches (%d < %d), generating: domain=%s", len(recs), p.Threshold, p.Domain)
	return &RecommendResult{Items: s.generate(ctx, p, sel), Generated: true}
}

// generate runs the generator behind the in-flight guard. Failures are
// swallowed into an empty batch.
func (s *RecommendService) generate(ctx context.Context, p *catalog.Profile, sel *catalog.SelectionState) []domain.Recommendation {
	key := selectionKey(p.Domain, sel)

	s.mu.Lock()
	if call, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.recs
		case <-ctx.Done():
			return nil
		}
	}
	call := &inflightGeneration{done: make(chan struct{})}
	s.inflight[key] = call
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
		close(call.done)
	}()

	recs, err := s.generator.Generate(ctx, p, sel)
	if err != nil {
		logger.CtxWarn(ctx, "Generation failed, returning empty result: domain=%s, err=%v", p.Domain, err)
		return nil
	}
	call.recs = recs
	return recs
}

func selectionKey(dom domain.Domain, sel *catalog.SelectionState) string {
	return string(dom) + "|" + sel.Mood + "|" + strings.Join(sel.Tags, ",") + "|" + sel.EffectiveMealType()
}
