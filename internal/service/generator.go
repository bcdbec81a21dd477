package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rohanv/vibes/internal/catalog"
	"github.com/rohanv/vibes/internal/domain"
	"github.com/rohanv/vibes/internal/logger"
	"github.com/rohanv/vibes/internal/prompts"
)

// RecommendationWriter persists freshly generated batches.
type RecommendationWriter interface {
	BulkCreate(ctx context.Context, recs []domain.Recommendation) error
}

// GeneratorService synthesizes fresh recommendation batches through the
// generative-text capability when the persisted store comes up short.
type GeneratorService struct {
	llm          TextGenerator
	store        RecommendationWriter
	logger       *logger.Logger
	imageBaseURL string
}

// GeneratorConfig holds configuration for the generator service.
type GeneratorConfig struct {
	ImageBaseURL string
}

// NewGeneratorService creates a new generator service.
// Parameters:
//   - llm: generative-text capability.
//   - store: writer for persisting generated batches.
//   - log: logger instance.
//   - cfg: generator configuration.
// Returns:
//   - *GeneratorService: initialized generator.
func NewGeneratorService(llm TextGenerator, store RecommendationWriter, log *logger.Logger, cfg *GeneratorConfig) *GeneratorService {
	imageBaseURL := ""
	if cfg != nil {
		imageBaseURL = cfg.ImageBaseURL
	}
	if imageBaseURL == "" {
		imageBaseURL = "https://source.unsplash.com/random"
	}
	return &GeneratorService{
		llm:          llm,
		store:        store,
		logger:       log,
		imageBaseURL: imageBaseURL,
	}
}

// Generate builds the generation prompt from the selection, invokes the
// generative-text service with the profile's structured-output schema,
// derives each item's image URL, and persists the batch best-effort. A
// persist failure is logged and swallowed; it never blocks the items from
// being returned. A service error or schema-shape mismatch returns an
// error and no items.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - p: domain profile.
//   - sel: current selection state.
// Returns:
//   - []domain.Recommendation: generated batch, image URLs attached.
//   - error: non-nil on service failure or malformed payload.
func (s *GeneratorService) Generate(ctx context.Context, p *catalog.Profile, sel *catalog.SelectionState) ([]domain.Recommendation, error) {
	start := time.Now()
	prompt := prompts.Generation(p, sel)

	raw, err := s.llm.Complete(ctx, prompt, p.Schema)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	recs, err := p.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("generation returned unusable payload: %w", err)
	}

	for i := range recs {
		recs[i].ID = uuid.New().String()
		recs[i].ImageURL = p.ImageURL(s.imageBaseURL, recs[i])
	}

	if err := s.store.BulkCreate(ctx, recs); err != nil {
		// Persistence is best-effort; the batch is still shown
		logger.CtxWarn(ctx, "Failed to persist generated recommendations: domain=%s, err=%v", p.Domain, err)
	}

	logger.With(logger.Fields{
		logger.FieldCount:      len(recs),
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).Info(ctx, "Generated recommendations: domain=%s, mood=%q, tags=%d", p.Domain, sel.Mood, len(sel.Tags))

	return recs, nil
}
