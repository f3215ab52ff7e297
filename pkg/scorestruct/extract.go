package scorestruct

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/scorestruct-go/internal/logger"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"
)

// Source supplies the innings blocks of one scorecard.
type Source interface {
	// URL identifies where the scorecard came from.
	URL() string
	// Blocks returns the innings blocks in page order.
	Blocks(ctx context.Context) ([]models.InningsBlock, error)
}

// Extract reads every innings block from src and assembles one
// ParsedInnings per block, in block order.
func Extract(ctx context.Context, src Source, opts Options) (*models.ScorecardResult, error) {
	log := opts.logger().With(logger.String("source", src.URL()))

	// Read all blocks up front; the engine never reaches back into the source
	blocks, err := src.Blocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("read innings blocks: %w", err)
	}
	if len(blocks) == 0 {
		return nil, ErrNoInningsFound
	}

	innings, err := AssembleAll(ctx, blocks, opts)
	if err != nil {
		return nil, err
	}

	log.Info("scorecard extracted", logger.Int("innings", len(innings)))
	return &models.ScorecardResult{
		SourceURL: NormalizeSourceURL(src.URL()),
		Innings:   innings,
	}, nil
}

// AssembleAll assembles blocks concurrently. The result keeps block order.
func AssembleAll(ctx context.Context, blocks []models.InningsBlock, opts Options) ([]models.ParsedInnings, error) {
	cfg := opts.parserConfig()
	log := opts.logger()
	// Each goroutine writes only its own index, so block order is kept
	innings := make([]models.ParsedInnings, len(blocks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for i, block := range blocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			inn, stats := cfg.Assemble(block)
			innings[i] = inn
			log.Debug("innings assembled",
				logger.Int("innings", i+1),
				logger.String("header", inn.Header),
				logger.Int("rows", stats.Rows),
				logger.Int("batting", len(inn.Batting)),
				logger.Int("bowling", len(inn.Bowling)),
				logger.Int("discarded", stats.Discarded),
				logger.Strings("fallbacks", stats.Fallbacks),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assemble innings: %w", err)
	}
	return innings, nil
}
