package services

import (
	"context"
	"time"

	"github.com/zatekoja/nursecare/backend/internal/domain/repositories"
	"github.com/zatekoja/nursecare/backend/internal/infrastructure/observability"
)

// CatalogWarmer reads the whole catalog through a caching repository so the
// first customer request is already a cache hit
type CatalogWarmer struct {
	repo repositories.CatalogRepository
}

// NewCatalogWarmer creates a warmer over repo
func NewCatalogWarmer(repo repositories.CatalogRepository) *CatalogWarmer {
	return &CatalogWarmer{repo: repo}
}

// Warm loads every category, each category by ID, and the nurse pool.
// It returns the number of entries read and the first error seen.
func (w *CatalogWarmer) Warm(ctx context.Context) (int, error) {
	logger := observability.LoggerFromContext(ctx)

	categories, err := w.repo.ListCategories(ctx)
	if err != nil {
		return 0, err
	}
	warmed := 1

	var firstErr error
	for _, category := range categories {
		if _, err := w.repo.GetCategory(ctx, category.ID); err != nil {
			logger.Warn().Err(err).Str("category_id", category.ID).Msg("Failed to warm category")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		warmed++
	}

	if _, err := w.repo.ListNurses(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to warm nurse pool")
		if firstErr == nil {
			firstErr = err
		}
	} else {
		warmed++
	}

	logger.Debug().Int("entries", warmed).Msg("Catalog cache warmed")
	return warmed, firstErr
}

// StartPeriodicWarming warms once, then again every interval until ctx ends
func (w *CatalogWarmer) StartPeriodicWarming(ctx context.Context, interval time.Duration) {
	logger := observability.LoggerFromContext(ctx)
	if _, err := w.Warm(ctx); err != nil {
		logger.Warn().Err(err).Msg("Initial catalog warming failed")
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Info().Msg("Stopping catalog warming")
				return
			case <-ticker.C:
				if _, err := w.Warm(ctx); err != nil {
					logger.Warn().Err(err).Msg("Periodic catalog warming failed")
				}
			}
		}
	}()
	logger.Info().Dur("interval", interval).Msg("Started periodic catalog warming")
}
