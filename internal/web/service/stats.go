package service

import (
	"context"

	"github.com/okitolabs/demopass/internal/web/domain"
	"github.com/okitolabs/demopass/internal/web/store"
)

type StatsService struct {
	Store store.Store
}

// GenerationStats aggregates the generation audit log.
func (s *StatsService) GenerationStats(ctx context.Context) (domain.GenerationStats, error) {
	return s.Store.GenerationEvents().Stats(ctx)
}
