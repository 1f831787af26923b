package workers

import (
	"context"

	"github.com/akarpov/go-music-library/internal/config"
	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the service's background workers. The returned
// aggregate starts all of them with a single Run call; ctx cancellation
// stops them.
func NewWorkers(ctx context.Context, storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newCodeJanitor(ctx, storages.AccountRepository, cfg.CodeCleanupInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
