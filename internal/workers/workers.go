package workers

import (
	"context"

	"github.com/MKhiriev/go-ipass/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run runs every worker in order and returns how many failed.
func (w *Workers) Run(ctx context.Context) int {
	failed := 0
	for _, worker := range w.workers {
		if err := worker.Run(ctx); err != nil {
			failed++
			w.logger.Warn().Err(err).Str("worker", worker.Name()).Msg("worker failed")
			continue
		}
		w.logger.Debug().Str("worker", worker.Name()).Msg("worker done")
	}
	return failed
}
