package workers

import (
	"context"
	"time"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/store"
)

const defaultCleanupInterval = 10 * time.Minute

// codeJanitor periodically nulls out expired verification codes so that
// abandoned registrations do not accumulate pending codes. Expiry is
// also enforced at verification time; the janitor is housekeeping, not
// a correctness requirement.
type codeJanitor struct {
	accounts store.AccountRepository
	interval time.Duration

	ctx    context.Context
	logger *logger.Logger
}

func newCodeJanitor(ctx context.Context, accounts store.AccountRepository, interval time.Duration, logger *logger.Logger) *codeJanitor {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return &codeJanitor{
		accounts: accounts,
		interval: interval,
		ctx:      ctx,
		logger:   logger,
	}
}

// Run starts the cleanup loop in a background goroutine and returns
// immediately. The loop stops when the janitor's context is cancelled.
func (j *codeJanitor) Run() {
	go j.loop()
}

func (j *codeJanitor) loop() {
	j.logger.Info().Dur("interval", j.interval).Msg("verification-code janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.ctx.Done():
			j.logger.Info().Msg("verification-code janitor stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *codeJanitor) sweep() {
	cleared, err := j.accounts.ClearExpiredCodes(j.ctx, time.Now())
	if err != nil {
		j.logger.Err(err).Msg("clearing expired verification codes failed")
		return
	}

	if cleared > 0 {
		j.logger.Info().Int64("cleared", cleared).Msg("expired verification codes cleared")
	}
}
