package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/taqvim/internal/age"
	"github.com/five82/taqvim/internal/state"
)

const defaultPollInterval = time.Minute

// StartPoller launches a background goroutine that keeps the store's "today"
// current. It returns immediately; the returned channel is closed once the
// goroutine has exited after ctx is cancelled.
func StartPoller(ctx context.Context, store *state.Store, clock age.Clock, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if clock == nil {
		clock = age.RealClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			now := clock.Now()
			refresh(store, now, logger)

			timer := time.NewTimer(nextWait(now, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
	return done
}

func refresh(store *state.Store, now time.Time, logger *zap.Logger) {
	if store.Update(now) {
		snap := store.Snapshot()
		logger.Info("day rolled over",
			zap.String("shamsi", snap.Today.Shamsi.String()),
			zap.String("gregorian", snap.Today.Gregorian.String()),
			zap.Int("rollovers", snap.Rollovers),
		)
	}
}

// nextWait is interval, shortened so the next refresh lands just after local
// midnight when that comes first.
func nextWait(now time.Time, interval time.Duration) time.Duration {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	untilMidnight := midnight.Sub(now) + time.Second
	if untilMidnight < interval {
		return untilMidnight
	}
	return interval
}
