package app

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/coverflow/internal/deck"
	"github.com/five82/coverflow/internal/state"
	"github.com/five82/coverflow/internal/watcher"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// follow keeps the store current until ctx is cancelled. Files are watched
// for changes and URLs are polled; a file whose directory cannot be watched
// falls back to polling.
func follow(ctx context.Context, store *state.Store, fetcher deck.Fetcher, interval time.Duration, logger *log.Logger) error {
	if f, ok := fetcher.(deck.File); ok {
		w, err := watcher.New(f.Path, func() {
			refresh(ctx, store, fetcher, logger)
		}, watcher.NewDebouncer(watcher.DefaultDebounce), logger.WithPrefix("watch"))
		if err == nil {
			err = w.Run(ctx)
		}
		if err == nil || ctx.Err() != nil {
			return nil
		}
		logger.Warn("watch failed, polling instead", "path", f.Path, "err", err)
	}
	poll(ctx, store, fetcher, interval, logger)
	return nil
}

// poll refreshes the store at a fixed cadence, backing off while loads fail.
func poll(ctx context.Context, store *state.Store, fetcher deck.Fetcher, interval time.Duration, logger *log.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	for {
		wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		refresh(ctx, store, fetcher, logger)
	}
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	d := interval
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

// refresh loads the deck once and records the result. It reports whether the
// cards changed.
func refresh(ctx context.Context, store *state.Store, fetcher deck.Fetcher, logger *log.Logger) bool {
	cards, err := fetcher.FetchCards(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		store.Update(nil, err)
		logger.Warn("deck load failed", "err", err)
		return false
	}
	if !store.Update(cards, nil) {
		return false
	}
	logger.Info("deck loaded", "cards", len(cards), "revision", store.Revision())
	return true
}
