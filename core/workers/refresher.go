// ABOUTME: Refresher periodically rebuilds the cached news listing in the background
// ABOUTME: Runs one refresh on start, then one per interval until stopped

package workers

import (
	"context"
	"sync"
	"time"

	"news-aggregator-api/core/interfaces"
)

// RefreshFunc rebuilds the cache and reports the resulting item count
type RefreshFunc func(ctx context.Context) (int, error)

// RefresherConfig holds configuration for the refresher
type RefresherConfig struct {
	Interval time.Duration
}

// DefaultRefresherConfig returns the default refresher configuration
func DefaultRefresherConfig() RefresherConfig {
	return RefresherConfig{
		Interval: time.Hour,
	}
}

// Refresher drives a RefreshFunc on a fixed interval
type Refresher struct {
	refresh  RefreshFunc
	logger   interfaces.Logger
	interval time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRefresher creates a refresher. A non-positive interval selects the default.
func NewRefresher(refresh RefreshFunc, logger interfaces.Logger, config RefresherConfig) *Refresher {
	if config.Interval <= 0 {
		config.Interval = DefaultRefresherConfig().Interval
	}
	return &Refresher{
		refresh:  refresh,
		logger:   logger,
		interval: config.Interval,
	}
}

// Start launches the refresh loop. It stops when ctx is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return nil
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	r.running = true

	go r.run(ctx, r.done)
	return nil
}

// Stop stops the loop and waits for an in-flight refresh to finish
func (r *Refresher) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.cancel()
	done := r.done
	r.running = false
	r.mu.Unlock()

	<-done
	return nil
}

func (r *Refresher) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	start := time.Now()
	count, err := r.refresh(ctx)

	if r.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"items":    count,
		"duration": time.Since(start).String(),
	}
	if err != nil {
		fields["error"] = err.Error()
		r.logger.Warn("Background refresh completed with errors", fields)
		return
	}
	r.logger.Info("Background refresh completed", fields)
}
