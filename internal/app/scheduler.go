package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/akgoel-in/nivesh/internal/watchlists"
)

// StartScheduler launches the prewarm scheduler when enabled in config.
// Each run refreshes the symbol directory and warms the weekly-average
// cache for the FNO universe, so watch-list pages stay fast.
func (a *App) StartScheduler() error {
	if !a.Config.Scheduler.Enabled {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(a.Config.Scheduler.Spec, a.prewarm); err != nil {
		return fmt.Errorf("register prewarm task: %w", err)
	}
	c.Start()
	a.scheduler = c

	a.Logger.Info().Str("spec", a.Config.Scheduler.Spec).Msg("Prewarm scheduler started")
	return nil
}

// StopScheduler stops the scheduler and waits for a running job to finish.
func (a *App) StopScheduler() {
	if a.scheduler == nil {
		return
	}

	ctx := a.scheduler.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(10 * time.Second):
		a.Logger.Warn().Msg("Prewarm scheduler did not stop in time")
	}
	a.scheduler = nil
}

func (a *App) prewarm() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	start := time.Now()

	if err := a.DirectoryService.Refresh(ctx); err != nil {
		a.Logger.Warn().Err(err).Msg("Prewarm: directory refresh failed")
	}

	// Running the batch fetcher fills the weekly-average cache as a side effect
	entries := a.BatchService.FetchAll(ctx, watchlists.FNO, "")
	warmed := 0
	for _, e := range entries {
		if e.Avg200Week != nil {
			warmed++
		}
	}

	a.Logger.Info().
		Int("stocks", len(entries)).
		Int("warmed", warmed).
		Dur("elapsed", time.Since(start)).
		Msg("Prewarm: complete")
}
