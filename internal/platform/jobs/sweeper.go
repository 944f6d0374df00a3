// Package jobs runs periodic background maintenance against the database.
package jobs

import (
	"context"
	"log/slog"
	"time"
)

// PortalCloser closes recruitment portals whose expiry date has passed
// and reports how many rows changed.
type PortalCloser interface {
	CloseExpiredPortals(ctx context.Context, now time.Time) (int64, error)
}

type Sweeper struct {
	portals  PortalCloser
	interval time.Duration
	logger   *slog.Logger
}

func NewSweeper(portals PortalCloser, interval time.Duration, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{portals: portals, interval: interval, logger: logger}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	s.sweep(ctx)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	closed, err := s.portals.CloseExpiredPortals(ctx, time.Now())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("portal sweep failed", "error", err)
		return
	}
	if closed > 0 {
		s.logger.Info("closed expired recruitment portals", "count", closed)
	}
}
