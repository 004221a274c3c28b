package scheduler

import (
	"context"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type lifecycleTicker interface {
	TickAll(ctx context.Context, now time.Time) ([]domain.PhaseChange, error)
}

type clock interface {
	Now() time.Time
}

// Scheduler periodically moves every active auction to the phase its
// boundaries prescribe. The interval must be finer than the shortest gap
// between two boundaries.
type Scheduler struct {
	lifecycle lifecycleTicker
	clock     clock
	interval  time.Duration
	logger    logger.Logger
}

func New(
	lifecycle lifecycleTicker,
	clock clock,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		lifecycle: lifecycle,
		clock:     clock,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.LogAttrs(ctx, logger.InfoLevel, "scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.LogAttrs(ctx, logger.InfoLevel, "scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	changes, err := s.lifecycle.TickAll(ctx, s.clock.Now())
	for _, c := range changes {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "auction phase advanced",
			logger.String("auction_id", c.AuctionID),
			logger.String("from", string(c.From)),
			logger.String("to", string(c.To)),
		)
	}
	if err != nil {
		// частичный успех: остальные аукционы уже сдвинуты, повторим на следующем тике
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "lifecycle tick failed",
			logger.String("error", err.Error()),
		)
	}
}
