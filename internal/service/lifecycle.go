package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// LifecycleService moves auctions forward through their phases as boundary
// times pass. Every step is a compare-and-swap, so concurrent ticks apply
// each transition exactly once.
type LifecycleService struct {
	auctions ports.AuctionRepo
	winners  *WinnerResolver
	reoffer  *ReofferService
	notifier ports.Notifier
	logger   logger.Logger
}

func NewLifecycleService(
	auctions ports.AuctionRepo,
	winners *WinnerResolver,
	reoffer *ReofferService,
	notifier ports.Notifier,
	logger logger.Logger,
) *LifecycleService {
	return &LifecycleService{
		auctions: auctions,
		winners:  winners,
		reoffer:  reoffer,
		notifier: notifier,
		logger:   logger,
	}
}

// Tick advances one auction to the phase its boundaries prescribe at now and
// reports whether anything changed.
func (s *LifecycleService) Tick(ctx context.Context, auctionID string, now time.Time) (bool, error) {
	changes, err := s.Advance(ctx, auctionID, now)
	return len(changes) > 0, err
}

// Advance is Tick returning the individual steps taken. Overdue auctions walk
// through every skipped phase in order.
func (s *LifecycleService) Advance(ctx context.Context, auctionID string, now time.Time) ([]domain.PhaseChange, error) {
	var changes []domain.PhaseChange

	// bounded in case another ticker keeps winning the CAS
	for attempt := 0; attempt < 2*len(domain.Phases()); attempt++ {
		a, err := s.auctions.GetByID(ctx, auctionID)
		if err != nil {
			return changes, fmt.Errorf("get auction: %w", err)
		}
		if !a.Phase.Before(a.Boundaries.PhaseAt(now)) {
			return changes, nil
		}
		next, ok := a.Phase.Next()
		if !ok {
			return changes, nil
		}

		if next == domain.PhaseReoffer {
			if err = s.prepareReoffer(ctx, a, now); err != nil {
				return changes, err
			}
		}

		swapped, err := s.auctions.CompareAndSwapPhase(ctx, a.ID, a.Phase, next)
		if err != nil {
			return changes, fmt.Errorf("advance phase: %w", err)
		}
		if !swapped {
			continue
		}

		ch := domain.PhaseChange{AuctionID: a.ID, From: a.Phase, To: next, At: now}
		changes = append(changes, ch)
		s.entered(ctx, a, ch)
	}
	return changes, nil
}

// TickAll advances every auction that has not settled yet.
func (s *LifecycleService) TickAll(ctx context.Context, now time.Time) ([]domain.PhaseChange, error) {
	auctions, err := s.auctions.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active auctions: %w", err)
	}

	var (
		all  []domain.PhaseChange
		errs []error
	)
	for _, a := range auctions {
		changes, err := s.Advance(ctx, a.ID, now)
		all = append(all, changes...)
		if err != nil {
			errs = append(errs, fmt.Errorf("auction %s: %w", a.ID, err))
		}
	}
	return all, errors.Join(errs...)
}

// prepareReoffer must succeed before an auction may enter reoffer: every
// competitive item resolved and every listing frozen.
func (s *LifecycleService) prepareReoffer(ctx context.Context, a *domain.Auction, now time.Time) error {
	if _, err := s.winners.resolveAuction(ctx, a); err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "reoffer held back until winner resolution succeeds",
			logger.String("auction_id", a.ID),
			logger.String("error", err.Error()),
		)
		return err
	}
	if err := s.reoffer.Open(ctx, a, now); err != nil {
		return fmt.Errorf("%w: open reoffer: %w", domain.ErrResolutionPending, err)
	}
	return nil
}

func (s *LifecycleService) entered(ctx context.Context, a *domain.Auction, ch domain.PhaseChange) {
	s.logger.LogAttrs(ctx, logger.InfoLevel, "auction phase changed",
		logger.String("auction_id", ch.AuctionID),
		logger.String("from", string(ch.From)),
		logger.String("to", string(ch.To)),
	)

	ev := newEvent(domain.EventPhaseChanged, ch.At)
	ev.AuctionID = ch.AuctionID
	ev.Phase = ch.To
	s.notifier.Notify(ctx, ev)

	switch ch.To {
	case domain.PhasePaused:
		if _, err := s.winners.resolveAuction(ctx, a); err != nil {
			s.logger.LogAttrs(ctx, logger.ErrorLevel, "winner resolution failed",
				logger.String("auction_id", a.ID),
				logger.String("error", err.Error()),
			)
		}
	case domain.PhaseReoffer:
		go s.reoffer.BroadcastOpened(context.WithoutCancel(ctx), a.ID)
	}
}
