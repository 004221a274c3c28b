package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const defaultResolutionConcurrency = 4

type WinnerResolver struct {
	auctions    ports.AuctionRepo
	items       ports.ItemRepo
	notifier    ports.Notifier
	clock       ports.Clock
	logger      logger.Logger
	concurrency int
}

func NewWinnerResolver(
	auctions ports.AuctionRepo,
	items ports.ItemRepo,
	notifier ports.Notifier,
	clock ports.Clock,
	logger logger.Logger,
	concurrency int,
) *WinnerResolver {
	if concurrency <= 0 {
		concurrency = defaultResolutionConcurrency
	}
	return &WinnerResolver{
		auctions:    auctions,
		items:       items,
		notifier:    notifier,
		clock:       clock,
		logger:      logger,
		concurrency: concurrency,
	}
}

// ResolveWinners records a winner for every competitive item of the auction
// that has bids and no winner yet. Repeating it never creates a second winner.
func (r *WinnerResolver) ResolveWinners(ctx context.Context, auctionID string) (*domain.ResolutionReport, error) {
	a, err := r.auctions.GetByID(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("get auction: %w", err)
	}
	if a.Phase.Before(domain.PhasePaused) {
		return nil, fmt.Errorf("%w: bidding has not closed", domain.ErrPhaseViolation)
	}
	return r.resolveAuction(ctx, a)
}

func (r *WinnerResolver) resolveAuction(ctx context.Context, a *domain.Auction) (*domain.ResolutionReport, error) {
	items, err := r.items.ListByAuction(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	report := &domain.ResolutionReport{
		AuctionID: a.ID,
		Winners:   []domain.Winner{},
		NoBids:    []string{},
		Failed:    []string{},
		At:        r.clock.Now(),
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, it := range items {
		if !it.Kind.Competitive() {
			continue
		}
		// items fail independently, so the group never sees an error
		g.Go(func() error {
			w, created, err := r.resolveItem(gctx, it.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				report.Failed = append(report.Failed, it.ID)
				errs = append(errs, fmt.Errorf("item %s: %w", it.ID, err))
			case w == nil:
				report.NoBids = append(report.NoBids, it.ID)
			default:
				report.Winners = append(report.Winners, *w)
				if created {
					r.notifyWin(ctx, w)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(report.Winners, func(i, j int) bool { return report.Winners[i].ItemID < report.Winners[j].ItemID })
	sort.Strings(report.NoBids)
	sort.Strings(report.Failed)

	r.logger.LogAttrs(ctx, logger.InfoLevel, "winner resolution finished",
		logger.String("auction_id", a.ID),
		logger.Int("winners", len(report.Winners)),
		logger.Int("no_bids", len(report.NoBids)),
		logger.Int("failed", len(report.Failed)),
	)

	if len(errs) > 0 {
		return report, fmt.Errorf("%w: %w", domain.ErrResolutionPending, errors.Join(errs...))
	}
	return report, nil
}

// resolveItem returns the item's winner, creating it when missing. created is
// false when the winner already existed.
func (r *WinnerResolver) resolveItem(ctx context.Context, itemID string) (*domain.Winner, bool, error) {
	var (
		winner  *domain.Winner
		created bool
	)
	err := r.items.Atomic(ctx, itemID, func(tx ports.ItemTx) error {
		existing, err := tx.Winner(ctx)
		if err != nil {
			return fmt.Errorf("get winner: %w", err)
		}
		if existing != nil {
			winner = existing
			return nil
		}

		item := tx.Item()
		if item.Frozen {
			return fmt.Errorf("%w: %s", domain.ErrItemFrozen, item.FrozenReason)
		}
		bids, err := tx.Bids(ctx)
		if err != nil {
			return fmt.Errorf("load bids: %w", err)
		}
		if len(bids) == 0 {
			return nil
		}

		st := domain.ComputeStandings(item, bids)
		committed, err := item.CommittedAfter(1)
		if err != nil {
			return err
		}

		now := r.clock.Now()
		w := &domain.Winner{
			ID:           uuid.New().String(),
			ItemID:       item.ID,
			AuctionID:    item.AuctionID,
			BidderID:     st.Leader,
			Amount:       st.CurrentPrice,
			Quantity:     1,
			DeterminedAt: now,
		}
		if err = tx.InsertWinner(ctx, w); err != nil {
			return fmt.Errorf("insert winner: %w", err)
		}
		if err = tx.SetCommitted(ctx, committed); err != nil {
			return fmt.Errorf("set committed: %w", err)
		}
		err = tx.InsertCommitment(ctx, &domain.Commitment{
			ID:        uuid.New().String(),
			AuctionID: item.AuctionID,
			ItemID:    item.ID,
			DonorID:   item.DonorID,
			UserID:    st.Leader,
			Quantity:  1,
			Amount:    st.CurrentPrice,
			Source:    domain.CommitmentSourceWin,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("insert commitment: %w", err)
		}

		winner, created = w, true
		return nil
	})
	if err != nil {
		return nil, false, haltOnInvariant(ctx, r.items, r.logger, itemID, err)
	}
	return winner, created, nil
}

func (r *WinnerResolver) notifyWin(ctx context.Context, w *domain.Winner) {
	ev := newEvent(domain.EventWin, w.DeterminedAt)
	ev.AuctionID = w.AuctionID
	ev.ItemID = w.ItemID
	ev.UserID = w.BidderID
	ev.Amount = w.Amount
	ev.Quantity = w.Quantity
	r.notifier.Notify(ctx, ev)
}
