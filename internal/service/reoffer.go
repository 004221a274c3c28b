package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReofferService struct {
	auctions ports.AuctionRepo
	items    ports.ItemRepo
	notifier ports.Notifier
	clock    ports.Clock
	logger   logger.Logger
}

func NewReofferService(
	auctions ports.AuctionRepo,
	items ports.ItemRepo,
	notifier ports.Notifier,
	clock ports.Clock,
	logger logger.Logger,
) *ReofferService {
	return &ReofferService{
		auctions: auctions,
		items:    items,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// Open freezes a listing for every item of the auction. Items that already
// have one are left alone, so Open can be repeated after a partial failure.
func (s *ReofferService) Open(ctx context.Context, a *domain.Auction, now time.Time) error {
	items, err := s.items.ListByAuction(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}

	var (
		errs   []error
		opened int
	)
	for _, it := range items {
		err := s.items.Atomic(ctx, it.ID, func(tx ports.ItemTx) error {
			existing, err := tx.Listing(ctx)
			if err != nil {
				return fmt.Errorf("get listing: %w", err)
			}
			if existing != nil {
				return nil
			}

			settings, err := tx.ReofferSettings(ctx)
			if err != nil {
				return fmt.Errorf("get reoffer settings: %w", err)
			}
			item := tx.Item()
			if item.Status != domain.ItemStatusPublished || item.Frozen {
				settings.Participate = false
			}
			l := domain.BuildListing(item, *settings, now)
			if err = tx.InsertListing(ctx, &l); err != nil {
				return fmt.Errorf("insert listing: %w", err)
			}
			opened++
			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("item %s: %w", it.ID, err))
		}
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "reoffer listings opened",
		logger.String("auction_id", a.ID),
		logger.Int("opened", opened),
		logger.Int("failed", len(errs)),
	)
	return errors.Join(errs...)
}

// Listings returns the offers a shopper can buy right now.
func (s *ReofferService) Listings(ctx context.Context, auctionID string) ([]*domain.ReofferListing, error) {
	a, err := s.auctions.GetByID(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("get auction: %w", err)
	}
	if a.Phase.Before(domain.PhaseReoffer) {
		return nil, fmt.Errorf("%w: reoffer has not opened", domain.ErrPhaseViolation)
	}
	visible := []*domain.ReofferListing{}
	if !a.AcceptsPurchases(s.clock.Now()) {
		return visible, nil
	}

	all, err := s.items.ListListings(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	for _, l := range all {
		if l.Visible() {
			visible = append(visible, l)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		if visible[i].Title != visible[j].Title {
			return visible[i].Title < visible[j].Title
		}
		return visible[i].ItemID < visible[j].ItemID
	})
	return visible, nil
}

// Buy commits quantity units of a listing at its frozen price. Concurrent
// buyers can never take more than the listing offered.
func (s *ReofferService) Buy(ctx context.Context, in domain.BuyInput) (*domain.BuyResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}

	var res *domain.BuyResult
	err := s.items.Atomic(ctx, in.ItemID, func(tx ports.ItemTx) error {
		if in.IdempotencyKey != "" {
			prior, err := tx.CommitmentByKey(ctx, in.UserID, in.IdempotencyKey)
			if err != nil {
				return fmt.Errorf("lookup commitment: %w", err)
			}
			if prior != nil {
				res = &domain.BuyResult{
					CommitmentID:      prior.ID,
					PriceEach:         prior.Amount,
					QuantityRemaining: prior.RemainingAfter,
					Replayed:          true,
				}
				return nil
			}
		}

		now := s.clock.Now()
		if !tx.Auction().AcceptsPurchases(now) {
			return fmt.Errorf("%w: reoffer is not open", domain.ErrPhaseViolation)
		}
		item := tx.Item()
		if item.Frozen {
			return fmt.Errorf("%w: %s", domain.ErrItemFrozen, item.FrozenReason)
		}
		if err := item.CheckInvariant(); err != nil {
			return err
		}

		l, err := tx.Listing(ctx)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}
		if l == nil || !l.Participate {
			return domain.ErrNotOffered
		}
		if l.QuantityRemaining < in.Quantity {
			return fmt.Errorf("%w: %d left", domain.ErrSoldOut, l.QuantityRemaining)
		}

		committed, err := item.CommittedAfter(in.Quantity)
		if err != nil {
			return err
		}
		remaining := l.QuantityRemaining - in.Quantity
		if err = tx.SetListingRemaining(ctx, remaining); err != nil {
			return fmt.Errorf("set listing remaining: %w", err)
		}
		if err = tx.SetCommitted(ctx, committed); err != nil {
			return fmt.Errorf("set committed: %w", err)
		}

		c := &domain.Commitment{
			ID:             uuid.New().String(),
			AuctionID:      item.AuctionID,
			ItemID:         item.ID,
			DonorID:        item.DonorID,
			UserID:         in.UserID,
			Quantity:       in.Quantity,
			Amount:         l.Price,
			Source:         domain.CommitmentSourceReoffer,
			IdempotencyKey: in.IdempotencyKey,
			RemainingAfter: remaining,
			CreatedAt:      now,
		}
		if err = tx.InsertCommitment(ctx, c); err != nil {
			return fmt.Errorf("insert commitment: %w", err)
		}

		res = &domain.BuyResult{
			CommitmentID:      c.ID,
			PriceEach:         c.Amount,
			QuantityRemaining: remaining,
		}
		return nil
	})
	if err != nil {
		return nil, haltOnInvariant(ctx, s.items, s.logger, in.ItemID, err)
	}

	if !res.Replayed {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "reoffer purchase",
			logger.String("commitment_id", res.CommitmentID),
			logger.String("item_id", in.ItemID),
			logger.String("user_id", in.UserID),
			logger.Int("quantity", in.Quantity),
			logger.Int("remaining", res.QuantityRemaining),
		)
	}
	return res, nil
}

// BroadcastOpened tells every registered bidder that reoffer is open.
func (s *ReofferService) BroadcastOpened(ctx context.Context, auctionID string) {
	bidders, err := s.auctions.ListBidders(ctx, auctionID)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to list bidders for reoffer broadcast",
			logger.String("auction_id", auctionID),
			logger.String("error", err.Error()),
		)
		return
	}
	if len(bidders) == 0 {
		return
	}

	ev := newEvent(domain.EventReofferOpened, s.clock.Now())
	ev.AuctionID = auctionID
	ev.Recipients = bidders
	s.notifier.Notify(ctx, ev)
}
