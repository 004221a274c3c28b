package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BiddingService struct {
	items    ports.ItemRepo
	notifier ports.Notifier
	clock    ports.Clock
	logger   logger.Logger
}

func NewBiddingService(
	items ports.ItemRepo,
	notifier ports.Notifier,
	clock ports.Clock,
	logger logger.Logger,
) *BiddingService {
	return &BiddingService{
		items:    items,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// PlaceBid appends a bid to the item's log and reports the derived standing.
// A repeated idempotency key for the same item and bidder returns the result
// recorded for the original bid.
func (s *BiddingService) PlaceBid(ctx context.Context, in domain.PlaceBidInput) (*domain.BidResult, error) {
	if err := validateBidInput(in); err != nil {
		return nil, err
	}

	var (
		res        *domain.BidResult
		auctionID  string
		prevLeader string
		after      domain.Standings
	)
	err := s.items.Atomic(ctx, in.ItemID, func(tx ports.ItemTx) error {
		item := tx.Item()
		auctionID = item.AuctionID

		if in.IdempotencyKey != "" {
			prior, err := tx.BidByKey(ctx, in.BidderID, in.IdempotencyKey)
			if err != nil {
				return fmt.Errorf("lookup bid: %w", err)
			}
			if prior != nil {
				res = &domain.BidResult{
					BidID:        prior.ID,
					Leading:      prior.Leading,
					CurrentPrice: prior.PriceAfter,
					Replayed:     true,
				}
				return nil
			}
		}

		if !item.Kind.Competitive() {
			return domain.ErrWrongItemKind
		}
		if err := item.WritableErr(); err != nil {
			return err
		}
		if err := item.CheckInvariant(); err != nil {
			return err
		}
		now := s.clock.Now()
		if !tx.Auction().AcceptsBids(now) {
			return fmt.Errorf("%w: bidding is not open", domain.ErrPhaseViolation)
		}
		if err := checkBidAmount(item, in); err != nil {
			return err
		}

		bids, err := tx.Bids(ctx)
		if err != nil {
			return fmt.Errorf("load bids: %w", err)
		}
		before := domain.ComputeStandings(item, bids)

		bid := domain.Bid{
			ID:             uuid.New().String(),
			Seq:            nextBidSeq(bids),
			ItemID:         item.ID,
			BidderID:       in.BidderID,
			Amount:         in.Amount,
			MaxProxyAmount: in.MaxProxyAmount,
			IdempotencyKey: in.IdempotencyKey,
			CreatedAt:      now,
		}
		if err = checkAgainstStandings(item, before, &bid); err != nil {
			return err
		}

		after = domain.ComputeStandings(item, append(bids, bid))
		bid.Leading = after.Leader == in.BidderID
		bid.PriceAfter = after.CurrentPrice
		if err = tx.InsertBid(ctx, &bid); err != nil {
			return fmt.Errorf("insert bid: %w", err)
		}

		prevLeader = before.Leader
		res = &domain.BidResult{
			BidID:        bid.ID,
			Leading:      bid.Leading,
			CurrentPrice: bid.PriceAfter,
		}
		return nil
	})
	if err != nil {
		return nil, haltOnInvariant(ctx, s.items, s.logger, in.ItemID, err)
	}
	if res.Replayed {
		return res, nil
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "bid placed",
		logger.String("bid_id", res.BidID),
		logger.String("item_id", in.ItemID),
		logger.String("bidder_id", in.BidderID),
		logger.String("current_price", res.CurrentPrice.String()),
	)

	if prevLeader != "" && prevLeader != after.Leader {
		ev := newEvent(domain.EventOutbid, s.clock.Now())
		ev.AuctionID = auctionID
		ev.ItemID = in.ItemID
		ev.UserID = prevLeader
		ev.Amount = after.CurrentPrice
		s.notifier.Notify(ctx, ev)
	}

	return res, nil
}

// Standing derives the current leader and price without writing anything.
func (s *BiddingService) Standing(ctx context.Context, itemID string) (*domain.Standing, error) {
	var out *domain.Standing
	err := s.items.Atomic(ctx, itemID, func(tx ports.ItemTx) error {
		item := tx.Item()
		if !item.Kind.Competitive() {
			return domain.ErrWrongItemKind
		}
		bids, err := tx.Bids(ctx)
		if err != nil {
			return fmt.Errorf("load bids: %w", err)
		}
		st := domain.ComputeStandings(item, bids)
		out = &domain.Standing{
			ItemID:       item.ID,
			Leader:       st.Leader,
			CurrentPrice: st.CurrentPrice,
			BidderCount:  st.BidderCount,
			MinNextBid:   st.MinNextBid(item),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func validateBidInput(in domain.PlaceBidInput) error {
	if strings.TrimSpace(in.ItemID) == "" || strings.TrimSpace(in.BidderID) == "" {
		return fmt.Errorf("%w: item_id and bidder_id are required", domain.ErrValidation)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	}
	if !domain.ValidMoney(in.Amount) {
		return fmt.Errorf("%w: amount has more than %d decimals", domain.ErrInvalidAmount, domain.MoneyPlaces)
	}
	if m := in.MaxProxyAmount; m != nil {
		if m.LessThan(in.Amount) {
			return fmt.Errorf("%w: max_proxy_amount must not be below amount", domain.ErrInvalidAmount)
		}
		if !domain.ValidMoney(*m) {
			return fmt.Errorf("%w: max_proxy_amount has more than %d decimals", domain.ErrInvalidAmount, domain.MoneyPlaces)
		}
	}
	return nil
}

func checkBidAmount(item *domain.Item, in domain.PlaceBidInput) error {
	if in.Amount.LessThan(item.OpeningMinPrice) {
		return fmt.Errorf("%w: bid must be at least %s", domain.ErrInvalidAmount, item.OpeningMinPrice.StringFixed(2))
	}
	if item.Increment != nil && item.Increment.IsPositive() {
		if !in.Amount.Sub(item.OpeningMinPrice).Mod(*item.Increment).IsZero() {
			return fmt.Errorf("%w: bid must step by %s from %s", domain.ErrInvalidAmount,
				item.Increment.StringFixed(2), item.OpeningMinPrice.StringFixed(2))
		}
	}
	return nil
}

// checkAgainstStandings rejects bids that cannot affect the auction: the
// leader may only raise their own maximum, everyone else must reach the
// next minimum.
func checkAgainstStandings(item *domain.Item, before domain.Standings, bid *domain.Bid) error {
	m := bid.EffectiveMax()
	if before.Leader == bid.BidderID {
		if !m.GreaterThan(before.LeaderMax) {
			return fmt.Errorf("%w: already leading with a higher maximum", domain.ErrInvalidAmount)
		}
		return nil
	}
	if before.BidderCount == 0 {
		return nil
	}
	if floor := before.MinNextBid(item); m.LessThan(floor) {
		return fmt.Errorf("%w: bid must be at least %s", domain.ErrInvalidAmount, floor.StringFixed(2))
	}
	return nil
}

func nextBidSeq(bids []domain.Bid) int64 {
	var last int64
	for i := range bids {
		if bids[i].Seq > last {
			last = bids[i].Seq
		}
	}
	return last + 1
}
