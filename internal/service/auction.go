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

// AuctionService manages the catalog: auctions, their items and the
// bidders registered for them.
type AuctionService struct {
	auctions ports.AuctionRepo
	items    ports.ItemRepo
	users    ports.UserRepo
	clock    ports.Clock
	logger   logger.Logger
}

func NewAuctionService(
	auctions ports.AuctionRepo,
	items ports.ItemRepo,
	users ports.UserRepo,
	clock ports.Clock,
	logger logger.Logger,
) *AuctionService {
	return &AuctionService{
		auctions: auctions,
		items:    items,
		users:    users,
		clock:    clock,
		logger:   logger,
	}
}

func (s *AuctionService) CreateAuction(ctx context.Context, input domain.CreateAuctionInput) (*domain.Auction, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", domain.ErrValidation)
	}
	if err := input.Boundaries.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	a := &domain.Auction{
		ID:         uuid.New().String(),
		Title:      input.Title,
		Year:       input.Year,
		Boundaries: input.Boundaries,
		Phase:      domain.PhaseDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.auctions.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create auction: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "auction created",
		logger.String("auction_id", a.ID),
		logger.Int("year", a.Year),
	)
	return a, nil
}

func (s *AuctionService) GetAuction(ctx context.Context, id string) (*domain.Auction, error) {
	return s.auctions.GetByID(ctx, id)
}

func (s *AuctionService) ListActive(ctx context.Context) ([]*domain.Auction, error) {
	return s.auctions.ListActive(ctx)
}

func (s *AuctionService) CreateItem(ctx context.Context, input domain.CreateItemInput) (*domain.Item, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	a, err := s.auctions.GetByID(ctx, input.AuctionID)
	if err != nil {
		return nil, fmt.Errorf("get auction: %w", err)
	}
	if !a.Phase.Before(domain.PhasePaused) {
		return nil, fmt.Errorf("%w: catalog is closed", domain.ErrPhaseViolation)
	}

	now := s.clock.Now()
	item := &domain.Item{
		ID:              uuid.New().String(),
		AuctionID:       input.AuctionID,
		DonorID:         input.DonorID,
		Title:           input.Title,
		Kind:            input.Kind,
		Status:          domain.ItemStatusDraft,
		OpeningMinPrice: input.OpeningMinPrice,
		Increment:       input.Increment,
		QuantityTotal:   input.QuantityTotal,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.Publish {
		item.Status = domain.ItemStatusPublished
	}

	settings := domain.DefaultReofferSettings(item.ID)
	if input.Reoffer != nil {
		settings = *input.Reoffer
		settings.ItemID = item.ID
		if err = validateReofferSettings(item, &settings); err != nil {
			return nil, err
		}
	}

	if err = s.items.Create(ctx, item, &settings); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "item created",
		logger.String("item_id", item.ID),
		logger.String("auction_id", item.AuctionID),
		logger.String("kind", string(item.Kind)),
	)
	return item, nil
}

func (s *AuctionService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *AuctionService) ListItems(ctx context.Context, auctionID string) ([]*domain.Item, error) {
	if _, err := s.auctions.GetByID(ctx, auctionID); err != nil {
		return nil, err
	}
	return s.items.ListByAuction(ctx, auctionID)
}

// PublishItem makes a draft item visible to bidders and signups.
func (s *AuctionService) PublishItem(ctx context.Context, itemID string) (*domain.Item, error) {
	return s.setStatus(ctx, itemID, domain.ItemStatusPublished)
}

// ArchiveItem withdraws an item that has no commitments against it.
func (s *AuctionService) ArchiveItem(ctx context.Context, itemID string) (*domain.Item, error) {
	return s.setStatus(ctx, itemID, domain.ItemStatusArchived)
}

func (s *AuctionService) setStatus(ctx context.Context, itemID string, status domain.ItemStatus) (*domain.Item, error) {
	var out domain.Item
	err := s.items.Atomic(ctx, itemID, func(tx ports.ItemTx) error {
		item := tx.Item()
		if item.Frozen {
			return fmt.Errorf("%w: %s", domain.ErrItemFrozen, item.FrozenReason)
		}
		if !tx.Auction().Phase.Before(domain.PhasePaused) {
			return fmt.Errorf("%w: catalog is closed", domain.ErrPhaseViolation)
		}
		if item.Status == status {
			out = *item
			return nil
		}

		switch status {
		case domain.ItemStatusPublished:
			if item.Status != domain.ItemStatusDraft {
				return fmt.Errorf("%w: only draft items can be published", domain.ErrConflict)
			}
		case domain.ItemStatusArchived:
			if item.QuantityCommitted > 0 {
				return fmt.Errorf("%w: item has commitments", domain.ErrConflict)
			}
			bids, err := tx.Bids(ctx)
			if err != nil {
				return fmt.Errorf("load bids: %w", err)
			}
			if len(bids) > 0 {
				return fmt.Errorf("%w: item has bids", domain.ErrConflict)
			}
		}

		if err := tx.SetStatus(ctx, status); err != nil {
			return fmt.Errorf("set status: %w", err)
		}
		out = *tx.Item()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "item status changed",
		logger.String("item_id", itemID),
		logger.String("status", string(status)),
	)
	return &out, nil
}

// UnfreezeItem lifts a halt after an operator has repaired the item's counts.
func (s *AuctionService) UnfreezeItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err = item.CheckInvariant(); err != nil {
		return nil, fmt.Errorf("%w: repair counts before unfreezing", err)
	}
	if err = s.items.Unfreeze(ctx, itemID); err != nil {
		return nil, fmt.Errorf("unfreeze item: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.WarnLevel, "item unfrozen by operator",
		logger.String("item_id", itemID),
		logger.String("previous_reason", item.FrozenReason),
	)
	item.Frozen, item.FrozenReason = false, ""
	return item, nil
}

// UpdateReofferSettings replaces the donor's reoffer choices. Once the item's
// listing is frozen (possibly while the auction is still paused) edits are
// rejected.
func (s *AuctionService) UpdateReofferSettings(ctx context.Context, settings domain.ReofferSettings) (*domain.ReofferSettings, error) {
	err := s.items.Atomic(ctx, settings.ItemID, func(tx ports.ItemTx) error {
		if !tx.Auction().Phase.Before(domain.PhaseReoffer) {
			return fmt.Errorf("%w: reoffer settings are frozen", domain.ErrPhaseViolation)
		}
		listing, err := tx.Listing(ctx)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}
		if listing != nil {
			return fmt.Errorf("%w: reoffer listing already frozen", domain.ErrPhaseViolation)
		}
		if err := validateReofferSettings(tx.Item(), &settings); err != nil {
			return err
		}
		return tx.SaveReofferSettings(ctx, &settings)
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// RegisterBidder enrolls a user for an auction's broadcasts. Registering
// twice is harmless.
func (s *AuctionService) RegisterBidder(ctx context.Context, auctionID, userID string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	a, err := s.auctions.GetByID(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("get auction: %w", err)
	}
	if a.Phase.Before(domain.PhaseRegistration) || !a.Phase.Before(domain.PhaseClosed) {
		return fmt.Errorf("%w: registration is closed", domain.ErrPhaseViolation)
	}
	if err = s.auctions.RegisterBidder(ctx, auctionID, userID); err != nil {
		return fmt.Errorf("register bidder: %w", err)
	}
	return nil
}

func validateItemInput(in domain.CreateItemInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.AuctionID == "" || in.DonorID == "" {
		return fmt.Errorf("%w: auction_id and donor_id are required", domain.ErrValidation)
	}
	if !in.Kind.Valid() {
		return fmt.Errorf("%w: unknown item kind %q", domain.ErrValidation, in.Kind)
	}
	if !in.OpeningMinPrice.IsPositive() || !domain.ValidMoney(in.OpeningMinPrice) {
		return fmt.Errorf("%w: opening_min_price must be positive with at most %d decimals", domain.ErrInvalidAmount, domain.MoneyPlaces)
	}
	if in.Increment != nil {
		if !in.Kind.Competitive() {
			return fmt.Errorf("%w: increment only applies to competitive items", domain.ErrValidation)
		}
		if !in.Increment.IsPositive() || !domain.ValidMoney(*in.Increment) {
			return fmt.Errorf("%w: increment must be positive with at most %d decimals", domain.ErrInvalidAmount, domain.MoneyPlaces)
		}
	}
	if in.Kind.Competitive() && in.QuantityTotal != 1 {
		return fmt.Errorf("%w: competitive items have quantity 1", domain.ErrInvalidQuantity)
	}
	if in.QuantityTotal <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

func validateReofferSettings(item *domain.Item, s *domain.ReofferSettings) error {
	s.ItemID = item.ID
	if p := s.Price; p != nil {
		if !p.IsPositive() || !domain.ValidMoney(*p) {
			return fmt.Errorf("%w: reoffer price must be positive with at most %d decimals", domain.ErrInvalidAmount, domain.MoneyPlaces)
		}
		if !s.AllowBelowMin && p.LessThan(item.OpeningMinPrice) {
			return fmt.Errorf("%w: reoffer price below %s needs allow_below_min", domain.ErrInvalidAmount, item.OpeningMinPrice.StringFixed(2))
		}
	}
	if o := s.QuantityOverride; o != nil && (*o < 0 || *o > item.QuantityTotal) {
		return fmt.Errorf("%w: quantity override must be within 0..%d", domain.ErrValidation, item.QuantityTotal)
	}
	return nil
}
