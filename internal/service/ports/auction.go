package ports

import (
	"context"

	"github.com/oryweaver/auction/internal/domain"
)

type AuctionRepo interface {
	Create(ctx context.Context, a *domain.Auction) error
	GetByID(ctx context.Context, id string) (*domain.Auction, error)
	// ListActive returns auctions that have not reached the terminal phase.
	ListActive(ctx context.Context) ([]*domain.Auction, error)
	// CompareAndSwapPhase sets phase to `to` only if it currently equals `from`.
	CompareAndSwapPhase(ctx context.Context, id string, from, to domain.Phase) (bool, error)
	RegisterBidder(ctx context.Context, auctionID, userID string) error
	ListBidders(ctx context.Context, auctionID string) ([]string, error)
}
