package ports

import (
	"context"

	"github.com/oryweaver/auction/internal/domain"
)

type ItemRepo interface {
	Create(ctx context.Context, item *domain.Item, settings *domain.ReofferSettings) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	ListByAuction(ctx context.Context, auctionID string) ([]*domain.Item, error)
	GetSignup(ctx context.Context, id string) (*domain.Signup, error)
	ListListings(ctx context.Context, auctionID string) ([]*domain.ReofferListing, error)

	// Atomic runs fn as one indivisible unit against a single item. Calls for
	// the same item are serialized; the owning auction's phase cannot change
	// while fn runs. Any error from fn discards every write made through tx.
	Atomic(ctx context.Context, itemID string, fn func(tx ItemTx) error) error

	Freeze(ctx context.Context, itemID, reason string) error
	Unfreeze(ctx context.Context, itemID string) error
}

// ItemTx is the view of one locked item inside Atomic.
type ItemTx interface {
	Auction() *domain.Auction
	Item() *domain.Item

	SetCommitted(ctx context.Context, committed int) error
	SetStatus(ctx context.Context, status domain.ItemStatus) error

	Bids(ctx context.Context) ([]domain.Bid, error)
	BidByKey(ctx context.Context, bidderID, key string) (*domain.Bid, error)
	InsertBid(ctx context.Context, b *domain.Bid) error

	Winner(ctx context.Context) (*domain.Winner, error)
	InsertWinner(ctx context.Context, w *domain.Winner) error

	Signups(ctx context.Context) ([]domain.Signup, error)
	InsertSignup(ctx context.Context, s *domain.Signup) error
	UpdateSignup(ctx context.Context, s *domain.Signup) error

	ReofferSettings(ctx context.Context) (*domain.ReofferSettings, error)
	SaveReofferSettings(ctx context.Context, s *domain.ReofferSettings) error
	Listing(ctx context.Context) (*domain.ReofferListing, error)
	InsertListing(ctx context.Context, l *domain.ReofferListing) error
	SetListingRemaining(ctx context.Context, remaining int) error

	CommitmentByKey(ctx context.Context, userID, key string) (*domain.Commitment, error)
	InsertCommitment(ctx context.Context, c *domain.Commitment) error
}
