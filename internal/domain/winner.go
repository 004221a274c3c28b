package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Winner is immutable once created; at most one exists per competitive item.
type Winner struct {
	ID           string          `json:"id"`
	ItemID       string          `json:"item_id"`
	AuctionID    string          `json:"auction_id"`
	BidderID     string          `json:"bidder_id"`
	Amount       decimal.Decimal `json:"amount"`
	Quantity     int             `json:"quantity"`
	DeterminedAt time.Time       `json:"determined_at"`
}

type ResolutionReport struct {
	AuctionID string    `json:"auction_id"`
	Winners   []Winner  `json:"winners"`
	NoBids    []string  `json:"no_bids"`
	Failed    []string  `json:"failed"`
	At        time.Time `json:"at"`
}
