package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid is append-only. Leading and PriceAfter record the result returned to
// the bidder at placement so idempotent replays can return it verbatim.
type Bid struct {
	ID             string           `json:"id"`
	Seq            int64            `json:"-"`
	ItemID         string           `json:"item_id"`
	BidderID       string           `json:"bidder_id"`
	Amount         decimal.Decimal  `json:"amount"`
	MaxProxyAmount *decimal.Decimal `json:"max_proxy_amount,omitempty"`
	IdempotencyKey string           `json:"idempotency_key,omitempty"`
	Leading        bool             `json:"leading"`
	PriceAfter     decimal.Decimal  `json:"price_after"`
	CreatedAt      time.Time        `json:"created_at"`
}

// EffectiveMax is the most the bidder is willing to pay with this bid.
func (b *Bid) EffectiveMax() decimal.Decimal {
	if b.MaxProxyAmount != nil && b.MaxProxyAmount.GreaterThan(b.Amount) {
		return *b.MaxProxyAmount
	}
	return b.Amount
}

type PlaceBidInput struct {
	ItemID         string
	BidderID       string
	Amount         decimal.Decimal
	MaxProxyAmount *decimal.Decimal
	IdempotencyKey string
}

type BidResult struct {
	BidID        string          `json:"bid_id"`
	Leading      bool            `json:"leading"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Replayed     bool            `json:"replayed"`
}
