package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReofferSettings are the donor's choices for the buy-it-now phase.
type ReofferSettings struct {
	ItemID           string           `json:"item_id"`
	Participate      bool             `json:"participate"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	QuantityOverride *int             `json:"quantity_override,omitempty"`
	AllowBelowMin    bool             `json:"allow_below_min"`
}

func DefaultReofferSettings(itemID string) ReofferSettings {
	return ReofferSettings{ItemID: itemID, Participate: true}
}

// ReofferListing is the inventory frozen at reoffer open. Only
// QuantityRemaining changes afterwards.
type ReofferListing struct {
	ItemID            string          `json:"item_id"`
	AuctionID         string          `json:"auction_id"`
	Title             string          `json:"title"`
	Participate       bool            `json:"participate"`
	Price             decimal.Decimal `json:"price"`
	QuantityOffered   int             `json:"quantity_offered"`
	QuantityRemaining int             `json:"quantity_remaining"`
	OpenedAt          time.Time       `json:"opened_at"`
}

func (l *ReofferListing) Visible() bool {
	return l.Participate && l.QuantityRemaining > 0
}

// BuildListing computes the reoffer-eligible quantity and effective price of
// item at the moment reoffer opens.
func BuildListing(item *Item, settings ReofferSettings, now time.Time) ReofferListing {
	l := ReofferListing{
		ItemID:      item.ID,
		AuctionID:   item.AuctionID,
		Title:       item.Title,
		Participate: settings.Participate,
		Price:       item.OpeningMinPrice,
		OpenedAt:    now,
	}
	if !settings.Participate {
		return l
	}

	qty := item.Remaining()
	if qty < 0 {
		qty = 0
	}
	if o := settings.QuantityOverride; o != nil && *o >= 0 && *o <= qty {
		qty = *o
	}
	l.QuantityOffered = qty
	l.QuantityRemaining = qty

	if p := settings.Price; p != nil {
		if settings.AllowBelowMin || !p.LessThan(item.OpeningMinPrice) {
			l.Price = *p
		}
	}
	return l
}

type BuyInput struct {
	ItemID         string
	UserID         string
	Quantity       int
	IdempotencyKey string
}

type BuyResult struct {
	CommitmentID      string          `json:"commitment_id"`
	PriceEach         decimal.Decimal `json:"price_each"`
	QuantityRemaining int             `json:"quantity_remaining"`
	Replayed          bool            `json:"replayed"`
}
