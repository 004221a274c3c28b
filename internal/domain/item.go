package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the scale of every stored amount.
const MoneyPlaces = 2

// ValidMoney reports whether d fits the stored scale without rounding.
func ValidMoney(d decimal.Decimal) bool { return d.Equal(d.Round(MoneyPlaces)) }

type ItemKind string

const (
	ItemKindCompetitive     ItemKind = "competitive"
	ItemKindFixedPriceEvent ItemKind = "fixed_price_event"
	ItemKindFixedPriceItem  ItemKind = "fixed_price_item"
	ItemKindService         ItemKind = "service"
)

func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindCompetitive, ItemKindFixedPriceEvent, ItemKindFixedPriceItem, ItemKindService:
		return true
	}
	return false
}

func (k ItemKind) Competitive() bool { return k == ItemKindCompetitive }

// CapacityBound reports whether the item is sold through signups at a fixed price.
func (k ItemKind) CapacityBound() bool { return k.Valid() && !k.Competitive() }

type ItemStatus string

const (
	ItemStatusDraft     ItemStatus = "draft"
	ItemStatusPublished ItemStatus = "published"
	ItemStatusArchived  ItemStatus = "archived"
)

type Item struct {
	ID                string           `json:"id"`
	AuctionID         string           `json:"auction_id"`
	DonorID           string           `json:"donor_id"`
	Title             string           `json:"title"`
	Kind              ItemKind         `json:"kind"`
	Status            ItemStatus       `json:"status"`
	OpeningMinPrice   decimal.Decimal  `json:"opening_min_price"`
	Increment         *decimal.Decimal `json:"increment,omitempty"`
	QuantityTotal     int              `json:"quantity_total"`
	QuantityCommitted int              `json:"quantity_committed"`
	Frozen            bool             `json:"frozen"`
	FrozenReason      string           `json:"frozen_reason,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func (i *Item) Remaining() int { return i.QuantityTotal - i.QuantityCommitted }

// CheckInvariant reports a stored committed count outside [0, total].
func (i *Item) CheckInvariant() error {
	if i.QuantityCommitted < 0 || i.QuantityCommitted > i.QuantityTotal {
		return fmt.Errorf("%w: item %s committed %d of %d",
			ErrInvariantViolation, i.ID, i.QuantityCommitted, i.QuantityTotal)
	}
	return nil
}

// CommittedAfter returns the committed count after adding delta, or an
// invariant violation if that would leave [0, total].
func (i *Item) CommittedAfter(delta int) (int, error) {
	next := i.QuantityCommitted + delta
	if next < 0 || next > i.QuantityTotal {
		return 0, fmt.Errorf("%w: item %s committed would become %d of %d",
			ErrInvariantViolation, i.ID, next, i.QuantityTotal)
	}
	return next, nil
}

// WritableErr returns the error any write on the item must fail with, if any.
func (i *Item) WritableErr() error {
	if i.Frozen {
		return fmt.Errorf("%w: %s", ErrItemFrozen, i.FrozenReason)
	}
	if i.Status != ItemStatusPublished {
		return ErrItemNotPublished
	}
	return nil
}

// IncrementAt returns the bid step that applies at price.
func (i *Item) IncrementAt(price decimal.Decimal) decimal.Decimal {
	if i.Increment != nil {
		return *i.Increment
	}
	return StandardIncrement(price)
}

var incrementTiers = []struct {
	below decimal.Decimal
	step  decimal.Decimal
}{
	{decimal.NewFromInt(25), decimal.NewFromInt(1)},
	{decimal.NewFromInt(100), decimal.NewFromInt(5)},
	{decimal.NewFromInt(250), decimal.NewFromInt(10)},
	{decimal.NewFromInt(500), decimal.NewFromInt(25)},
	{decimal.NewFromInt(1000), decimal.NewFromInt(50)},
}

// StandardIncrement is the tiered step used when an item has no explicit increment.
func StandardIncrement(price decimal.Decimal) decimal.Decimal {
	for _, t := range incrementTiers {
		if price.LessThan(t.below) {
			return t.step
		}
	}
	return decimal.NewFromInt(100)
}

type CreateItemInput struct {
	AuctionID       string
	DonorID         string
	Title           string
	Kind            ItemKind
	OpeningMinPrice decimal.Decimal
	Increment       *decimal.Decimal
	QuantityTotal   int
	Publish         bool
	Reoffer         *ReofferSettings
}
