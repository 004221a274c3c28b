package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventKind string

const (
	EventOutbid           EventKind = "outbid"
	EventWin              EventKind = "win"
	EventReofferOpened    EventKind = "reoffer_opened"
	EventWaitlistPromoted EventKind = "waitlist_promoted"
	EventPhaseChanged     EventKind = "phase_changed"
)

// Event is an outbound notification. UserID addresses a single user;
// Recipients is used for broadcasts.
type Event struct {
	ID         string          `json:"id"`
	Kind       EventKind       `json:"kind"`
	AuctionID  string          `json:"auction_id,omitempty"`
	ItemID     string          `json:"item_id,omitempty"`
	UserID     string          `json:"user_id,omitempty"`
	Recipients []string        `json:"recipients,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Quantity   int             `json:"quantity,omitempty"`
	Phase      Phase           `json:"phase,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Addressees returns the users the event is delivered to.
func (e Event) Addressees() []string {
	if len(e.Recipients) > 0 {
		return e.Recipients
	}
	if e.UserID != "" {
		return []string{e.UserID}
	}
	return nil
}
