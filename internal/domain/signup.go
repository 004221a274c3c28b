package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SignupStatus string

const (
	SignupStatusActive     SignupStatus = "active"
	SignupStatusWaitlisted SignupStatus = "waitlisted"
	SignupStatusCanceled   SignupStatus = "canceled"
	SignupStatusConfirmed  SignupStatus = "confirmed"
	SignupStatusAttended   SignupStatus = "attended"
	SignupStatusNoShow     SignupStatus = "no_show"
)

// HoldingStatuses consume capacity and count as fixed-price commitments.
var HoldingStatuses = []SignupStatus{
	SignupStatusActive,
	SignupStatusConfirmed,
	SignupStatusAttended,
	SignupStatusNoShow,
}

func (s SignupStatus) HoldsCapacity() bool {
	for _, h := range HoldingStatuses {
		if s == h {
			return true
		}
	}
	return false
}

type Signup struct {
	ID        string       `json:"id"`
	Seq       int64        `json:"-"`
	ItemID    string       `json:"item_id"`
	UserID    string       `json:"user_id"`
	Quantity  int          `json:"quantity"`
	Status    SignupStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// HeldSignup is a capacity-holding signup joined with what the ledger needs
// from its item.
type HeldSignup struct {
	Signup    Signup
	AuctionID string
	DonorID   string
	Price     decimal.Decimal
}

// Commitment derives the fixed-price ledger entry for a held signup.
func (h HeldSignup) Commitment() Commitment {
	return Commitment{
		ID:        h.Signup.ID,
		AuctionID: h.AuctionID,
		ItemID:    h.Signup.ItemID,
		DonorID:   h.DonorID,
		UserID:    h.Signup.UserID,
		Quantity:  h.Signup.Quantity,
		Amount:    h.Price,
		Source:    CommitmentSourceFixedPrice,
		CreatedAt: h.Signup.CreatedAt,
	}
}
