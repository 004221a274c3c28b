package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type CommitmentSource string

const (
	CommitmentSourceWin        CommitmentSource = "win"
	CommitmentSourceReoffer    CommitmentSource = "reoffer"
	CommitmentSourceFixedPrice CommitmentSource = "fixed_price"
)

// Commitment is a ledger entry. Win and reoffer entries are stored; fixed-price
// entries are derived from held signups.
type Commitment struct {
	ID             string           `json:"id"`
	AuctionID      string           `json:"auction_id"`
	ItemID         string           `json:"item_id"`
	DonorID        string           `json:"donor_id"`
	UserID         string           `json:"user_id"`
	Quantity       int              `json:"quantity"`
	Amount         decimal.Decimal  `json:"amount"`
	Source         CommitmentSource `json:"source"`
	IdempotencyKey string           `json:"-"`
	RemainingAfter int              `json:"-"`
	CreatedAt      time.Time        `json:"created_at"`
}

func (c *Commitment) Total() decimal.Decimal {
	return c.Amount.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

type Statement struct {
	OwnerID string          `json:"owner_id"`
	Lines   []Commitment    `json:"lines"`
	Total   decimal.Decimal `json:"total"`
}

// BuildStatement orders lines by creation time then id and sums
// quantity × amount. It does not modify lines.
func BuildStatement(ownerID string, lines []Commitment) Statement {
	sorted := make([]Commitment, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	total := decimal.Zero
	for i := range sorted {
		total = total.Add(sorted[i].Total())
	}
	return Statement{OwnerID: ownerID, Lines: sorted, Total: total}
}
