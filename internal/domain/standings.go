package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// BidderStanding is one bidder's best maximum and when it was first reached.
type BidderStanding struct {
	BidderID  string          `json:"bidder_id"`
	Max       decimal.Decimal `json:"-"`
	ReachedAt time.Time       `json:"-"`
	seq       int64
}

type Standings struct {
	Leader       string           `json:"leader,omitempty"`
	LeaderMax    decimal.Decimal  `json:"-"`
	CurrentPrice decimal.Decimal  `json:"current_price"`
	BidderCount  int              `json:"bidder_count"`
	Ranked       []BidderStanding `json:"-"`
}

// ComputeStandings derives leader and displayed price from the bid log.
// Bids must be in placement order. The leader holds the highest maximum;
// equal maxima go to whoever reached that maximum first. With fewer than two
// bidders the price is the opening minimum, otherwise it is one increment
// above the runner-up's maximum, capped at the leader's maximum.
func ComputeStandings(item *Item, bids []Bid) Standings {
	byBidder := make(map[string]*BidderStanding, len(bids))
	for i := range bids {
		b := &bids[i]
		m := b.EffectiveMax()
		s, ok := byBidder[b.BidderID]
		if !ok {
			byBidder[b.BidderID] = &BidderStanding{BidderID: b.BidderID, Max: m, ReachedAt: b.CreatedAt, seq: b.Seq}
			continue
		}
		if m.GreaterThan(s.Max) {
			s.Max, s.ReachedAt, s.seq = m, b.CreatedAt, b.Seq
		}
	}

	ranked := make([]BidderStanding, 0, len(byBidder))
	for _, s := range byBidder {
		ranked = append(ranked, *s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if !a.Max.Equal(b.Max) {
			return a.Max.GreaterThan(b.Max)
		}
		if !a.ReachedAt.Equal(b.ReachedAt) {
			return a.ReachedAt.Before(b.ReachedAt)
		}
		return a.seq < b.seq
	})

	st := Standings{
		CurrentPrice: item.OpeningMinPrice,
		BidderCount:  len(ranked),
		Ranked:       ranked,
	}
	if len(ranked) == 0 {
		return st
	}
	st.Leader = ranked[0].BidderID
	st.LeaderMax = ranked[0].Max
	if len(ranked) > 1 {
		second := ranked[1].Max
		st.CurrentPrice = decimal.Min(second.Add(item.IncrementAt(second)), st.LeaderMax)
	}
	return st
}

// MinNextBid is the lowest maximum a bidder other than the leader must offer.
func (s Standings) MinNextBid(item *Item) decimal.Decimal {
	if s.BidderCount == 0 {
		return item.OpeningMinPrice
	}
	return s.CurrentPrice.Add(item.IncrementAt(s.CurrentPrice))
}

// MaxOf returns the standing maximum of bidderID, if any.
func (s Standings) MaxOf(bidderID string) (decimal.Decimal, bool) {
	for _, r := range s.Ranked {
		if r.BidderID == bidderID {
			return r.Max, true
		}
	}
	return decimal.Zero, false
}

// Standing is the read model served to catalog collaborators.
type Standing struct {
	ItemID       string          `json:"item_id"`
	Leader       string          `json:"leader,omitempty"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	BidderCount  int             `json:"bidder_count"`
	MinNextBid   decimal.Decimal `json:"min_next_bid"`
}
