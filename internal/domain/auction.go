package domain

import (
	"fmt"
	"slices"
	"time"
)

type Phase string

const (
	PhaseDraft        Phase = "draft"
	PhaseRegistration Phase = "registration"
	PhaseCatalog      Phase = "catalog"
	PhaseBidding      Phase = "bidding"
	PhasePaused       Phase = "paused"
	PhaseReoffer      Phase = "reoffer"
	PhaseClosed       Phase = "closed"
	PhaseSettlement   Phase = "settlement"
)

// phaseOrder is the only legal progression; a phase never moves backward.
var phaseOrder = []Phase{
	PhaseDraft,
	PhaseRegistration,
	PhaseCatalog,
	PhaseBidding,
	PhasePaused,
	PhaseReoffer,
	PhaseClosed,
	PhaseSettlement,
}

// Phases returns the lifecycle in order.
func Phases() []Phase { return slices.Clone(phaseOrder) }

// Rank returns the position of p in the lifecycle, or -1 for unknown values.
func (p Phase) Rank() int {
	for i, ph := range phaseOrder {
		if ph == p {
			return i
		}
	}
	return -1
}

func (p Phase) Valid() bool { return p.Rank() >= 0 }

func (p Phase) Before(other Phase) bool { return p.Rank() < other.Rank() }

// Next returns the single successor of p. The terminal phase has none.
func (p Phase) Next() (Phase, bool) {
	r := p.Rank()
	if r < 0 || r == len(phaseOrder)-1 {
		return p, false
	}
	return phaseOrder[r+1], true
}

// Boundaries are the configured instants at which each phase begins.
type Boundaries struct {
	RegistrationOpen time.Time `json:"registration_open_at"`
	CatalogPublish   time.Time `json:"catalog_publish_at"`
	BiddingOpen      time.Time `json:"bidding_open_at"`
	BiddingClose     time.Time `json:"bidding_close_at"`
	ReofferOpen      time.Time `json:"reoffer_open_at"`
	ReofferClose     time.Time `json:"reoffer_close_at"`
	SettlementOpen   time.Time `json:"settlement_open_at"`
}

func (b Boundaries) starts() []struct {
	phase Phase
	at    time.Time
} {
	return []struct {
		phase Phase
		at    time.Time
	}{
		{PhaseRegistration, b.RegistrationOpen},
		{PhaseCatalog, b.CatalogPublish},
		{PhaseBidding, b.BiddingOpen},
		{PhasePaused, b.BiddingClose},
		{PhaseReoffer, b.ReofferOpen},
		{PhaseClosed, b.ReofferClose},
		{PhaseSettlement, b.SettlementOpen},
	}
}

// Validate checks that boundaries are set and strictly increasing, except
// bidding_close which may coincide with reoffer_open.
func (b Boundaries) Validate() error {
	starts := b.starts()
	for i, s := range starts {
		if s.at.IsZero() {
			return fmt.Errorf("%w: %s boundary is required", ErrValidation, s.phase)
		}
		if i == 0 {
			continue
		}
		prev := starts[i-1]
		if s.phase == PhaseReoffer {
			if s.at.Before(prev.at) {
				return fmt.Errorf("%w: reoffer_open must not precede bidding_close", ErrValidation)
			}
			continue
		}
		if !s.at.After(prev.at) {
			return fmt.Errorf("%w: %s boundary must be after %s", ErrValidation, s.phase, prev.phase)
		}
	}
	return nil
}

// PhaseAt returns the phase that should hold at t.
func (b Boundaries) PhaseAt(t time.Time) Phase {
	phase := PhaseDraft
	for _, s := range b.starts() {
		if t.Before(s.at) {
			break
		}
		phase = s.phase
	}
	return phase
}

type Auction struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Year       int        `json:"year"`
	Boundaries Boundaries `json:"boundaries"`
	Phase      Phase      `json:"phase"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// AcceptsBids reports whether competitive bids are legal at now.
func (a *Auction) AcceptsBids(now time.Time) bool {
	return a.Phase == PhaseBidding && now.Before(a.Boundaries.BiddingClose)
}

// AcceptsSignups reports whether fixed-price signups and cancellations are
// legal at now. They close with bidding even before the scheduler ticks.
func (a *Auction) AcceptsSignups(now time.Time) bool {
	switch a.Phase {
	case PhaseRegistration, PhaseCatalog:
		return true
	case PhaseBidding:
		return now.Before(a.Boundaries.BiddingClose)
	}
	return false
}

// AcceptsPurchases reports whether reoffer buy-now purchases are legal at now.
func (a *Auction) AcceptsPurchases(now time.Time) bool {
	return a.Phase == PhaseReoffer && now.Before(a.Boundaries.ReofferClose)
}

type PhaseChange struct {
	AuctionID string    `json:"auction_id"`
	From      Phase     `json:"from"`
	To        Phase     `json:"to"`
	At        time.Time `json:"at"`
}

type CreateAuctionInput struct {
	Title      string
	Year       int
	Boundaries Boundaries
}
