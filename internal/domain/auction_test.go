package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schedule() Boundaries {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	return Boundaries{
		RegistrationOpen: base.Add(day),
		CatalogPublish:   base.Add(2 * day),
		BiddingOpen:      base.Add(3 * day),
		BiddingClose:     base.Add(4 * day),
		ReofferOpen:      base.Add(4 * day),
		ReofferClose:     base.Add(5 * day),
		SettlementOpen:   base.Add(6 * day),
	}
}

func TestPhase_NextWalksTheLifecycle(t *testing.T) {
	var got []Phase
	p := PhaseDraft
	for {
		got = append(got, p)
		next, ok := p.Next()
		if !ok {
			break
		}
		assert.True(t, p.Before(next))
		p = next
	}
	assert.Equal(t, Phases(), got)

	_, ok := Phase("bogus").Next()
	assert.False(t, ok)
	assert.False(t, Phase("bogus").Valid())
}

func TestBoundaries_PhaseAt(t *testing.T) {
	b := schedule()

	tests := []struct {
		at   time.Time
		want Phase
	}{
		{b.RegistrationOpen.Add(-time.Second), PhaseDraft},
		{b.RegistrationOpen, PhaseRegistration},
		{b.BiddingOpen.Add(time.Hour), PhaseBidding},
		// close and reoffer open coincide, so paused is crossed instantly
		{b.BiddingClose, PhaseReoffer},
		{b.ReofferClose, PhaseClosed},
		{b.SettlementOpen.Add(365 * 24 * time.Hour), PhaseSettlement},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.PhaseAt(tt.at), tt.at)
	}

	b.ReofferOpen = b.BiddingClose.Add(time.Hour)
	assert.Equal(t, PhasePaused, b.PhaseAt(b.BiddingClose))
}

func TestBoundaries_Validate(t *testing.T) {
	require.NoError(t, schedule().Validate())

	b := schedule()
	b.CatalogPublish = b.RegistrationOpen
	assert.ErrorIs(t, b.Validate(), ErrValidation)

	b = schedule()
	b.ReofferOpen = b.BiddingClose.Add(-time.Minute)
	assert.ErrorIs(t, b.Validate(), ErrValidation)

	b = schedule()
	b.SettlementOpen = time.Time{}
	assert.ErrorIs(t, b.Validate(), ErrValidation)
}

func TestAuction_Gates(t *testing.T) {
	b := schedule()
	a := &Auction{Boundaries: b, Phase: PhaseBidding}

	assert.True(t, a.AcceptsBids(b.BiddingOpen))
	assert.False(t, a.AcceptsBids(b.BiddingClose))
	assert.True(t, a.AcceptsSignups(b.BiddingOpen))
	assert.False(t, a.AcceptsSignups(b.BiddingClose))
	assert.False(t, a.AcceptsPurchases(b.ReofferOpen))

	a.Phase = PhaseCatalog
	assert.True(t, a.AcceptsSignups(b.BiddingClose))

	a.Phase = PhaseReoffer
	assert.True(t, a.AcceptsPurchases(b.ReofferOpen))
	assert.False(t, a.AcceptsPurchases(b.ReofferClose))
	assert.False(t, a.AcceptsSignups(b.ReofferOpen))
}
