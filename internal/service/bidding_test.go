package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBidding_ProxyPriceSettlesAboveRunnerUp(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	res, err := h.bid(item.ID, "bob", "100", "150")
	require.NoError(t, err)
	assert.True(t, res.Leading)
	decEq(t, "100", res.CurrentPrice)

	res, err = h.bid(item.ID, "alice", "110", "200")
	require.NoError(t, err)
	assert.True(t, res.Leading)
	decEq(t, "160", res.CurrentPrice)

	st, err := h.bidding.Standing(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", st.Leader)
	assert.Equal(t, 2, st.BidderCount)
	decEq(t, "170", st.MinNextBid)

	outbid := h.notifier.OfKind(domain.EventOutbid)
	require.Len(t, outbid, 1)
	assert.Equal(t, "bob", outbid[0].UserID)
	decEq(t, "160", outbid[0].Amount)
}

func TestBidding_PriceCappedAtLeaderMax(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	_, err := h.bid(item.ID, "bob", "100", "195")
	require.NoError(t, err)
	res, err := h.bid(item.ID, "alice", "110", "200")
	require.NoError(t, err)

	assert.True(t, res.Leading)
	decEq(t, "200", res.CurrentPrice)
}

func TestBidding_TieGoesToEarlierBidder(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	_, err := h.bid(item.ID, "alice", "100", "200")
	require.NoError(t, err)
	res, err := h.bid(item.ID, "bob", "110", "200")
	require.NoError(t, err)

	assert.False(t, res.Leading)
	decEq(t, "200", res.CurrentPrice)
	assert.Empty(t, h.notifier.OfKind(domain.EventOutbid))
}

func TestBidding_RejectsInvalidAmounts(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	tests := []struct {
		name   string
		amount string
		max    string
	}{
		{name: "below opening", amount: "90"},
		{name: "not aligned to increment", amount: "105"},
		{name: "max below amount", amount: "120", max: "110"},
		{name: "zero", amount: "0"},
		{name: "sub-cent amount", amount: "110.004"},
		{name: "sub-cent max", amount: "100", max: "150.005"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.bid(item.ID, "alice", tt.amount, tt.max)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBidding_TrailingZeroDecimalsAccepted(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	_, err := h.bid(item.ID, "alice", "100.000", "150.00")
	require.NoError(t, err)

	_, err = h.bid(item.ID, "bob", "160.001", "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	st, err := h.bidding.Standing(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", st.Leader)
	assert.Equal(t, 1, st.BidderCount)
	decEq(t, "100", st.CurrentPrice)
}

func TestBidding_MustBeatCurrentPrice(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	_, err := h.bid(item.ID, "alice", "100", "150")
	require.NoError(t, err)
	_, err = h.bid(item.ID, "bob", "130", "")
	require.NoError(t, err)

	// price is now 140, next legal maximum is 150
	_, err = h.bid(item.ID, "carol", "140", "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestBidding_LeaderMayOnlyRaiseOwnMax(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	_, err := h.bid(item.ID, "alice", "100", "150")
	require.NoError(t, err)
	_, err = h.bid(item.ID, "bob", "110", "")
	require.NoError(t, err)

	res, err := h.bid(item.ID, "alice", "100", "180")
	require.NoError(t, err)
	assert.True(t, res.Leading)
	decEq(t, "120", res.CurrentPrice)

	_, err = h.bid(item.ID, "alice", "100", "170")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestBidding_IdempotentReplay(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	in := domain.PlaceBidInput{ItemID: item.ID, BidderID: "alice", Amount: dec("100"), IdempotencyKey: "k1"}
	first, err := h.bidding.PlaceBid(context.Background(), in)
	require.NoError(t, err)
	second, err := h.bidding.PlaceBid(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.BidID, second.BidID)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Leading, second.Leading)
	decEq(t, first.CurrentPrice.String(), second.CurrentPrice)

	st, err := h.bidding.Standing(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, st.BidderCount)
}

func TestBidding_PhaseAndKindGating(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	fixed := h.fixedPrice(t, a.ID, "50", 10)

	h.moveTo(t, a.ID, domain.PhaseCatalog)
	_, err := h.bid(item.ID, "alice", "100", "")
	assert.ErrorIs(t, err, domain.ErrPhaseViolation)

	h.moveTo(t, a.ID, domain.PhaseBidding)
	_, err = h.bid(fixed.ID, "alice", "100", "")
	assert.ErrorIs(t, err, domain.ErrWrongItemKind)

	// close has passed but nobody ticked yet
	h.clock.Set(testutil.Boundaries().BiddingClose)
	_, err = h.bid(item.ID, "alice", "100", "")
	assert.ErrorIs(t, err, domain.ErrPhaseViolation)
}

func TestBidding_FrozenItemRejectsWrites(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	require.NoError(t, h.items.Freeze(context.Background(), item.ID, "manual check"))

	_, err := h.bid(item.ID, "alice", "100", "")
	assert.ErrorIs(t, err, domain.ErrItemFrozen)
}

func TestBidding_StandardIncrementWhenUnset(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "40", "")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	_, err := h.bid(item.ID, "alice", "40", "90")
	require.NoError(t, err)
	res, err := h.bid(item.ID, "bob", "60", "")
	require.NoError(t, err)

	// runner-up at 60 steps by 5 in the 25..100 tier
	decEq(t, "65", res.CurrentPrice)
}

func TestBidding_PriceIsMonotonic(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	rnd := rand.New(rand.NewSource(42))
	last := dec("0")
	for i := 0; i < 200; i++ {
		bidder := fmt.Sprintf("bidder-%d", rnd.Intn(6))
		amount := 100 + 10*rnd.Intn(40)
		ceiling := ""
		if rnd.Intn(2) == 0 {
			ceiling = fmt.Sprint(amount + 10*rnd.Intn(20))
		}
		_, err := h.bid(item.ID, bidder, fmt.Sprint(amount), ceiling)
		if err != nil {
			require.ErrorIs(t, err, domain.ErrInvalidAmount)
		}

		st, err := h.bidding.Standing(context.Background(), item.ID)
		require.NoError(t, err)
		require.Falsef(t, st.CurrentPrice.LessThan(last), "price fell from %s to %s", last, st.CurrentPrice)
		last = st.CurrentPrice
	}
}

func TestBidding_ConcurrentBidsKeepOneLeader(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)

	const bidders = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted = map[string]int{}
	)
	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ceiling := 200 + 10*i
			_, err := h.bid(item.ID, fmt.Sprintf("b%02d", i), "100", fmt.Sprint(ceiling))
			if err == nil {
				mu.Lock()
				accepted[fmt.Sprintf("b%02d", i)] = ceiling
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	best, bestMax := "", 0
	for b, m := range accepted {
		if m > bestMax {
			best, bestMax = b, m
		}
	}
	st, err := h.bidding.Standing(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, best, st.Leader)
	assert.Equal(t, len(accepted), st.BidderCount)
}
