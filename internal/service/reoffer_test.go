package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports"
	"github.com/oryweaver/auction/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestReoffer_ListingUsesRemainingAndOpeningPrice(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	seats := h.fixedPrice(t, a.ID, "75", 10)
	lot := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseRegistration)
	signupAll(t, h, seats.ID, 2, 1)

	h.moveTo(t, a.ID, domain.PhaseReoffer)

	listings, err := h.reoffer.Listings(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	byItem := map[string]*domain.ReofferListing{}
	for _, l := range listings {
		byItem[l.ItemID] = l
	}
	assert.Equal(t, 7, byItem[seats.ID].QuantityOffered)
	decEq(t, "75", byItem[seats.ID].Price)
	// unsold lot flows into reoffer at full quantity
	assert.Equal(t, 1, byItem[lot.ID].QuantityRemaining)
	decEq(t, "100", byItem[lot.ID].Price)
}

func TestReoffer_NonParticipatingNeverListed(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.fixedPrice(t, a.ID, "75", 10)

	_, err := h.catalog.UpdateReofferSettings(context.Background(), domain.ReofferSettings{
		ItemID:      item.ID,
		Participate: false,
	})
	require.NoError(t, err)
	h.moveTo(t, a.ID, domain.PhaseReoffer)

	listings, err := h.reoffer.Listings(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Empty(t, listings)

	_, err = h.reoffer.Buy(context.Background(), domain.BuyInput{ItemID: item.ID, UserID: "alice", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotOffered)
}

func TestReoffer_DonorPriceAndOverride(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	below := h.fixedPrice(t, a.ID, "75", 10)
	allowed := h.fixedPrice(t, a.ID, "75", 10)

	low := dec("40")
	_, err := h.catalog.UpdateReofferSettings(context.Background(), domain.ReofferSettings{
		ItemID: below.ID, Participate: true, Price: &low, QuantityOverride: intPtr(4),
	})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = h.catalog.UpdateReofferSettings(context.Background(), domain.ReofferSettings{
		ItemID: below.ID, Participate: true, QuantityOverride: intPtr(4),
	})
	require.NoError(t, err)
	_, err = h.catalog.UpdateReofferSettings(context.Background(), domain.ReofferSettings{
		ItemID: allowed.ID, Participate: true, Price: &low, AllowBelowMin: true, QuantityOverride: intPtr(12),
	})
	require.Error(t, err)
	_, err = h.catalog.UpdateReofferSettings(context.Background(), domain.ReofferSettings{
		ItemID: allowed.ID, Participate: true, Price: &low, AllowBelowMin: true,
	})
	require.NoError(t, err)

	h.moveTo(t, a.ID, domain.PhaseReoffer)

	listings, err := h.reoffer.Listings(context.Background(), a.ID)
	require.NoError(t, err)
	byItem := map[string]*domain.ReofferListing{}
	for _, l := range listings {
		byItem[l.ItemID] = l
	}
	decEq(t, "75", byItem[below.ID].Price)
	assert.Equal(t, 4, byItem[below.ID].QuantityOffered)
	decEq(t, "40", byItem[allowed.ID].Price)
	assert.Equal(t, 10, byItem[allowed.ID].QuantityOffered)

	_, err = h.catalog.UpdateReofferSettings(context.Background(), domain.ReofferSettings{ItemID: below.ID})
	assert.ErrorIs(t, err, domain.ErrPhaseViolation)
}

func TestReoffer_SettingsRejectSubCentPrice(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.fixedPrice(t, a.ID, "75", 10)

	p := dec("80.005")
	_, err := h.catalog.UpdateReofferSettings(context.Background(), domain.ReofferSettings{
		ItemID: item.ID, Participate: true, Price: &p,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	p = dec("80.50")
	got, err := h.catalog.UpdateReofferSettings(context.Background(), domain.ReofferSettings{
		ItemID: item.ID, Participate: true, Price: &p,
	})
	require.NoError(t, err)
	decEq(t, "80.5", *got.Price)
}

func TestReoffer_SettingsFrozenOncePartiallyOpened(t *testing.T) {
	h, flaky := newFlakyHarness(t)
	a := h.auction(t)
	stuck := h.fixedPrice(t, a.ID, "75", 10)
	listed := h.fixedPrice(t, a.ID, "60", 5)
	h.moveTo(t, a.ID, domain.PhaseBidding)

	flaky.setFailing(stuck.ID, true)
	_, err := h.lifecycle.Tick(context.Background(), a.ID, testutil.At(domain.PhaseReoffer))
	require.ErrorIs(t, err, domain.ErrResolutionPending)
	got, err := h.catalog.GetAuction(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PhasePaused, got.Phase)

	// listed already has its listing while the auction is held in paused
	_, err = h.catalog.UpdateReofferSettings(context.Background(), domain.ReofferSettings{
		ItemID: listed.ID, Participate: false,
	})
	assert.ErrorIs(t, err, domain.ErrPhaseViolation)

	flaky.setFailing(stuck.ID, false)
	h.clock.Set(testutil.At(domain.PhaseReoffer))
	_, err = h.lifecycle.Tick(context.Background(), a.ID, h.clock.Now())
	require.NoError(t, err)

	listings, err := h.reoffer.Listings(context.Background(), a.ID)
	require.NoError(t, err)
	byItem := map[string]*domain.ReofferListing{}
	for _, l := range listings {
		byItem[l.ItemID] = l
	}
	require.Contains(t, byItem, listed.ID)
	assert.Equal(t, 5, byItem[listed.ID].QuantityOffered)
	decEq(t, "60", byItem[listed.ID].Price)
	assert.Contains(t, byItem, stuck.ID)

	err = h.items.Atomic(context.Background(), listed.ID, func(tx ports.ItemTx) error {
		settings, err := tx.ReofferSettings(context.Background())
		if err != nil {
			return err
		}
		assert.True(t, settings.Participate)
		return nil
	})
	require.NoError(t, err)
}

func TestReoffer_ConcurrentBuyersNeverOversell(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.fixedPrice(t, a.ID, "30", 5)
	h.moveTo(t, a.ID, domain.PhaseReoffer)

	const buyers = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		sold    int
		soldOut int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.reoffer.Buy(context.Background(), domain.BuyInput{
				ItemID:   item.ID,
				UserID:   fmt.Sprintf("buyer-%d", i),
				Quantity: 1 + i%2,
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				sold += 1 + i%2
				return
			}
			assert.ErrorIs(t, err, domain.ErrSoldOut)
			soldOut++
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, sold, 5)
	assert.GreaterOrEqual(t, sold, 4)
	assert.Equal(t, sold, h.item(t, item.ID).QuantityCommitted)
	assert.Positive(t, soldOut)
}

func TestReoffer_ExactQuantitySoldWhenDemandExceedsSupply(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.fixedPrice(t, a.ID, "30", 5)
	h.moveTo(t, a.ID, domain.PhaseReoffer)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		sold int
	)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.reoffer.Buy(context.Background(), domain.BuyInput{
				ItemID: item.ID, UserID: fmt.Sprintf("buyer-%d", i), Quantity: 1,
			})
			if err == nil {
				mu.Lock()
				sold++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, sold)
	listings, err := h.reoffer.Listings(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestReoffer_BuyReplaysIdempotencyKey(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.fixedPrice(t, a.ID, "30", 5)
	h.moveTo(t, a.ID, domain.PhaseReoffer)

	in := domain.BuyInput{ItemID: item.ID, UserID: "alice", Quantity: 2, IdempotencyKey: "cart-1"}
	first, err := h.reoffer.Buy(context.Background(), in)
	require.NoError(t, err)
	second, err := h.reoffer.Buy(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.CommitmentID, second.CommitmentID)
	assert.True(t, second.Replayed)
	assert.Equal(t, 3, second.QuantityRemaining)
	assert.Equal(t, 2, h.item(t, item.ID).QuantityCommitted)

	// replay still answers after reoffer closes
	h.clock.Set(testutil.Boundaries().ReofferClose)
	third, err := h.reoffer.Buy(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, first.CommitmentID, third.CommitmentID)
}

func TestReoffer_ClosedAtBoundary(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.fixedPrice(t, a.ID, "30", 5)
	h.moveTo(t, a.ID, domain.PhaseReoffer)

	h.clock.Set(testutil.Boundaries().ReofferClose)
	_, err := h.reoffer.Buy(context.Background(), domain.BuyInput{ItemID: item.ID, UserID: "alice", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrPhaseViolation)

	listings, err := h.reoffer.Listings(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestReoffer_ListingsBeforeOpen(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	h.moveTo(t, a.ID, domain.PhaseBidding)

	_, err := h.reoffer.Listings(context.Background(), a.ID)
	assert.ErrorIs(t, err, domain.ErrPhaseViolation)
}

func TestReoffer_BroadcastsToRegisteredBidders(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	users := NewUserService(h.store.Users())
	alice, err := users.Create(context.Background(), domain.CreateUserInput{Username: "alice"})
	require.NoError(t, err)
	bob, err := users.Create(context.Background(), domain.CreateUserInput{Username: "bob"})
	require.NoError(t, err)

	h.moveTo(t, a.ID, domain.PhaseRegistration)
	require.NoError(t, h.catalog.RegisterBidder(context.Background(), a.ID, alice.ID))
	require.NoError(t, h.catalog.RegisterBidder(context.Background(), a.ID, bob.ID))
	require.NoError(t, h.catalog.RegisterBidder(context.Background(), a.ID, bob.ID))

	h.moveTo(t, a.ID, domain.PhaseReoffer)

	ev, ok := h.notifier.WaitFor(domain.EventReofferOpened, time.Second)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{alice.ID, bob.ID}, ev.Recipients)
}
