package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports/mocks"
	"github.com/oryweaver/auction/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func phasesOf(evs []domain.Event) []domain.Phase {
	out := make([]domain.Phase, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ev.Phase)
	}
	return out
}

func TestLifecycle_AdvancesEverySkippedStep(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)

	changes, err := h.lifecycle.Advance(context.Background(), a.ID, testutil.At(domain.PhaseBidding))
	require.NoError(t, err)

	require.Len(t, changes, 3)
	assert.Equal(t, domain.PhaseDraft, changes[0].From)
	assert.Equal(t, domain.PhaseBidding, changes[2].To)
	assert.Equal(t,
		[]domain.Phase{domain.PhaseRegistration, domain.PhaseCatalog, domain.PhaseBidding},
		phasesOf(h.notifier.OfKind(domain.EventPhaseChanged)),
	)
}

func TestLifecycle_NeverMovesBackward(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	h.moveTo(t, a.ID, domain.PhaseCatalog)

	changed, err := h.lifecycle.Tick(context.Background(), a.ID, testutil.At(domain.PhaseRegistration))
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := h.catalog.GetAuction(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseCatalog, got.Phase)
}

func TestLifecycle_RedundantTickIsNoop(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	h.moveTo(t, a.ID, domain.PhaseBidding)

	changed, err := h.lifecycle.Tick(context.Background(), a.ID, testutil.At(domain.PhaseBidding))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, h.notifier.OfKind(domain.EventPhaseChanged), 3)
}

func TestLifecycle_ConcurrentTicksApplyEachStepOnce(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)
	_, err := h.bid(item.ID, "alice", "100", "")
	require.NoError(t, err)

	now := testutil.At(domain.PhaseClosed)
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			changes, err := h.lifecycle.Advance(context.Background(), a.ID, now)
			assert.NoError(t, err)
			mu.Lock()
			total += len(changes)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// bidding -> paused -> reoffer -> closed
	assert.Equal(t, 3, total)
	assert.Len(t, h.notifier.OfKind(domain.EventPhaseChanged), 6)
	assert.Len(t, h.notifier.OfKind(domain.EventWin), 1)
	assert.Equal(t, 1, h.item(t, item.ID).QuantityCommitted)
}

func TestLifecycle_ResolutionFailureHoldsPaused(t *testing.T) {
	h, flaky := newFlakyHarness(t)
	a := h.auction(t)
	item := h.competitive(t, a.ID, "100", "10")
	h.moveTo(t, a.ID, domain.PhaseBidding)
	_, err := h.bid(item.ID, "alice", "100", "")
	require.NoError(t, err)

	flaky.setFailing(item.ID, true)
	changed, err := h.lifecycle.Tick(context.Background(), a.ID, testutil.At(domain.PhaseReoffer))
	assert.True(t, changed)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResolutionPending)

	got, err := h.catalog.GetAuction(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhasePaused, got.Phase)

	// a later tick retries and gets through
	flaky.setFailing(item.ID, false)
	changed, err = h.lifecycle.Tick(context.Background(), a.ID, testutil.At(domain.PhaseReoffer))
	require.NoError(t, err)
	assert.True(t, changed)

	got, err = h.catalog.GetAuction(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseReoffer, got.Phase)
	assert.Len(t, h.notifier.OfKind(domain.EventWin), 1)
}

func TestLifecycle_TickAllSkipsSettled(t *testing.T) {
	h := newHarness(t)
	first := h.auction(t)
	second := h.auction(t)

	changes, err := h.lifecycle.TickAll(context.Background(), testutil.At(domain.PhaseSettlement))
	require.NoError(t, err)
	assert.Len(t, changes, 14)

	active, err := h.catalog.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)

	for _, id := range []string{first.ID, second.ID} {
		changed, err := h.lifecycle.Tick(context.Background(), id, testutil.At(domain.PhaseSettlement).Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, changed)
	}
}

func TestLifecycle_Advance_CASLostToOtherTicker(t *testing.T) {
	auctions := mocks.NewMockAuctionRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)
	winners := NewWinnerResolver(auctions, nil, notifier, testutil.NewClock(testutil.Base), log, 1)
	reoffer := NewReofferService(auctions, nil, notifier, testutil.NewClock(testutil.Base), log)
	svc := NewLifecycleService(auctions, winners, reoffer, notifier, log)

	now := testutil.At(domain.PhaseRegistration)
	draft := &domain.Auction{ID: "a1", Phase: domain.PhaseDraft, Boundaries: testutil.Boundaries()}
	registered := &domain.Auction{ID: "a1", Phase: domain.PhaseRegistration, Boundaries: testutil.Boundaries()}

	auctions.EXPECT().GetByID(mock.Anything, "a1").Return(draft, nil).Once()
	auctions.EXPECT().CompareAndSwapPhase(mock.Anything, "a1", domain.PhaseDraft, domain.PhaseRegistration).
		Return(false, nil).Once()
	auctions.EXPECT().GetByID(mock.Anything, "a1").Return(registered, nil).Once()

	changes, err := svc.Advance(context.Background(), "a1", now)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestLifecycle_Advance_NotifiesPhaseChange(t *testing.T) {
	auctions := mocks.NewMockAuctionRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)
	winners := NewWinnerResolver(auctions, nil, notifier, testutil.NewClock(testutil.Base), log, 1)
	reoffer := NewReofferService(auctions, nil, notifier, testutil.NewClock(testutil.Base), log)
	svc := NewLifecycleService(auctions, winners, reoffer, notifier, log)

	now := testutil.At(domain.PhaseRegistration)
	draft := &domain.Auction{ID: "a1", Phase: domain.PhaseDraft, Boundaries: testutil.Boundaries()}
	registered := &domain.Auction{ID: "a1", Phase: domain.PhaseRegistration, Boundaries: testutil.Boundaries()}

	auctions.EXPECT().GetByID(mock.Anything, "a1").Return(draft, nil).Once()
	auctions.EXPECT().CompareAndSwapPhase(mock.Anything, "a1", domain.PhaseDraft, domain.PhaseRegistration).
		Return(true, nil).Once()
	auctions.EXPECT().GetByID(mock.Anything, "a1").Return(registered, nil).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
		return ev.Kind == domain.EventPhaseChanged && ev.Phase == domain.PhaseRegistration && ev.AuctionID == "a1"
	})).Once()

	changes, err := svc.Advance(context.Background(), "a1", now)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, now, changes[0].At)
}
