package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/repository/memory"
	"github.com/oryweaver/auction/internal/service/ports"
	"github.com/oryweaver/auction/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type harness struct {
	store     *memory.Store
	items     ports.ItemRepo
	clock     *testutil.Clock
	notifier  *testutil.Notifier
	catalog   *AuctionService
	bidding   *BiddingService
	capacity  *CapacityService
	winners   *WinnerResolver
	reoffer   *ReofferService
	lifecycle *LifecycleService
	ledger    *LedgerService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWithItems(t, nil)
}

// newHarnessWithItems lets a test wrap the item repository, e.g. to inject
// storage failures.
func newHarnessWithItems(t *testing.T, wrap func(ports.ItemRepo) ports.ItemRepo) *harness {
	t.Helper()
	log := newTestLogger(t)
	store := memory.New()
	var items ports.ItemRepo = store.Items()
	if wrap != nil {
		items = wrap(items)
	}

	h := &harness{
		store:    store,
		items:    items,
		clock:    testutil.NewClock(testutil.Base),
		notifier: testutil.NewNotifier(),
	}
	auctions := store.Auctions()
	h.catalog = NewAuctionService(auctions, items, store.Users(), h.clock, log)
	h.bidding = NewBiddingService(items, h.notifier, h.clock, log)
	h.capacity = NewCapacityService(items, h.notifier, h.clock, log)
	h.winners = NewWinnerResolver(auctions, items, h.notifier, h.clock, log, 2)
	h.reoffer = NewReofferService(auctions, items, h.notifier, h.clock, log)
	h.lifecycle = NewLifecycleService(auctions, h.winners, h.reoffer, h.notifier, log)
	h.ledger = NewLedgerService(store.Ledger())
	return h
}

func (h *harness) auction(t *testing.T) *domain.Auction {
	t.Helper()
	return h.auctionWith(t, testutil.Boundaries())
}

func (h *harness) auctionWith(t *testing.T, b domain.Boundaries) *domain.Auction {
	t.Helper()
	a, err := h.catalog.CreateAuction(context.Background(), domain.CreateAuctionInput{
		Title:      "Spring Gala",
		Year:       2026,
		Boundaries: b,
	})
	require.NoError(t, err)
	return a
}

// pausedBoundaries leaves a twelve hour gap between bidding close and
// reoffer open.
func pausedBoundaries() domain.Boundaries {
	b := testutil.Boundaries()
	b.ReofferOpen = b.BiddingClose.Add(12 * time.Hour)
	return b
}

// flakyItems fails every transaction on the items marked as failing.
type flakyItems struct {
	ports.ItemRepo
	mu      sync.Mutex
	failing map[string]bool
}

func (f *flakyItems) Atomic(ctx context.Context, itemID string, fn func(tx ports.ItemTx) error) error {
	f.mu.Lock()
	fail := f.failing[itemID]
	f.mu.Unlock()
	if fail {
		return fmt.Errorf("%w: connection reset", domain.ErrStorageUnavailable)
	}
	return f.ItemRepo.Atomic(ctx, itemID, fn)
}

func (f *flakyItems) setFailing(itemID string, on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing == nil {
		f.failing = map[string]bool{}
	}
	f.failing[itemID] = on
}

func newFlakyHarness(t *testing.T) (*harness, *flakyItems) {
	t.Helper()
	flaky := &flakyItems{}
	h := newHarnessWithItems(t, func(items ports.ItemRepo) ports.ItemRepo {
		flaky.ItemRepo = items
		return flaky
	})
	return h, flaky
}

// moveTo ticks the auction to the phase and pins the clock inside it.
func (h *harness) moveTo(t *testing.T, auctionID string, phase domain.Phase) {
	t.Helper()
	h.clock.Set(testutil.At(phase))
	_, err := h.lifecycle.Tick(context.Background(), auctionID, h.clock.Now())
	require.NoError(t, err)
	a, err := h.catalog.GetAuction(context.Background(), auctionID)
	require.NoError(t, err)
	require.Equal(t, phase, a.Phase)
}

func (h *harness) competitive(t *testing.T, auctionID string, opening, increment string) *domain.Item {
	t.Helper()
	in := domain.CreateItemInput{
		AuctionID:       auctionID,
		DonorID:         "donor-1",
		Title:           "Weekend at the lake house",
		Kind:            domain.ItemKindCompetitive,
		OpeningMinPrice: dec(opening),
		QuantityTotal:   1,
		Publish:         true,
	}
	if increment != "" {
		inc := dec(increment)
		in.Increment = &inc
	}
	item, err := h.catalog.CreateItem(context.Background(), in)
	require.NoError(t, err)
	return item
}

func (h *harness) fixedPrice(t *testing.T, auctionID string, price string, seats int) *domain.Item {
	t.Helper()
	item, err := h.catalog.CreateItem(context.Background(), domain.CreateItemInput{
		AuctionID:       auctionID,
		DonorID:         "donor-2",
		Title:           "Cooking class",
		Kind:            domain.ItemKindFixedPriceEvent,
		OpeningMinPrice: dec(price),
		QuantityTotal:   seats,
		Publish:         true,
	})
	require.NoError(t, err)
	return item
}

func (h *harness) item(t *testing.T, id string) *domain.Item {
	t.Helper()
	it, err := h.items.GetByID(context.Background(), id)
	require.NoError(t, err)
	return it
}

func (h *harness) bid(itemID, bidder, amount, ceiling string) (*domain.BidResult, error) {
	in := domain.PlaceBidInput{ItemID: itemID, BidderID: bidder, Amount: dec(amount)}
	if ceiling != "" {
		m := dec(ceiling)
		in.MaxProxyAmount = &m
	}
	return h.bidding.PlaceBid(context.Background(), in)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

