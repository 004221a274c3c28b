package service

import (
	"context"
	"testing"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports/mocks"
	"github.com/oryweaver/auction/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuctionService_CreateAuction_Validation(t *testing.T) {
	h := newHarness(t)

	b := testutil.Boundaries()
	b.BiddingClose = b.BiddingOpen.Add(-time.Hour)

	tests := []struct {
		name  string
		input domain.CreateAuctionInput
	}{
		{name: "empty title", input: domain.CreateAuctionInput{Year: 2026, Boundaries: testutil.Boundaries()}},
		{name: "no year", input: domain.CreateAuctionInput{Title: "Gala", Boundaries: testutil.Boundaries()}},
		{name: "unordered boundaries", input: domain.CreateAuctionInput{Title: "Gala", Year: 2026, Boundaries: b}},
		{name: "missing boundaries", input: domain.CreateAuctionInput{Title: "Gala", Year: 2026}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.catalog.CreateAuction(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAuctionService_CreateItem_Validation(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	inc := dec("10")
	subCent := dec("0.005")

	tests := []struct {
		name  string
		input domain.CreateItemInput
	}{
		{name: "unknown kind", input: domain.CreateItemInput{Kind: "raffle", QuantityTotal: 1, OpeningMinPrice: dec("10")}},
		{name: "competitive with quantity", input: domain.CreateItemInput{Kind: domain.ItemKindCompetitive, QuantityTotal: 3, OpeningMinPrice: dec("10")}},
		{name: "fixed price with increment", input: domain.CreateItemInput{Kind: domain.ItemKindService, QuantityTotal: 3, OpeningMinPrice: dec("10"), Increment: &inc}},
		{name: "zero price", input: domain.CreateItemInput{Kind: domain.ItemKindService, QuantityTotal: 3}},
		{name: "zero quantity", input: domain.CreateItemInput{Kind: domain.ItemKindService, OpeningMinPrice: dec("10")}},
		{name: "sub-cent price", input: domain.CreateItemInput{Kind: domain.ItemKindService, QuantityTotal: 3, OpeningMinPrice: dec("10.001")}},
		{name: "sub-cent increment", input: domain.CreateItemInput{Kind: domain.ItemKindCompetitive, QuantityTotal: 1, OpeningMinPrice: dec("10"), Increment: &subCent}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input
			in.AuctionID, in.DonorID, in.Title = a.ID, "donor-1", "Thing"
			_, err := h.catalog.CreateItem(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAuctionService_CreateItem_AfterBiddingCloses(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	h.moveTo(t, a.ID, domain.PhaseReoffer)

	_, err := h.catalog.CreateItem(context.Background(), domain.CreateItemInput{
		AuctionID: a.ID, DonorID: "d", Title: "Late", Kind: domain.ItemKindService,
		OpeningMinPrice: dec("10"), QuantityTotal: 1,
	})
	assert.ErrorIs(t, err, domain.ErrPhaseViolation)
}

func TestAuctionService_PublishDraftItem(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item, err := h.catalog.CreateItem(context.Background(), domain.CreateItemInput{
		AuctionID: a.ID, DonorID: "d", Title: "Quilt", Kind: domain.ItemKindCompetitive,
		OpeningMinPrice: dec("50"), QuantityTotal: 1,
	})
	require.NoError(t, err)
	require.Equal(t, domain.ItemStatusDraft, item.Status)

	h.moveTo(t, a.ID, domain.PhaseBidding)
	_, err = h.bid(item.ID, "alice", "50", "")
	assert.ErrorIs(t, err, domain.ErrItemNotPublished)

	published, err := h.catalog.PublishItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusPublished, published.Status)

	_, err = h.bid(item.ID, "alice", "50", "")
	require.NoError(t, err)

	_, err = h.catalog.ArchiveItem(context.Background(), item.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuctionService_UnfreezeItem(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	item := h.fixedPrice(t, a.ID, "10", 2)
	require.NoError(t, h.items.Freeze(context.Background(), item.ID, "committed drift"))

	got, err := h.catalog.UnfreezeItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.False(t, got.Frozen)
	assert.False(t, h.item(t, item.ID).Frozen)
}

func TestAuctionService_RegisterBidder_UnknownUser(t *testing.T) {
	auctions := mocks.NewMockAuctionRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewAuctionService(auctions, nil, users, testutil.NewClock(testutil.Base), newTestLogger(t))

	users.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	err := svc.RegisterBidder(context.Background(), "a1", "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuctionService_RegisterBidder_DraftAuction(t *testing.T) {
	auctions := mocks.NewMockAuctionRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewAuctionService(auctions, nil, users, testutil.NewClock(testutil.Base), newTestLogger(t))

	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	auctions.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.Auction{ID: "a1", Phase: domain.PhaseDraft}, nil)

	err := svc.RegisterBidder(context.Background(), "a1", "u1")

	assert.ErrorIs(t, err, domain.ErrPhaseViolation)
}
