package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedger_CommitmentsMergesHeldSignups(t *testing.T) {
	repo := mocks.NewMockLedgerRepo(t)
	svc := NewLedgerService(repo)

	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	repo.EXPECT().CommitmentsByUser(mock.Anything, "u1").Return([]domain.Commitment{
		{ID: "c2", UserID: "u1", Quantity: 1, Amount: dec("160"), Source: domain.CommitmentSourceWin, CreatedAt: at.Add(time.Hour)},
		{ID: "c1", UserID: "u1", Quantity: 2, Amount: dec("30"), Source: domain.CommitmentSourceReoffer, CreatedAt: at.Add(time.Hour)},
	}, nil)
	repo.EXPECT().HeldSignupsByUser(mock.Anything, "u1").Return([]domain.HeldSignup{
		{
			Signup: domain.Signup{ID: "s1", ItemID: "i1", UserID: "u1", Quantity: 3, Status: domain.SignupStatusActive, CreatedAt: at},
			Price:  dec("75"),
		},
	}, nil)

	st, err := svc.Commitments(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, st.Lines, 3)
	assert.Equal(t, "s1", st.Lines[0].ID)
	assert.Equal(t, domain.CommitmentSourceFixedPrice, st.Lines[0].Source)
	assert.Equal(t, "c1", st.Lines[1].ID)
	assert.Equal(t, "c2", st.Lines[2].ID)
	decEq(t, "445", st.Total)
}

func TestLedger_SalesRepoError(t *testing.T) {
	repo := mocks.NewMockLedgerRepo(t)
	svc := NewLedgerService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().CommitmentsByDonor(mock.Anything, "d1").Return(nil, repoErr)

	_, err := svc.Sales(context.Background(), "d1")

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestLedger_TotalsAreStableAcrossReads(t *testing.T) {
	h := newHarness(t)
	a := h.auction(t)
	seats := h.fixedPrice(t, a.ID, "75", 10)
	lot := h.competitive(t, a.ID, "100", "10")

	h.moveTo(t, a.ID, domain.PhaseRegistration)
	_, err := h.capacity.Signup(context.Background(), seats.ID, "alice", 2)
	require.NoError(t, err)

	h.moveTo(t, a.ID, domain.PhaseBidding)
	_, err = h.bid(lot.ID, "alice", "100", "")
	require.NoError(t, err)

	h.moveTo(t, a.ID, domain.PhaseReoffer)
	_, err = h.reoffer.Buy(context.Background(), domain.BuyInput{ItemID: seats.ID, UserID: "alice", Quantity: 1})
	require.NoError(t, err)

	first, err := h.ledger.Commitments(context.Background(), "alice")
	require.NoError(t, err)
	second, err := h.ledger.Commitments(context.Background(), "alice")
	require.NoError(t, err)

	// 2×75 signup + 100 win + 75 reoffer
	decEq(t, "325", first.Total)
	decEq(t, "325", second.Total)
	require.Len(t, second.Lines, len(first.Lines))
	for i := range first.Lines {
		assert.Equal(t, first.Lines[i].ID, second.Lines[i].ID)
	}

	sales, err := h.ledger.Sales(context.Background(), "donor-2")
	require.NoError(t, err)
	decEq(t, "225", sales.Total)
}
