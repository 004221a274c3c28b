package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/scheduler/mocks"
	"github.com/oryweaver/auction/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_AdvancesAuctions(t *testing.T) {
	ticker := mocks.NewMockLifecycleTicker(t)
	log := newTestLogger(t)

	s := New(ticker, testutil.NewClock(testutil.Base), 50*time.Millisecond, log)

	changes := []domain.PhaseChange{
		{AuctionID: "a1", From: domain.PhaseDraft, To: domain.PhaseRegistration, At: testutil.Base},
	}
	ticker.EXPECT().TickAll(mock.Anything, testutil.Base).Return(changes, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(ticker.Calls), 1)
}

func TestScheduler_Tick_PassesClockTime(t *testing.T) {
	ticker := mocks.NewMockLifecycleTicker(t)
	clock := testutil.NewClock(testutil.At(domain.PhaseBidding))

	s := New(ticker, clock, time.Hour, newTestLogger(t))

	ticker.EXPECT().TickAll(mock.Anything, testutil.At(domain.PhaseBidding)).Return(nil, nil).Once()

	s.tick(context.Background())
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	ticker := mocks.NewMockLifecycleTicker(t)
	log := newTestLogger(t)

	s := New(ticker, testutil.NewClock(testutil.Base), 50*time.Millisecond, log)

	ticker.EXPECT().TickAll(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(ticker.Calls), 1)
}

func TestScheduler_Tick_PartialFailureStillLogsChanges(t *testing.T) {
	ticker := mocks.NewMockLifecycleTicker(t)

	s := New(ticker, testutil.NewClock(testutil.Base), time.Hour, newTestLogger(t))

	changes := []domain.PhaseChange{{AuctionID: "a1", From: domain.PhaseBidding, To: domain.PhasePaused}}
	ticker.EXPECT().TickAll(mock.Anything, mock.Anything).Return(changes, domain.ErrResolutionPending).Once()

	assert.NotPanics(t, func() { s.tick(context.Background()) })
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	ticker := mocks.NewMockLifecycleTicker(t)
	log := newTestLogger(t)

	s := New(ticker, testutil.NewClock(testutil.Base), time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	ticker := mocks.NewMockLifecycleTicker(t)
	log := newTestLogger(t)

	s := New(ticker, testutil.NewClock(testutil.Base), 30*time.Millisecond, log)

	ticker.EXPECT().TickAll(mock.Anything, mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(ticker.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
