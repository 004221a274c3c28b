package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func testEvent(kind domain.EventKind) domain.Event {
	return domain.Event{
		ID:         "ev-1",
		Kind:       kind,
		AuctionID:  "a1",
		ItemID:     "i1",
		UserID:     "u1",
		OccurredAt: time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC),
	}
}

func TestDispatcher_Deliver_RetriesUntilSuccess(t *testing.T) {
	sink := mocks.NewMockSink(t)
	d := NewDispatcher([]Sink{sink}, Options{Attempts: 3, Backoff: time.Millisecond}, newTestLogger(t))

	ev := testEvent(domain.EventOutbid)
	sink.EXPECT().Send(mock.Anything, ev).Return(errors.New("timeout")).Times(2)
	sink.EXPECT().Send(mock.Anything, ev).Return(nil).Once()

	d.deliver(context.Background(), ev)

	sink.AssertNumberOfCalls(t, "Send", 3)
}

func TestDispatcher_Deliver_GivesUpAfterAttempts(t *testing.T) {
	sink := mocks.NewMockSink(t)
	d := NewDispatcher([]Sink{sink}, Options{Attempts: 2, Backoff: time.Millisecond}, newTestLogger(t))

	ev := testEvent(domain.EventWin)
	sink.EXPECT().Send(mock.Anything, ev).Return(errors.New("bot blocked")).Times(2)
	sink.EXPECT().Name().Return("telegram").Once()

	d.deliver(context.Background(), ev)

	sink.AssertNumberOfCalls(t, "Send", 2)
}

func TestDispatcher_Deliver_FailingSinkDoesNotBlockOthers(t *testing.T) {
	broken := mocks.NewMockSink(t)
	healthy := mocks.NewMockSink(t)
	d := NewDispatcher([]Sink{broken, healthy}, Options{Attempts: 1}, newTestLogger(t))

	ev := testEvent(domain.EventPhaseChanged)
	broken.EXPECT().Send(mock.Anything, ev).Return(errors.New("down")).Once()
	broken.EXPECT().Name().Return("jetstream").Once()
	healthy.EXPECT().Send(mock.Anything, ev).Return(nil).Once()

	d.deliver(context.Background(), ev)
}

func TestDispatcher_Notify_DropsWhenQueueFull(t *testing.T) {
	d := NewDispatcher(nil, Options{QueueSize: 1}, newTestLogger(t))

	d.Notify(context.Background(), testEvent(domain.EventOutbid))
	d.Notify(context.Background(), testEvent(domain.EventWin))

	require.Len(t, d.queue, 1)
	assert.Equal(t, domain.EventOutbid, (<-d.queue).Kind)
}

func TestDispatcher_Run_DeliversQueuedEvents(t *testing.T) {
	sink := mocks.NewMockSink(t)
	d := NewDispatcher([]Sink{sink}, Options{Workers: 2}, newTestLogger(t))

	delivered := make(chan struct{})
	ev := testEvent(domain.EventWaitlistPromoted)
	sink.EXPECT().Send(mock.Anything, ev).
		Run(func(context.Context, domain.Event) { close(delivered) }).
		Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(stopped)
	}()

	d.Notify(ctx, ev)

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop")
	}
}

func TestDispatcher_Run_DrainsOnShutdown(t *testing.T) {
	sink := mocks.NewMockSink(t)
	d := NewDispatcher([]Sink{sink}, Options{}, newTestLogger(t))

	ev := testEvent(domain.EventReofferOpened)
	d.Notify(context.Background(), ev)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// with ctx already done the event goes either to a worker, which cannot
	// send on a dead context, or to drain
	sink.EXPECT().Send(mock.Anything, ev).Return(nil).Maybe()
	sink.EXPECT().Name().Return("jetstream").Maybe()

	d.Run(ctx)

	assert.Empty(t, d.queue)
}
