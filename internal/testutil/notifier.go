package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/oryweaver/auction/internal/domain"
)

// Notifier records every event it is handed.
type Notifier struct {
	mu     sync.Mutex
	events []domain.Event
	signal chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{signal: make(chan struct{}, 1024)}
}

func (n *Notifier) Notify(_ context.Context, ev domain.Event) {
	n.mu.Lock()
	n.events = append(n.events, ev)
	n.mu.Unlock()
	select {
	case n.signal <- struct{}{}:
	default:
	}
}

func (n *Notifier) Events() []domain.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Event(nil), n.events...)
}

func (n *Notifier) OfKind(kind domain.EventKind) []domain.Event {
	var out []domain.Event
	for _, ev := range n.Events() {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// WaitFor blocks until an event of kind arrives or timeout passes.
func (n *Notifier) WaitFor(kind domain.EventKind, timeout time.Duration) (domain.Event, bool) {
	deadline := time.After(timeout)
	for {
		if evs := n.OfKind(kind); len(evs) > 0 {
			return evs[0], true
		}
		select {
		case <-n.signal:
		case <-deadline:
			return domain.Event{}, false
		}
	}
}
