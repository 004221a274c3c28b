package notification

import (
	"context"
	"sync"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/sethvargo/go-retry"
	"github.com/wb-go/wbf/logger"
)

// Sink delivers one event to one channel (chat bot, message bus).
type Sink interface {
	Name() string
	Send(ctx context.Context, ev domain.Event) error
}

type Options struct {
	QueueSize int
	Workers   int
	Attempts  uint64
	Backoff   time.Duration
}

// Dispatcher decouples engine operations from delivery. Notify never blocks:
// when the queue is full the event is dropped and logged.
type Dispatcher struct {
	queue  chan domain.Event
	sinks  []Sink
	opts   Options
	logger logger.Logger
	wg     sync.WaitGroup
}

func NewDispatcher(sinks []Sink, opts Options, logger logger.Logger) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 200 * time.Millisecond
	}

	return &Dispatcher{
		queue:  make(chan domain.Event, opts.QueueSize),
		sinks:  sinks,
		opts:   opts,
		logger: logger,
	}
}

func (d *Dispatcher) Notify(_ context.Context, ev domain.Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Error("notification queue full, event dropped",
			logger.String("event_id", ev.ID),
			logger.String("kind", string(ev.Kind)),
		)
	}
}

// Run starts the workers and blocks until ctx is done and every worker has
// returned. Events still queued at shutdown are delivered with a short grace
// period.
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("notification dispatcher started",
		logger.Int("workers", d.opts.Workers),
		logger.Int("sinks", len(d.sinks)),
	)

	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.work(ctx)
		}()
	}

	<-ctx.Done()
	d.wg.Wait()
	d.drain()

	d.logger.Info("notification dispatcher stopped")
}

func (d *Dispatcher) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-d.queue:
			d.deliver(ctx, ev)
		}
	}
}

func (d *Dispatcher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for {
		select {
		case ev := <-d.queue:
			d.deliver(ctx, ev)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, ev domain.Event) {
	for _, s := range d.sinks {
		b := retry.WithMaxRetries(d.opts.Attempts-1, retry.NewExponential(d.opts.Backoff))

		err := retry.Do(ctx, b, func(ctx context.Context) error {
			if err := s.Send(ctx, ev); err != nil {
				return retry.RetryableError(err)
			}
			return nil
		})
		if err != nil {
			d.logger.Error("notification delivery failed",
				logger.String("sink", s.Name()),
				logger.String("event_id", ev.ID),
				logger.String("kind", string(ev.Kind)),
				logger.String("error", err.Error()),
			)
		}
	}
}
