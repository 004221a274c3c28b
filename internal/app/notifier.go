package app

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/oryweaver/auction/internal/config"
	"github.com/oryweaver/auction/internal/notification"
	"github.com/wb-go/wbf/logger"
)

// Notifier is the dispatcher plus the connections it owns.
type Notifier struct {
	*notification.Dispatcher
	nc *nats.Conn
}

// NewNotifier builds the dispatcher with the telegram sink and, when a NATS
// url is configured, the jetstream sink.
func NewNotifier(ctx context.Context, cfg *config.Config, st Stores, log logger.Logger) (*Notifier, error) {
	tg, err := notification.NewTelegramSink(cfg.Telegram.BotToken, st.Users, st.Items, log)
	if err != nil {
		return nil, err
	}
	sinks := []notification.Sink{tg}

	n := &Notifier{}
	if cfg.NATS.URL != "" {
		nc, err := nats.Connect(cfg.NATS.URL, nats.Name("auction-engine"))
		if err != nil {
			return nil, fmt.Errorf("connect nats: %w", err)
		}
		n.nc = nc

		js, err := notification.NewJetStreamSink(ctx, nc, cfg.NATS.Stream, cfg.NATS.SubjectPrefix, log)
		if err != nil {
			nc.Close()
			return nil, err
		}
		sinks = append(sinks, js)
	} else {
		log.Warn("nats url is empty, jetstream publishing disabled")
	}

	n.Dispatcher = notification.NewDispatcher(sinks, notification.Options{
		QueueSize: cfg.Notifier.QueueSize,
		Workers:   cfg.Notifier.Workers,
		Attempts:  cfg.Notifier.Attempts,
		Backoff:   cfg.Notifier.Backoff,
	}, log)

	return n, nil
}

// Close drains the NATS connection. Call it after Run has returned.
func (n *Notifier) Close() error {
	if n.nc == nil {
		return nil
	}
	return n.nc.Drain()
}
