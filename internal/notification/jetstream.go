package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type publisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// JetStreamSink publishes every engine event to <prefix>.<kind>. The event
// id doubles as the JetStream message id, so redelivery after a retry is
// deduplicated by the server.
type JetStreamSink struct {
	js      publisher
	prefix  string
	timeout time.Duration
	logger  logger.Logger
}

func NewJetStreamSink(ctx context.Context, nc *nats.Conn, stream, prefix string, log logger.Logger) (*JetStreamSink, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        stream,
		Description: "Auction engine notifications",
		Subjects:    []string{prefix + ".>"},
		Storage:     jetstream.FileStorage,
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      7 * 24 * time.Hour,
		Duplicates:  10 * time.Minute,
		Replicas:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("create/update stream %s: %w", stream, err)
	}

	log.Info("jetstream stream ready",
		logger.String("stream", stream),
		logger.String("subjects", prefix+".>"),
	)

	return newJetStreamSink(js, prefix, log), nil
}

func newJetStreamSink(js publisher, prefix string, logger logger.Logger) *JetStreamSink {
	return &JetStreamSink{
		js:      js,
		prefix:  prefix,
		timeout: 5 * time.Second,
		logger:  logger,
	}
}

func (s *JetStreamSink) Name() string { return "jetstream" }

func (s *JetStreamSink) Subject(kind domain.EventKind) string {
	return s.prefix + "." + string(kind)
}

func (s *JetStreamSink) Send(ctx context.Context, ev domain.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ack, err := s.js.Publish(ctx, s.Subject(ev.Kind), data, jetstream.WithMsgID(ev.ID))
	if err != nil {
		return fmt.Errorf("publish %s: %w", ev.Kind, err)
	}

	s.logger.Debug("event published",
		logger.String("subject", s.Subject(ev.Kind)),
		logger.Int64("seq", int64(ack.Sequence)),
		logger.String("duplicate", fmt.Sprint(ack.Duplicate)),
	)
	return nil
}
