package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	subject string
	data    []byte
	opts    int
}

type fakePublisher struct {
	msgs []published
	err  error
}

func (p *fakePublisher) Publish(_ context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.msgs = append(p.msgs, published{subject: subject, data: data, opts: len(opts)})
	return &jetstream.PubAck{Stream: "AUCTION_EVENTS", Sequence: uint64(len(p.msgs))}, nil
}

func TestJetStreamSink_PublishesPerKindSubject(t *testing.T) {
	pub := &fakePublisher{}
	s := newJetStreamSink(pub, "auction.events", newTestLogger(t))

	ev := testEvent(domain.EventWin)
	require.NoError(t, s.Send(context.Background(), ev))

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "auction.events.win", pub.msgs[0].subject)
	assert.Equal(t, 1, pub.msgs[0].opts)

	var got domain.Event
	require.NoError(t, json.Unmarshal(pub.msgs[0].data, &got))
	assert.Equal(t, ev.ID, got.ID)
	assert.Equal(t, ev.Kind, got.Kind)
	assert.Equal(t, ev.ItemID, got.ItemID)
}

func TestJetStreamSink_PublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("nats: timeout")}
	s := newJetStreamSink(pub, "auction.events", newTestLogger(t))

	err := s.Send(context.Background(), testEvent(domain.EventOutbid))
	assert.ErrorContains(t, err, "publish outbid")
}

func TestJetStreamSink_Subject(t *testing.T) {
	s := newJetStreamSink(&fakePublisher{}, "wk", newTestLogger(t))
	assert.Equal(t, "wk.phase_changed", s.Subject(domain.EventPhaseChanged))
}
