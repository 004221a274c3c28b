package notification

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if b.err != nil {
		return tgbotapi.Message{}, b.err
	}
	b.sent = append(b.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

type fakeUsers map[string]*domain.User

func (f fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

type fakeItems map[string]*domain.Item

func (f fakeItems) GetByID(_ context.Context, id string) (*domain.Item, error) {
	if it, ok := f[id]; ok {
		return it, nil
	}
	return nil, domain.ErrItemNotFound
}

func chat(id int64) *int64 { return &id }

func newTelegramSink(t *testing.T, bot *fakeBot) *TelegramSink {
	t.Helper()
	users := fakeUsers{
		"u1": {ID: "u1", Username: "alice", TelegramChatID: chat(101)},
		"u2": {ID: "u2", Username: "bob"},
		"u3": {ID: "u3", Username: "carol", TelegramChatID: chat(303)},
	}
	items := fakeItems{"i1": {ID: "i1", Title: "Quilt"}}
	return &TelegramSink{bot: bot, users: users, items: items, logger: newTestLogger(t)}
}

func TestTelegramSink_Outbid(t *testing.T) {
	bot := &fakeBot{}
	s := newTelegramSink(t, bot)

	ev := testEvent(domain.EventOutbid)
	ev.Amount = decimal.NewFromInt(120)

	require.NoError(t, s.Send(context.Background(), ev))

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(101), bot.sent[0].ChatID)
	assert.Contains(t, bot.sent[0].Text, "Quilt")
	assert.Contains(t, bot.sent[0].Text, "120.00")
	assert.Equal(t, "Markdown", bot.sent[0].ParseMode)
}

func TestTelegramSink_BroadcastSkipsUsersWithoutChat(t *testing.T) {
	bot := &fakeBot{}
	s := newTelegramSink(t, bot)

	ev := testEvent(domain.EventReofferOpened)
	ev.UserID = ""
	ev.Recipients = []string{"u1", "u2", "u3", "ghost"}

	require.NoError(t, s.Send(context.Background(), ev))

	require.Len(t, bot.sent, 2)
	assert.Equal(t, int64(101), bot.sent[0].ChatID)
	assert.Equal(t, int64(303), bot.sent[1].ChatID)
}

func TestTelegramSink_PhaseChangedIsSilent(t *testing.T) {
	bot := &fakeBot{}
	s := newTelegramSink(t, bot)

	require.NoError(t, s.Send(context.Background(), testEvent(domain.EventPhaseChanged)))
	assert.Empty(t, bot.sent)
}

func TestTelegramSink_UnknownItemFallsBackToID(t *testing.T) {
	bot := &fakeBot{}
	s := newTelegramSink(t, bot)

	ev := testEvent(domain.EventWaitlistPromoted)
	ev.ItemID = "i-missing"
	ev.Quantity = 2

	require.NoError(t, s.Send(context.Background(), ev))
	require.Len(t, bot.sent, 1)
	assert.Contains(t, bot.sent[0].Text, "i-missing")
}

func TestTelegramSink_SendErrorIsReturned(t *testing.T) {
	bot := &fakeBot{err: errors.New("forbidden: bot was blocked by the user")}
	s := newTelegramSink(t, bot)

	err := s.Send(context.Background(), testEvent(domain.EventWin))
	assert.ErrorContains(t, err, "blocked")
}

func TestTelegramSink_DisabledBot(t *testing.T) {
	s, err := NewTelegramSink("", fakeUsers{}, fakeItems{}, newTestLogger(t))
	require.NoError(t, err)

	assert.NoError(t, s.Send(context.Background(), testEvent(domain.EventWin)))
}
