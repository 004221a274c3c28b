package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type userLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type itemLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Item, error)
}

// TelegramSink sends a chat message to every addressee that has a chat id.
// phase_changed is not a user-facing event and is skipped.
type TelegramSink struct {
	bot    botSender
	users  userLookup
	items  itemLookup
	logger logger.Logger
}

func NewTelegramSink(token string, users userLookup, items itemLookup, logger logger.Logger) (*TelegramSink, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramSink{bot: nil, users: users, items: items, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSink{bot: bot, users: users, items: items, logger: logger}, nil
}

func (n *TelegramSink) Name() string { return "telegram" }

func (n *TelegramSink) Send(ctx context.Context, ev domain.Event) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("event_id", ev.ID))
		return nil
	}

	text := n.render(ctx, ev)
	if text == "" {
		return nil
	}

	var firstErr error
	for _, userID := range ev.Addressees() {
		u, err := n.users.GetByID(ctx, userID)
		if err != nil {
			n.logger.Debug("notification skipped (unknown user)", logger.String("user_id", userID))
			continue
		}
		if u.TelegramChatID == nil {
			n.logger.Debug("notification skipped (no chat_id)", logger.String("user_id", userID))
			continue
		}
		if err = ctx.Err(); err != nil {
			return err
		}

		msg := tgbotapi.NewMessage(*u.TelegramChatID, text)
		msg.ParseMode = "Markdown"

		if _, err = n.bot.Send(msg); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("send to chat %d: %w", *u.TelegramChatID, err)
		}
	}

	return firstErr
}

func (n *TelegramSink) render(ctx context.Context, ev domain.Event) string {
	title := ev.ItemID
	if ev.ItemID != "" {
		if it, err := n.items.GetByID(ctx, ev.ItemID); err == nil {
			title = it.Title
		}
	}

	switch ev.Kind {
	case domain.EventOutbid:
		return fmt.Sprintf(
			"*Вашу ставку перебили*\n\n"+"Лот: %s\n"+"Текущая цена: %s",
			title, ev.Amount.StringFixed(2),
		)
	case domain.EventWin:
		return fmt.Sprintf(
			"*Вы выиграли лот!*\n\n"+"Лот: %s\n"+"Итоговая цена: %s",
			title, ev.Amount.StringFixed(2),
		)
	case domain.EventWaitlistPromoted:
		return fmt.Sprintf(
			"*Место освободилось*\n\n"+"Лот: %s\n"+"Мест за вами: %d",
			title, ev.Quantity,
		)
	case domain.EventReofferOpened:
		return "*Открыта повторная продажа*\n\nНепроданные лоты доступны по фиксированной цене."
	default:
		return ""
	}
}
