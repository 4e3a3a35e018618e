package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramAlerter pushes operator alerts to a fixed ops channel. Used for
// conditions that need a human, like a paid booking that lost the capacity
// race and is waiting on a manual reversal.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, ops alerts disabled")
		return &TelegramAlerter{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: logger}, nil
}

func (a *TelegramAlerter) Alert(ctx context.Context, text string) {
	if a.bot == nil {
		a.logger.Debug("ops alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if a.chatID == 0 {
		a.logger.Debug("ops alert skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		a.logger.Debug("ops alert skipped (context cancelled)",
			logger.Int64("chat_id", a.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(a.chatID, "*Operator attention needed*\n\n"+text)
	msg.ParseMode = "Markdown"

	if _, err := a.bot.Send(msg); err != nil {
		a.logger.Error("failed to send ops alert",
			logger.Int64("chat_id", a.chatID),
			logger.String("error", err.Error()),
		)
	}
}
