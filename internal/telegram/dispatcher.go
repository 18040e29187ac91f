package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
)

// Dispatcher implements contract.Dispatcher on top of the Telegram Bot API.
// The returned handle is the Telegram message id, which Telegram keeps
// stable across edits of the same message.
type Dispatcher struct {
	bot *bot.Bot
}

func NewDispatcher(b *bot.Bot) *Dispatcher {
	return &Dispatcher{bot: b}
}

func (d *Dispatcher) SendPrompt(ctx context.Context, chatID int64, text string) (int, error) {
	msg, err := d.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: rankKeyboard(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to send prompt: %w", err)
	}
	return msg.ID, nil
}

func (d *Dispatcher) EditPrompt(ctx context.Context, chatID int64, handle int, text string) error {
	_, err := d.bot.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   handle,
		Text:        text,
		ReplyMarkup: rankKeyboard(),
	})
	if err != nil {
		return fmt.Errorf("failed to edit prompt: %w", err)
	}
	return nil
}

func (d *Dispatcher) SendResult(ctx context.Context, chatID int64, handle int, text string) error {
	_, err := d.bot.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   handle,
		Text:        text,
		ReplyMarkup: resultKeyboard(),
	})
	if err != nil {
		return fmt.Errorf("failed to send result: %w", err)
	}
	return nil
}
