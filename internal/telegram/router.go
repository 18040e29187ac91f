package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/picolepixel/rank-day-bot/internal/domain"
	"github.com/picolepixel/rank-day-bot/internal/domain/service"
	"go.uber.org/zap"
)

// Router wires incoming Telegram updates to the registry and interaction
// services. Every callback query is answered, including unknown ones, so
// the client never shows a stuck spinner.
type Router struct {
	services *service.Instance
	log      *zap.Logger
}

func NewRouter(services *service.Instance, log *zap.Logger) *Router {
	return &Router{
		services: services,
		log:      log,
	}
}

// HandleUpdate is the default handler registered with the bot; the library
// invokes it concurrently, one goroutine per update.
func (r *Router) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery != nil {
		r.handleCallback(ctx, b, update.CallbackQuery)
		return
	}

	if update.Message != nil && update.Message.Text != "" {
		r.handleMessage(ctx, b, update.Message)
	}
}

func (r *Router) handleCallback(ctx context.Context, b *bot.Bot, cb *models.CallbackQuery) {
	msg := cb.Message.Message
	if msg == nil {
		r.answerCallback(ctx, b, cb.ID)
		return
	}

	chatID := msg.Chat.ID
	handle := msg.ID

	switch cb.Data {
	case domain.CallbackEdit:
		r.services.Interaction.HandleEdit(ctx, chatID, handle)
	case domain.CallbackAddComment:
		r.services.Interaction.HandleAddComment(ctx, chatID, handle)
	default:
		r.services.Interaction.HandleRank(ctx, chatID, handle, cb.Data)
	}

	r.answerCallback(ctx, b, cb.ID)
}

func (r *Router) answerCallback(ctx context.Context, b *bot.Bot, id string) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: id,
	})
	if err != nil {
		r.log.Warn("failed to answer callback query", zap.Error(err))
	}
}

func (r *Router) handleMessage(ctx context.Context, b *bot.Bot, msg *models.Message) {
	cmd, err := ParseCommand(msg.Text)
	if err != nil {
		r.reply(ctx, b, msg.Chat.ID, "Unknown command.\n\n"+GetHelpText())
		return
	}
	if cmd == nil {
		return
	}

	switch cmd.Type {
	case CmdStart:
		r.handleStart(ctx, b, msg)
	case CmdHour:
		r.handleHour(ctx, b, msg, cmd)
	case CmdHelp:
		r.reply(ctx, b, msg.Chat.ID, GetHelpText())
	}
}

func (r *Router) handleStart(ctx context.Context, b *bot.Bot, msg *models.Message) {
	username := ""
	if msg.From != nil {
		username = msg.From.Username
		if username == "" {
			username = msg.From.FirstName
		}
	}

	existed, err := r.services.Registry.Register(msg.Chat.ID, username)
	if err != nil {
		r.log.Error("failed to register user",
			zap.Int64("chatID", msg.Chat.ID), zap.Error(err))
		r.reply(ctx, b, msg.Chat.ID, "Registration failed, please try again later.")
		return
	}

	if existed {
		r.reply(ctx, b, msg.Chat.ID, "Welcome back! Your daily prompt is still on.")
		return
	}
	r.reply(ctx, b, msg.Chat.ID, fmt.Sprintf(
		"Registered! I will ask you to rate your day every day at %d:00. Change it with /hour.",
		domain.DefaultHour))
}

func (r *Router) handleHour(ctx context.Context, b *bot.Bot, msg *models.Message, cmd *Command) {
	if len(cmd.Args) != 1 {
		r.reply(ctx, b, msg.Chat.ID, "Usage: /hour H (0-23), for example /hour 21")
		return
	}

	hour, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		r.reply(ctx, b, msg.Chat.ID, "The hour must be a number between 0 and 23.")
		return
	}

	err = r.services.Registry.SetHour(msg.Chat.ID, hour)
	switch {
	case errors.Is(err, domain.ErrInvalidHour):
		r.reply(ctx, b, msg.Chat.ID, "The hour must be between 0 and 23.")
	case errors.Is(err, domain.ErrUserNotFound):
		r.reply(ctx, b, msg.Chat.ID, "You are not registered yet, send /start first.")
	case err != nil:
		r.log.Error("failed to set hour",
			zap.Int64("chatID", msg.Chat.ID), zap.Error(err))
		r.reply(ctx, b, msg.Chat.ID, "Could not save the hour, please try again later.")
	default:
		r.reply(ctx, b, msg.Chat.ID, fmt.Sprintf("Got it, I will ask at %d:00.", hour))
	}
}

func (r *Router) reply(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		r.log.Warn("failed to send reply", zap.Int64("chatID", chatID), zap.Error(err))
	}
}
