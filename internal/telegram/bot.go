package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Kerhoff/RosterboT/internal/message"
	"github.com/Kerhoff/RosterboT/internal/metrics"
	"github.com/Kerhoff/RosterboT/internal/router"
)

// ChatChecker tells whether a chat is allowed to use the bot.
type ChatChecker interface {
	IsRegisteredChat(ctx context.Context, chatJID string) bool
}

// Bot wraps the Telegram bot API
type Bot struct {
	api     *tgbotapi.BotAPI
	logger  *logrus.Logger
	router  *router.Router
	chats   ChatChecker
	metrics *metrics.Metrics
}

// NewBot creates a new Telegram bot instance
func NewBot(token string, r *router.Router, chats ChatChecker, m *metrics.Metrics, logger *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Infof("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:     api,
		logger:  logger,
		router:  r,
		chats:   chats,
		metrics: m,
	}, nil
}

// SetWebhook sets up webhook for the bot
func (b *Bot) SetWebhook(webhookURL string) error {
	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return fmt.Errorf("failed to create webhook: %w", err)
	}

	_, err = b.api.Request(wh)
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	b.logger.Infof("Webhook set to %s", webhookURL)
	return nil
}

// Start starts the bot with long polling
func (b *Bot) Start(ctx context.Context) error {
	// Delete webhook if exists and use polling
	_, err := b.api.Request(tgbotapi.DeleteWebhookConfig{})
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("Bot started with long polling")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Stopping bot...")
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

// HandleWebhook handles incoming webhook updates
func (b *Bot) HandleWebhook(update tgbotapi.Update) {
	go b.handleUpdate(context.Background(), update)
}

// handleUpdate processes incoming updates
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Errorf("Panic in update handler: %v", r)
		}
	}()

	if update.Message == nil {
		return
	}

	msg := message.New(newSource(update.Message, b.api.Self.UserName))
	reply, ok := b.process(ctx, msg)
	if !ok || reply == "" {
		return
	}

	if err := b.SendMessage(update.Message.Chat.ID, update.Message.MessageID, reply); err != nil {
		b.logger.WithError(err).WithField("chat_jid", msg.ChatJID().String()).Error("Failed to send reply")
	}
}

// process dispatches msg and returns the reply to send. ok is false when the
// message is not a known command or the chat is not registered.
func (b *Bot) process(ctx context.Context, msg *message.Message) (string, bool) {
	log := b.logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"chat_jid":   msg.ChatJID().String(),
		"sender_jid": msg.SenderJID().String(),
	})

	handler, ok := b.router.Find(msg.Text())
	if !ok {
		log.Debug("Ignoring message without command")
		return "", false
	}
	log = log.WithField("alias", handler.Alias())

	if !b.chats.IsRegisteredChat(ctx, msg.ChatJID().String()) {
		if b.metrics != nil {
			b.metrics.Unauthorized.Inc()
		}
		log.Warn("Ignoring command from unregistered chat")
		return "", false
	}

	if b.metrics != nil {
		b.metrics.Commands.WithLabelValues(handler.Alias()).Inc()
	}
	log.WithField("text", msg.Text()).Info("Received command")

	handler.Execute(ctx, msg)

	return msg.Response(), true
}

// SendMessage replies to a message. Markdown is tried first; when Telegram
// cannot parse the entities (a name with "_" or "*") the plain text is sent.
func (b *Bot) SendMessage(chatID int64, replyTo int, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyTo
	msg.ParseMode = tgbotapi.ModeMarkdown

	_, err := b.api.Send(msg)
	if err != nil && strings.Contains(err.Error(), "can't parse entities") {
		msg.ParseMode = ""
		_, err = b.api.Send(msg)
	}
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
