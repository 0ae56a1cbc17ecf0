package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Kerhoff/RosterboT/internal/message"
	"github.com/Kerhoff/RosterboT/internal/service"
)

// RegisterHandler puts the sender on the roster of the next event and replies
// with the roster. Whether the sender was already in is not reported.
type RegisterHandler struct {
	alias  string
	svc    *service.Service
	logger *logrus.Logger
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(alias string, svc *service.Service, logger *logrus.Logger) *RegisterHandler {
	return &RegisterHandler{alias: alias, svc: svc, logger: logger}
}

func (h *RegisterHandler) Alias() string { return h.alias }

func (h *RegisterHandler) Description() string { return "join the next event" }

// Execute registers the sender, then renders the roster.
func (h *RegisterHandler) Execute(ctx context.Context, msg *message.Message) {
	h.svc.RegisterOnNextEvent(ctx, msg)

	h.logger.WithFields(logrus.Fields{
		"chat_jid":    msg.ChatJID().String(),
		"sender_jid":  msg.SenderJID().String(),
		"sender_slug": msg.SenderSlug(),
	}).Debug("Handled registration")
}
