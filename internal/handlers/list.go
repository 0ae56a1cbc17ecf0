package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Kerhoff/RosterboT/internal/message"
	"github.com/Kerhoff/RosterboT/internal/service"
)

// ListHandler shows the next event of the chat with its roster.
type ListHandler struct {
	alias  string
	svc    *service.Service
	logger *logrus.Logger
}

// NewListHandler creates a new ListHandler.
func NewListHandler(alias string, svc *service.Service, logger *logrus.Logger) *ListHandler {
	return &ListHandler{alias: alias, svc: svc, logger: logger}
}

func (h *ListHandler) Alias() string { return h.alias }

func (h *ListHandler) Description() string { return "show the next event and who is in" }

// Execute renders the next event into the reply.
func (h *ListHandler) Execute(ctx context.Context, msg *message.Message) {
	h.svc.ListNextEvent(ctx, msg)

	h.logger.WithFields(logrus.Fields{
		"chat_jid":   msg.ChatJID().String(),
		"sender_jid": msg.SenderJID().String(),
	}).Debug("Listed next event")
}
