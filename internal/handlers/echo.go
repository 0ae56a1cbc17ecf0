package handlers

import (
	"context"

	"github.com/Kerhoff/RosterboT/internal/message"
)

// EchoHandler answers with the text it received. Handy to check that the bot
// is alive in a chat.
type EchoHandler struct {
	alias  string
	prefix string
}

func NewEchoHandler(alias, prefix string) *EchoHandler {
	return &EchoHandler{alias: alias, prefix: prefix}
}

func (h *EchoHandler) Alias() string { return h.alias }

func (h *EchoHandler) Description() string { return "echo the command back" }

func (h *EchoHandler) Execute(_ context.Context, msg *message.Message) {
	msg.SetResponse(h.prefix + msg.Text())
}
