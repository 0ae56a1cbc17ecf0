package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kerhoff/RosterboT/internal/message"
	"github.com/Kerhoff/RosterboT/internal/router"
)

// Describer is implemented by handlers that want a line in the help text.
type Describer interface {
	Description() string
}

// HelpHandler handles the help command
type HelpHandler struct {
	alias string
	text  string
}

// NewHelpHandler builds the help text once from the other commands.
func NewHelpHandler(alias, header string, commands []router.CommandHandler) *HelpHandler {
	var b strings.Builder
	b.WriteString(header)

	for _, cmd := range commands {
		fmt.Fprintf(&b, "\n• %s", cmd.Alias())
		if d, ok := cmd.(Describer); ok {
			fmt.Fprintf(&b, " - %s", d.Description())
		}
	}
	fmt.Fprintf(&b, "\n• %s - show this help message", alias)

	return &HelpHandler{alias: alias, text: b.String()}
}

func (h *HelpHandler) Alias() string { return h.alias }

func (h *HelpHandler) Execute(_ context.Context, msg *message.Message) {
	msg.SetResponse(h.text)
}
