// Package router maps command aliases to their handlers.
package router

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Kerhoff/RosterboT/internal/message"
)

// CommandHandler defines the interface for command handlers. Execute reports
// its outcome through msg.SetResponse and never fails.
type CommandHandler interface {
	Alias() string
	Execute(ctx context.Context, msg *message.Message)
}

// Router is the alias table. It is built once by New and only read
// afterwards, so a single Router can serve any number of goroutines.
type Router struct {
	handlers map[string]CommandHandler
}

// New registers handlers in order. When two handlers share an alias
// (case-insensitively) the last one wins.
func New(logger *logrus.Logger, handlers ...CommandHandler) *Router {
	r := &Router{handlers: make(map[string]CommandHandler, len(handlers))}

	for _, h := range handlers {
		alias := strings.ToLower(strings.TrimSpace(h.Alias()))
		if alias == "" {
			logger.Warnf("Skipping command handler %T without alias", h)
			continue
		}
		if _, exists := r.handlers[alias]; exists {
			logger.Warnf("Command %s registered twice, keeping %T", alias, h)
		}
		r.handlers[alias] = h
		logger.Debugf("Registered command: %s", alias)
	}

	return r
}

// Find returns the handler whose alias equals the first word of text,
// ignoring case. The rest of the text is left to the handler.
func (r *Router) Find(text string) (CommandHandler, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, false
	}

	h, ok := r.handlers[strings.ToLower(fields[0])]
	return h, ok
}

// Aliases returns the registered aliases, sorted.
func (r *Router) Aliases() []string {
	aliases := make([]string, 0, len(r.handlers))
	for alias := range r.handlers {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
