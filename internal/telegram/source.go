package telegram

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Kerhoff/RosterboT/internal/message"
)

// Server is the JID server part used for Telegram users and chats.
const Server = "telegram"

// source adapts a Telegram message to message.Source.
type source struct {
	msg         *tgbotapi.Message
	botUsername string
}

func newSource(msg *tgbotapi.Message, botUsername string) source {
	return source{msg: msg, botUsername: botUsername}
}

// Text returns the message text with a trailing "@<bot>" removed from the
// first word, so "/list@RosterBot" dispatches like "/list".
func (s source) Text() (string, bool) {
	text := s.msg.Text
	if text == "" {
		text = s.msg.Caption
	}
	if text == "" {
		return "", false
	}

	if s.botUsername == "" {
		return text, true
	}

	trimmed := strings.TrimLeft(text, " \t\n")
	first, rest, _ := strings.Cut(trimmed, " ")
	suffix := "@" + strings.ToLower(s.botUsername)
	if strings.HasSuffix(strings.ToLower(first), suffix) {
		first = first[:len(first)-len(suffix)]
		if rest != "" {
			return first + " " + rest, true
		}
		return first, true
	}
	return text, true
}

func (s source) SenderJID() message.JID {
	if s.msg.From == nil {
		return message.JID{}
	}
	return message.NewJID(strconv.FormatInt(s.msg.From.ID, 10), Server)
}

func (s source) ChatJID() message.JID {
	if s.msg.Chat == nil {
		return message.JID{}
	}
	return ChatJID(s.msg.Chat.ID)
}

// PushName is the name the user set on their profile.
func (s source) PushName() (string, bool) {
	if s.msg.From == nil {
		return "", false
	}
	name := strings.TrimSpace(s.msg.From.FirstName + " " + s.msg.From.LastName)
	return name, name != ""
}

// SenderName falls back to the @username.
func (s source) SenderName() string {
	if s.msg.From == nil || s.msg.From.UserName == "" {
		return ""
	}
	return "@" + s.msg.From.UserName
}

// ChatJID returns the JID under which a Telegram chat is registered.
func ChatJID(chatID int64) message.JID {
	return message.NewJID(strconv.FormatInt(chatID, 10), Server)
}
