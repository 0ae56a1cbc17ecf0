// Package message wraps a single inbound chat message together with the reply
// being built for it.
package message

import (
	"strings"

	"github.com/Kerhoff/RosterboT/internal/identity"
)

// Source is what a transport has to expose for one received message.
type Source interface {
	// Text returns the plain-text body, false when the message has none.
	Text() (string, bool)
	SenderJID() JID
	ChatJID() JID
	// PushName returns the name the sending client supplied, if any.
	PushName() (string, bool)
	// SenderName returns the display name computed by the transport.
	SenderName() string
}

// Message is the per-request view of an inbound message. It is owned by the
// goroutine handling the message and must not be shared.
type Message struct {
	text       string
	senderJID  JID
	chatJID    JID
	senderName string
	isPushName bool
	names      map[string]string
	response   string
}

// New extracts everything the handlers need from src. It never fails; missing
// data shows up as empty strings.
func New(src Source) *Message {
	m := &Message{names: make(map[string]string)}
	if src == nil {
		return m
	}

	if text, ok := src.Text(); ok {
		m.text = strings.TrimSpace(text)
	}
	m.senderJID = src.SenderJID()
	m.chatJID = src.ChatJID()

	switch pushName, ok := src.PushName(); {
	case ok && strings.TrimSpace(pushName) != "":
		m.senderName = strings.TrimSpace(pushName)
		m.isPushName = true
	case strings.TrimSpace(src.SenderName()) != "":
		m.senderName = strings.TrimSpace(src.SenderName())
	default:
		m.senderName = m.senderJID.User()
	}

	m.AddName(m.senderName)

	return m
}

// Text returns the trimmed message text.
func (m *Message) Text() string { return m.text }

// ChatJID returns the chat the message was posted in.
func (m *Message) ChatJID() JID { return m.chatJID }

// SenderJID returns the author of the message.
func (m *Message) SenderJID() JID { return m.senderJID }

// SenderName returns the resolved display name of the author.
func (m *Message) SenderName() string { return m.senderName }

// SenderNormalized returns identity.Normalize of the display name.
func (m *Message) SenderNormalized() string { return identity.Normalize(m.senderName) }

// SenderSlug returns identity.Slug of the display name.
func (m *Message) SenderSlug() string { return identity.Slug(m.senderName) }

// SenderPhone returns the phone-number form of the sender, or "".
func (m *Message) SenderPhone() string { return m.senderJID.PhoneNumber() }

// IsPushName reports whether the display name came from the client's push name.
func (m *Message) IsPushName() bool { return m.isPushName }

// SetPushName overrides the push-name flag.
func (m *Message) SetPushName(v bool) { m.isPushName = v }

// AddName records another participant under its slug.
func (m *Message) AddName(name string) {
	m.names[identity.Slug(name)] = identity.Normalize(name)
}

// Names returns a copy of the known participants, slug -> normalized name.
func (m *Message) Names() map[string]string {
	out := make(map[string]string, len(m.names))
	for k, v := range m.names {
		out[k] = v
	}
	return out
}

// Response returns the reply built so far.
func (m *Message) Response() string { return m.response }

// SetResponse replaces the reply.
func (m *Message) SetResponse(text string) { m.response = text }
