package message

import "strings"

// Servers whose user part is a phone number.
var phoneServers = map[string]bool{
	"s.whatsapp.net": true,
	"c.us":           true,
}

// JID identifies a sender or a chat as "user@server".
type JID struct {
	user   string
	server string
}

// NewJID builds a JID from its parts.
func NewJID(user, server string) JID {
	return JID{user: user, server: server}
}

// ParseJID splits s on the last "@". A value without "@" is all user part.
func ParseJID(s string) JID {
	s = strings.TrimSpace(s)
	if i := strings.LastIndex(s, "@"); i >= 0 {
		return JID{user: s[:i], server: s[i+1:]}
	}
	return JID{user: s}
}

// User returns the local part.
func (j JID) User() string { return j.user }

// Server returns the part after "@".
func (j JID) Server() string { return j.server }

// IsZero reports whether the JID carries no identity at all.
func (j JID) IsZero() bool { return j.user == "" && j.server == "" }

func (j JID) String() string {
	if j.server == "" {
		return j.user
	}
	return j.user + "@" + j.server
}

// PhoneNumber renders the JID as "+<digits>" when it names a phone account,
// otherwise it returns an empty string.
func (j JID) PhoneNumber() string {
	if !phoneServers[j.server] || j.user == "" {
		return ""
	}

	// Device suffixes look like "5511999999999:12".
	user, _, _ := strings.Cut(j.user, ":")
	for _, r := range user {
		if r < '0' || r > '9' {
			return ""
		}
	}
	if user == "" {
		return ""
	}
	return "+" + user
}
