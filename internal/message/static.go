package message

// StaticSource is a Source backed by plain fields. Transports with no native
// message object and tests use it.
type StaticSource struct {
	Body       string
	HasBody    bool
	Sender     JID
	Chat       JID
	Push       string
	HasPush    bool
	SenderDisp string
}

func (s StaticSource) Text() (string, bool)     { return s.Body, s.HasBody }
func (s StaticSource) SenderJID() JID           { return s.Sender }
func (s StaticSource) ChatJID() JID             { return s.Chat }
func (s StaticSource) PushName() (string, bool) { return s.Push, s.HasPush }
func (s StaticSource) SenderName() string       { return s.SenderDisp }
