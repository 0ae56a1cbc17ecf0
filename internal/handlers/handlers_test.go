package handlers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Kerhoff/RosterboT/internal/config"
	"github.com/Kerhoff/RosterboT/internal/message"
	"github.com/Kerhoff/RosterboT/internal/models"
	"github.com/Kerhoff/RosterboT/internal/repository"
	"github.com/Kerhoff/RosterboT/internal/router"
	"github.com/Kerhoff/RosterboT/internal/service"
	"github.com/Kerhoff/RosterboT/pkg/logger"
)

const chatJID = "-1001@telegram"

type memStore struct {
	event   *models.Event
	persons []*models.Person
}

func (m *memStore) Exists(_ context.Context, jid string) (bool, error) {
	return jid == chatJID, nil
}

func (m *memStore) FindNext(_ context.Context, chat string, _ time.Time) (*models.Event, error) {
	if m.event == nil || chat != m.event.ChatGroupJID {
		return nil, nil
	}
	return m.event, nil
}

func (m *memStore) ListByEvent(_ context.Context, eventID int64) ([]*models.Person, error) {
	return m.persons, nil
}

func (m *memStore) Create(_ context.Context, p *models.Person) (*models.Person, error) {
	for _, existing := range m.persons {
		if existing.EventID == p.EventID && existing.SenderJID == p.SenderJID {
			return nil, repository.ErrDuplicatePerson
		}
	}
	m.persons = append(m.persons, p)
	return p, nil
}

func newRouter(store *memStore) *router.Router {
	l := logger.Discard()
	svc := service.New(l, nil, config.DefaultMessages(), time.UTC, store, store, store)
	return router.New(l, All(svc, l)...)
}

func run(t *testing.T, r *router.Router, sender, name, text string) string {
	t.Helper()
	msg := message.New(message.StaticSource{
		Body: text, HasBody: true,
		Sender: message.ParseJID(sender), Chat: message.ParseJID(chatJID),
		Push: name, HasPush: true,
	})
	h, ok := r.Find(msg.Text())
	if !ok {
		t.Fatalf("no handler for %q", text)
	}
	h.Execute(context.Background(), msg)
	return msg.Response()
}

func TestAllAliases(t *testing.T) {
	r := newRouter(&memStore{})

	want := []string{"/help", "/in", "/l", "/list"}
	got := r.Aliases()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Aliases() = %v, want %v", got, want)
	}
}

func TestEcho(t *testing.T) {
	r := newRouter(&memStore{})

	if got := run(t, r, "1@telegram", "Alice", "  /L hello there "); got != "Received command: /L hello there" {
		t.Errorf("echo response = %q", got)
	}
}

func TestHelp(t *testing.T) {
	r := newRouter(&memStore{})

	got := run(t, r, "1@telegram", "Alice", "/help")
	for _, want := range []string{"Available commands:", "/list - show the next event", "/in - join the next event", "/l - echo", "/help - show this help message"} {
		if !strings.Contains(got, want) {
			t.Errorf("help text %q does not contain %q", got, want)
		}
	}
}

func TestListWithoutEvent(t *testing.T) {
	r := newRouter(&memStore{})

	if got := run(t, r, "1@telegram", "Alice", "/list"); got != "No events scheduled" {
		t.Errorf("list response = %q", got)
	}
}

func TestRegisterThenList(t *testing.T) {
	date, _ := time.Parse("2006-01-02", "2026-10-20")
	store := &memStore{event: &models.Event{ID: 5, ChatGroupJID: chatJID, EventDate: date, Template: "#WEEK_DAY\n#PERSON_LIST"}}
	r := newRouter(store)

	if got := run(t, r, "1@telegram", "Alice", "/in"); got != "Tuesday\n*01 - Alice*" {
		t.Errorf("first register = %q", got)
	}
	if got := run(t, r, "2@telegram", "Bob", "/IN please"); got != "Tuesday\n01 - Alice\n*02 - Bob*" {
		t.Errorf("second register = %q", got)
	}
	if got := run(t, r, "1@telegram", "Alice", "/in"); got != "Tuesday\n*01 - Alice*\n02 - Bob" {
		t.Errorf("duplicate register = %q", got)
	}
	if got := run(t, r, "3@telegram", "Carol", "/list"); got != "Tuesday\n01 - Alice\n02 - Bob" {
		t.Errorf("list = %q", got)
	}
	if len(store.persons) != 2 {
		t.Errorf("%d persons stored, want 2", len(store.persons))
	}
}
