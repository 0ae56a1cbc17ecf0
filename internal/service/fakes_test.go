package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Kerhoff/RosterboT/internal/models"
	"github.com/Kerhoff/RosterboT/internal/repository"
)

var errStoreDown = errors.New("connection refused")

type fakeChats struct {
	jids map[string]bool
	err  error
}

func (f *fakeChats) Exists(_ context.Context, jid string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.jids[jid], nil
}

type fakeEvents struct {
	events []*models.Event
	err    error
}

func (f *fakeEvents) FindNext(_ context.Context, chatJID string, today time.Time) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var next *models.Event
	for _, e := range f.events {
		if e.ChatGroupJID != chatJID || e.EventDate.Before(day) {
			continue
		}
		if next == nil || e.EventDate.Before(next.EventDate) {
			next = e
		}
	}
	return next, nil
}

// fakePersons enforces the (event_id, sender_jid) uniqueness the real stores
// get from their schema.
type fakePersons struct {
	mu        sync.Mutex
	persons   []*models.Person
	clock     time.Time
	createErr error
	listErr   error
}

func (f *fakePersons) ListByEvent(_ context.Context, eventID int64) ([]*models.Person, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []*models.Person
	for _, p := range f.persons {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePersons) Create(_ context.Context, person *models.Person) (*models.Person, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}

	for _, p := range f.persons {
		if p.EventID == person.EventID && p.SenderJID == person.SenderJID {
			return nil, repository.ErrDuplicatePerson
		}
	}

	f.clock = f.clock.Add(time.Second)
	person.ID = int64(len(f.persons) + 1)
	person.CreatedAt = f.clock
	person.UpdatedAt = f.clock
	f.persons = append(f.persons, person)
	return person, nil
}
