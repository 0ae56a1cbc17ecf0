package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kerhoff/RosterboT/internal/config"
	"github.com/Kerhoff/RosterboT/internal/identity"
	"github.com/Kerhoff/RosterboT/internal/message"
	"github.com/Kerhoff/RosterboT/internal/metrics"
	"github.com/Kerhoff/RosterboT/internal/models"
	"github.com/Kerhoff/RosterboT/internal/repository"
)

// Service is the business logic layer shared by the command handlers and the
// HTTP API. Store failures never leave it as panics; the message-facing
// methods log them and fall back to the default reply.
type Service struct {
	logger  *logrus.Logger
	metrics *metrics.Metrics
	texts   config.Messages
	loc     *time.Location
	now     func() time.Time

	Chats   repository.ChatGroupRepository
	Events  repository.EventRepository
	Persons repository.PersonRepository
}

// New creates a new Service with all required dependencies.
func New(logger *logrus.Logger, m *metrics.Metrics, texts config.Messages, loc *time.Location,
	chats repository.ChatGroupRepository,
	events repository.EventRepository,
	persons repository.PersonRepository,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		logger: logger, metrics: m, texts: texts, loc: loc, now: time.Now,
		Chats: chats, Events: events, Persons: persons,
	}
}

// Texts returns the configured reply texts.
func (s *Service) Texts() config.Messages {
	return s.texts
}

// IsRegisteredChat reports whether the chat may use the bot. A failed lookup
// counts as "not registered".
func (s *Service) IsRegisteredChat(ctx context.Context, chatJID string) bool {
	ok, err := s.Chats.Exists(ctx, chatJID)
	if err != nil {
		s.storeError("chat_exists", err, logrus.Fields{"chat_jid": chatJID})
		return false
	}
	return ok
}

// NextEvent returns the next event of the chat and its roster. The event is
// nil when nothing is scheduled.
func (s *Service) NextEvent(ctx context.Context, chatJID string) (*models.Event, []*models.Person, error) {
	today := s.now().In(s.loc)

	event, err := s.Events.FindNext(ctx, chatJID, today)
	if err != nil {
		return nil, nil, fmt.Errorf("find next event (chat=%s): %w", chatJID, err)
	}
	if event == nil {
		return nil, nil, nil
	}

	persons, err := s.Persons.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list persons (event=%d): %w", event.ID, err)
	}

	return event, persons, nil
}

// ListNextEvent sets the reply of msg to the rendered next event, or to the
// "no events" text when there is none or the store failed.
func (s *Service) ListNextEvent(ctx context.Context, msg *message.Message) {
	msg.SetResponse(s.texts.NoEvents)

	event, persons, err := s.NextEvent(ctx, msg.ChatJID().String())
	if err != nil {
		s.storeError("next_event", err, logrus.Fields{"chat_jid": msg.ChatJID().String()})
		return
	}
	if event == nil {
		return
	}

	msg.SetResponse(s.RenderEvent(event, persons, msg.SenderJID().String()))
}

// RegisterOnNextEvent adds the sender of msg to the next event of the chat and
// replies with the current roster. Registering twice is not an error.
func (s *Service) RegisterOnNextEvent(ctx context.Context, msg *message.Message) {
	msg.SetResponse(s.texts.NoEvents)

	chatJID := msg.ChatJID().String()
	senderJID := msg.SenderJID().String()
	fields := logrus.Fields{"chat_jid": chatJID, "sender_jid": senderJID}

	event, err := s.Events.FindNext(ctx, chatJID, s.now().In(s.loc))
	if err != nil {
		s.storeError("next_event", err, fields)
		return
	}
	if event == nil {
		s.countRegistration(metrics.RegistrationNoEvent)
		return
	}
	fields["event_id"] = event.ID

	person := &models.Person{
		EventID:   event.ID,
		SenderJID: senderJID,
		Slug:      identity.Slug(msg.SenderName()),
		Name:      msg.SenderName(),
	}

	switch _, err := s.Persons.Create(ctx, person); {
	case err == nil:
		s.countRegistration(metrics.RegistrationCreated)
		s.logger.WithFields(fields).Info("Registered person on event")
	case errors.Is(err, repository.ErrDuplicatePerson):
		s.countRegistration(metrics.RegistrationDuplicate)
		s.logger.WithFields(fields).Info("Person already registered on event")
	default:
		s.countRegistration(metrics.RegistrationFailed)
		s.storeError("create_person", err, fields)
	}

	s.ListNextEvent(ctx, msg)
}

func (s *Service) storeError(operation string, err error, fields logrus.Fields) {
	if s.metrics != nil {
		s.metrics.StoreErrors.WithLabelValues(operation).Inc()
	}
	s.logger.WithFields(fields).WithError(err).Errorf("Store operation %s failed", operation)
}

func (s *Service) countRegistration(result string) {
	if s.metrics != nil {
		s.metrics.Registrations.WithLabelValues(result).Inc()
	}
}
