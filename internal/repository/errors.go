package repository

import "errors"

// ErrDuplicatePerson is returned when the sender is already registered for the event.
var ErrDuplicatePerson = errors.New("person already registered for this event")
