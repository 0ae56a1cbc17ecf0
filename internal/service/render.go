package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Kerhoff/RosterboT/internal/models"
)

// Template placeholders
const (
	PlaceholderID         = "#ID"
	PlaceholderWeekDay    = "#WEEK_DAY"
	PlaceholderDate       = "#DATE"
	PlaceholderStartAt    = "#START_AT"
	PlaceholderEndAt      = "#END_AT"
	PlaceholderPersonList = "#PERSON_LIST"
)

// RenderRoster numbers the persons from 01 in the given order, one per line.
// The row of senderJID is wrapped in "*" so the requester finds themself.
func RenderRoster(persons []*models.Person, senderJID string) string {
	rows := make([]string, 0, len(persons))
	for i, p := range persons {
		row := fmt.Sprintf("%02d - %s", i+1, p.Name)
		if p.SenderJID == senderJID {
			row = "*" + row + "*"
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// RenderEvent fills the event template. Placeholders are matched literally and
// substituted in a single pass, so values are never re-expanded.
func (s *Service) RenderEvent(event *models.Event, persons []*models.Person, senderJID string) string {
	r := strings.NewReplacer(
		PlaceholderID, strconv.FormatInt(event.ID, 10),
		PlaceholderWeekDay, s.weekdayName(event),
		PlaceholderDate, event.EventDate.Format(s.texts.DateLayout),
		PlaceholderStartAt, event.StartAt.Format(s.texts.TimeLayout),
		PlaceholderEndAt, event.EndAt.Format(s.texts.TimeLayout),
		PlaceholderPersonList, RenderRoster(persons, senderJID),
	)
	return r.Replace(event.Template)
}

func (s *Service) weekdayName(event *models.Event) string {
	wd := event.EventDate.Weekday()
	if int(wd) < len(s.texts.Weekdays) {
		return s.texts.Weekdays[wd]
	}
	return wd.String()
}
