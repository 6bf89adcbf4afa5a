// Package calendar exports scheduled notifications as an iCalendar feed.
package calendar

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

const (
	productID     = "-//FitLife//Notificaciones//ES"
	eventDuration = 30 * time.Minute
)

// Build returns a calendar with one event per notification that has a scheduled date.
func Build(name string, items []model.Notification, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(name)

	for _, n := range items {
		if n.ScheduledAt == nil {
			continue
		}
		start := n.ScheduledAt.UTC()

		event := cal.AddEvent(fmt.Sprintf("notification-%d@fitlife", n.ID))
		event.SetDtStampTime(now.UTC())
		if n.CreatedAt != nil {
			event.SetCreatedTime(n.CreatedAt.UTC())
		}
		event.SetStartAt(start)
		event.SetEndAt(start.Add(eventDuration))
		event.SetSummary(n.Title)
		if n.Message != "" {
			event.SetDescription(n.Message)
		}
		event.AddProperty(ical.ComponentPropertyCategories, n.Type.Label())
	}
	return cal
}

func Write(w io.Writer, cal *ical.Calendar) error {
	_, err := io.WriteString(w, cal.Serialize())
	return err
}
