package calendar

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

func TestBuildOnlyScheduled(t *testing.T) {
	at := time.Date(2025, 6, 2, 7, 30, 0, 0, time.UTC)
	items := []model.Notification{
		{ID: 1, Type: model.NotificationExercise, Title: "Pierna", Message: "Sentadillas", ScheduledAt: &at},
		{ID: 2, Type: model.NotificationGeneral, Title: "Sin fecha"},
	}

	var sb strings.Builder
	require.NoError(t, Write(&sb, Build("FitLife", items, at)))

	parsed, err := ical.ParseCalendar(strings.NewReader(sb.String()))
	require.NoError(t, err)
	events := parsed.Events()
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "notification-1@fitlife", e.Id())
	assert.Equal(t, "Pierna", e.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "Ejercicio", e.GetProperty(ical.ComponentPropertyCategories).Value)

	start, err := e.GetStartAt()
	require.NoError(t, err)
	assert.True(t, at.Equal(start))
}
