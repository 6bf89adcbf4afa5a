package form

import (
	"net/url"
	"time"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

// scheduledLayout matches <input type="datetime-local">.
const scheduledLayout = "2006-01-02T15:04"

type NotificationDraft struct {
	Type        string
	Title       string
	Message     string
	ScheduledAt string
}

func NotificationDraftFromValues(v url.Values) *NotificationDraft {
	d := &NotificationDraft{
		Type:        v.Get("tipo"),
		Title:       v.Get("titulo"),
		Message:     v.Get("mensaje"),
		ScheduledAt: v.Get("fechaProgramada"),
	}
	if d.Type == "" {
		d.Type = string(model.NotificationGeneral)
	}
	return d
}

func (d *NotificationDraft) Validate() Errors {
	errs := Errors{}
	if !model.NotificationType(d.Type).Valid() {
		errs["tipo"] = "Selecciona un tipo"
	}
	errs.required("titulo", d.Title)
	errs.required("mensaje", d.Message)
	if trim(d.ScheduledAt) != "" {
		if _, err := time.ParseInLocation(scheduledLayout, trim(d.ScheduledAt), time.Local); err != nil {
			errs["fechaProgramada"] = "Fecha no válida"
		}
	}
	return errs
}

func (d *NotificationDraft) Valid() bool {
	return len(d.Validate()) == 0
}

func (d *NotificationDraft) CreateRequest() (model.CreateNotificationRequest, error) {
	if !d.Valid() {
		return model.CreateNotificationRequest{}, ErrInvalid
	}
	req := model.CreateNotificationRequest{
		Type:    model.NotificationType(d.Type),
		Title:   trim(d.Title),
		Message: trim(d.Message),
	}
	if s := trim(d.ScheduledAt); s != "" {
		t, _ := time.ParseInLocation(scheduledLayout, s, time.Local)
		req.ScheduledAt = &t
	}
	return req, nil
}
