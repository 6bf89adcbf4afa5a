package pages

import (
	"github.com/Dianagomez24/FrontFilLife/internal/form"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
)

type NotificationsProps struct {
	Items  []model.Notification
	Filter string
	Unread int
	Draft  *form.NotificationDraft
	Errors form.Errors
	Error  string
	Types  []model.NotificationType
}

func Notifications(p NotificationsProps) ui.View {
	if p.Types == nil {
		p.Types = model.NotificationTypes
	}
	if p.Draft == nil {
		p.Draft = &form.NotificationDraft{Type: string(model.NotificationGeneral)}
	}
	return ui.NewView("notifications", "Notificaciones", p)
}

// Feed is the polled list fragment.
func Feed(p NotificationsProps) ui.View {
	return Notifications(p)
}

// Badge is the unread counter in the navigation bar.
func Badge(unread int) ui.View {
	return ui.NewView("notifications", "", NotificationsProps{Unread: unread})
}
