package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Dianagomez24/FrontFilLife/internal/calendar"
	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
	"github.com/Dianagomez24/FrontFilLife/internal/form"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/store"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
	"github.com/Dianagomez24/FrontFilLife/internal/ui/pages"
)

type NotificationService interface {
	store.NotificationService
	Unread(ctx context.Context) ([]model.Notification, error)
}

type NotificationHandler struct {
	svc NotificationService
}

func NewNotificationHandler(svc NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// typeFilter reads ?type=, ignoring unknown types.
func typeFilter(r *http.Request) string {
	kind := r.URL.Query().Get("type")
	if model.NotificationType(kind).Valid() {
		return kind
	}
	return ""
}

func (h *NotificationHandler) props(r *http.Request, n *store.Notifications) pages.NotificationsProps {
	filter := typeFilter(r)
	kind := filter
	if kind == "" {
		kind = store.FilterAll
	}
	return pages.NotificationsProps{
		Items:  n.Filter(kind),
		Filter: filter,
		Unread: n.UnreadCount(),
		Error:  n.Err(),
	}
}

func (h *NotificationHandler) NotificationsPage(w http.ResponseWriter, r *http.Request) {
	n := store.NewNotifications(h.svc)
	err := n.Load(r.Context())
	if sessionExpired(w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to load notifications", "error", err, "user_id", userID(r))
	}
	ui.RenderView(w, r, pages.Notifications(h.props(r, n)))
}

// Feed is polled by the notifications page.
func (h *NotificationHandler) Feed(w http.ResponseWriter, r *http.Request) {
	n := store.NewNotifications(h.svc)
	err := n.Load(r.Context())
	if sessionExpired(w, r, err) {
		return
	}
	if err != nil {
		slog.Warn("failed to poll notifications", "error", err, "user_id", userID(r))
	}
	h.renderFeed(w, r, n)
}

// Badge is polled by the navigation bar of every page.
func (h *NotificationHandler) Badge(w http.ResponseWriter, r *http.Request) {
	unread, err := h.svc.Unread(r.Context())
	if sessionExpired(w, r, err) {
		return
	}
	if err != nil {
		slog.Warn("failed to count unread notifications", "error", err, "user_id", userID(r))
	}
	ui.Render(w, r, pages.Badge(len(unread)).Block("badge"))
}

func (h *NotificationHandler) renderFeed(w http.ResponseWriter, r *http.Request, n *store.Notifications) {
	p := h.props(r, n)
	ui.Render(w, r, pages.Feed(p).Block("feed"))
	ui.RenderOOB(w, r, pages.Badge(p.Unread).Block("badge-count"), "innerHTML:#unread-badge")
}

func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Formulario inválido", http.StatusBadRequest)
		return
	}

	n := store.NewNotifications(h.svc)
	draft := form.NotificationDraftFromValues(r.PostForm)

	errs := draft.Validate()
	if len(errs) > 0 {
		_ = n.Load(r.Context())
		p := h.props(r, n)
		p.Draft, p.Errors = draft, errs
		ui.RenderView(w, r, pages.Notifications(p))
		return
	}

	req, _ := draft.CreateRequest()
	_, err = n.Create(r.Context(), req)
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		slog.Error("failed to create notification", "error", err, "user_id", userID(r))
		_ = n.Load(r.Context())
		p := h.props(r, n)
		p.Draft = draft
		ui.RenderView(w, r, pages.Notifications(p))
		toastError(w, r, "Error", store.UserMessage(err))
		return
	}

	ui.RenderView(w, r, pages.Notifications(h.props(r, n)))
	toastSuccess(w, r, "Notificación creada", req.Title)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		NewHomeHandler().NotFoundPage(w, r)
		return
	}

	n := store.NewNotifications(h.svc)
	err := n.MarkAsRead(r.Context(), id)
	if sessionExpired(w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to mark notification as read", "error", err, "user_id", userID(r), "notification_id", id)
		_ = n.Load(r.Context())
		h.renderFeed(w, r, n)
		toastError(w, r, "Error", store.UserMessage(err))
		return
	}
	h.renderFeed(w, r, n)
}

func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	n := store.NewNotifications(h.svc)
	err := n.Load(r.Context())
	if err == nil {
		err = n.MarkAllAsRead(r.Context())
	}
	if sessionExpired(w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to mark all notifications as read", "error", err, "user_id", userID(r))
		h.renderFeed(w, r, n)
		toastError(w, r, "Error", store.UserMessage(err))
		return
	}
	h.renderFeed(w, r, n)
	toastSuccess(w, r, "Listo", "Todas las notificaciones están leídas.")
}

func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		NewHomeHandler().NotFoundPage(w, r)
		return
	}

	n := store.NewNotifications(h.svc)
	err := n.Delete(r.Context(), id)
	if sessionExpired(w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to delete notification", "error", err, "user_id", userID(r), "notification_id", id)
		_ = n.Load(r.Context())
		h.renderFeed(w, r, n)
		toastError(w, r, "Error", store.UserMessage(err))
		return
	}
	h.renderFeed(w, r, n)
}

// Calendar exports scheduled notifications as an iCalendar file.
func (h *NotificationHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	n := store.NewNotifications(h.svc)
	err := n.Load(r.Context())
	if sessionExpired(w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to load notifications for calendar", "error", err, "user_id", userID(r))
		http.Error(w, store.UserMessage(err), http.StatusBadGateway)
		return
	}

	name := "FitLife"
	if cfg := ctxkeys.Config(r.Context()); cfg != nil && cfg.AppName != "" {
		name = cfg.AppName
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="fitlife.ics"`)
	err = calendar.Write(w, calendar.Build(name, n.Scheduled(), time.Now()))
	if err != nil {
		slog.Error("failed to write calendar", "error", err, "user_id", userID(r))
	}
}
