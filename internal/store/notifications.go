package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

// FilterAll selects every notification type.
const FilterAll = "all"

type NotificationService interface {
	List(ctx context.Context) ([]model.Notification, error)
	Create(ctx context.Context, req model.CreateNotificationRequest) (*model.Notification, error)
	MarkAsRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

const (
	msgLoadNotifications  = "Error al cargar notificaciones"
	msgCreateNotification = "Error al crear notificación"
	msgMarkRead           = "Error al marcar como leída"
	msgMarkAllRead        = "Error al marcar todas como leídas"
	msgDeleteNotification = "Error al eliminar notificación"
)

type Notifications struct {
	*Collection[model.Notification]
	svc NotificationService

	mutating sync.Mutex
}

func NewNotifications(svc NotificationService) *Notifications {
	return &Notifications{
		Collection: NewCollection(svc.List, msgLoadNotifications),
		svc:        svc,
	}
}

func (n *Notifications) Create(ctx context.Context, req model.CreateNotificationRequest) (*model.Notification, error) {
	n.mutating.Lock()
	defer n.mutating.Unlock()

	created, err := n.svc.Create(ctx, req)
	if err != nil {
		return nil, n.fail(err, msgCreateNotification)
	}
	_ = n.Load(ctx)
	return created, nil
}

func (n *Notifications) MarkAsRead(ctx context.Context, id int64) error {
	n.mutating.Lock()
	defer n.mutating.Unlock()

	err := n.svc.MarkAsRead(ctx, id)
	if err != nil {
		return n.fail(err, msgMarkRead)
	}
	_ = n.Load(ctx)
	return nil
}

// MarkAllAsRead marks every unread notification in parallel, then reloads.
func (n *Notifications) MarkAllAsRead(ctx context.Context) error {
	n.mutating.Lock()
	defer n.mutating.Unlock()

	unread := n.filter(func(item model.Notification) bool { return !item.Read })
	if len(unread) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, item := range unread {
		g.Go(func() error {
			return n.svc.MarkAsRead(gctx, item.ID)
		})
	}
	err := g.Wait()

	// reload either way: some of them may have been marked
	_ = n.Load(ctx)
	if err != nil {
		return n.fail(err, msgMarkAllRead)
	}
	return nil
}

func (n *Notifications) Delete(ctx context.Context, id int64) error {
	n.mutating.Lock()
	defer n.mutating.Unlock()

	err := n.svc.Delete(ctx, id)
	if err != nil {
		return n.fail(err, msgDeleteNotification)
	}
	_ = n.Load(ctx)
	return nil
}

func (n *Notifications) UnreadCount() int {
	return len(n.filter(func(item model.Notification) bool { return !item.Read }))
}

// Filter returns the notifications of one type, or all of them for FilterAll or "".
func (n *Notifications) Filter(kind string) []model.Notification {
	if kind == "" || kind == FilterAll {
		return n.Items()
	}
	return n.filter(func(item model.Notification) bool { return string(item.Type) == kind })
}

// Scheduled returns the notifications that carry a scheduled date.
func (n *Notifications) Scheduled() []model.Notification {
	return n.filter(func(item model.Notification) bool { return item.ScheduledAt != nil })
}

// Poll reloads the list every interval until ctx is done. A poll never starts while
// the previous one is still running. onLoad, when set, is called after every poll.
func (n *Notifications) Poll(ctx context.Context, interval time.Duration, onLoad func(items []model.Notification, err error)) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{})))
	_, err := c.AddFunc("@every "+interval.String(), func() {
		err := n.Load(ctx)
		if err != nil {
			slog.Warn("notification poll failed", "error", err)
		}
		if onLoad != nil {
			onLoad(n.Items(), err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

// cronLogger sends cron's own logging to slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
