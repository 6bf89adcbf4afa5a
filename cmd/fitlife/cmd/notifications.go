package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dianagomez24/FrontFilLife/internal/calendar"
	"github.com/Dianagomez24/FrontFilLife/internal/form"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/store"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
)

func notificationsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notificaciones"},
		Short:   "Notificaciones",
	}

	load := func(cmd *cobra.Command) (*store.Notifications, error) {
		n := store.NewNotifications(e.app.NotificationService)
		return n, n.Load(cmd.Context())
	}

	var kind string
	var unread bool
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar notificaciones",
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != "" && !model.NotificationType(kind).Valid() {
				return fmt.Errorf("tipo desconocido %q (ejercicio, nutricion, meta, general)", kind)
			}
			n, err := load(cmd)
			if err != nil {
				return err
			}

			var items []model.Notification
			for _, item := range n.Filter(kind) {
				if unread && item.Read {
					continue
				}
				items = append(items, item)
			}
			if len(items) == 0 {
				e.printf("No hay notificaciones\n")
				return nil
			}

			e.printf("%d sin leer\n\n", n.UnreadCount())
			return writeNotifications(e.out, items)
		},
	}
	list.Flags().StringVarP(&kind, "type", "t", "", "filtrar por tipo")
	list.Flags().BoolVarP(&unread, "unread", "u", false, "solo sin leer")

	var draft form.NotificationDraft
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear una notificación",
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := draft.Validate(); len(errs) > 0 {
				return formErrors(errs)
			}
			req, err := draft.CreateRequest()
			if err != nil {
				return err
			}
			created, err := store.NewNotifications(e.app.NotificationService).Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			if created == nil {
				e.printf("Notificación creada\n")
				return nil
			}
			e.printf("Notificación creada (id %d)\n", created.ID)
			return nil
		},
	}
	create.Flags().StringVarP(&draft.Type, "type", "t", string(model.NotificationGeneral), "tipo")
	create.Flags().StringVar(&draft.Title, "title", "", "título")
	create.Flags().StringVarP(&draft.Message, "message", "m", "", "mensaje")
	create.Flags().StringVar(&draft.ScheduledAt, "at", "", "fecha programada (2006-01-02T15:04)")

	read := &cobra.Command{
		Use:   "read <id>",
		Short: "Marcar como leída",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n := store.NewNotifications(e.app.NotificationService)
			if err := n.MarkAsRead(cmd.Context(), id); err != nil {
				return err
			}
			e.printf("Notificación marcada como leída\n")
			return nil
		},
	}

	readAll := &cobra.Command{
		Use:   "read-all",
		Short: "Marcar todas como leídas",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := load(cmd)
			if err != nil {
				return err
			}
			if err := n.MarkAllAsRead(cmd.Context()); err != nil {
				return err
			}
			e.printf("Todas las notificaciones marcadas como leídas\n")
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar una notificación",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n := store.NewNotifications(e.app.NotificationService)
			if err := n.Delete(cmd.Context(), id); err != nil {
				return err
			}
			e.printf("Notificación eliminada\n")
			return nil
		},
	}

	var interval time.Duration
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Mostrar notificaciones nuevas a medida que llegan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				interval = e.app.Cfg.NotificationPollInterval
			}
			n, err := load(cmd)
			if err != nil {
				return err
			}

			seen := make(map[int64]bool)
			for _, item := range n.Items() {
				seen[item.ID] = true
			}
			e.printf("%d sin leer. Esperando notificaciones nuevas (Ctrl-C para salir)...\n", n.UnreadCount())

			return n.Poll(cmd.Context(), interval, func(items []model.Notification, err error) {
				if err != nil {
					e.printf("! %s\n", store.UserMessage(err))
					return
				}
				for _, item := range items {
					if seen[item.ID] {
						continue
					}
					seen[item.ID] = true
					e.printf("[%s] %s: %s\n", item.Type.Label(), item.Title, item.Message)
				}
			})
		},
	}
	watch.Flags().DurationVar(&interval, "interval", 0, "intervalo de sondeo (por defecto NOTIFICATION_POLL_INTERVAL)")

	var out string
	export := &cobra.Command{
		Use:   "export",
		Short: "Exportar las notificaciones programadas como iCalendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := load(cmd)
			if err != nil {
				return err
			}

			var w io.Writer = e.out
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return calendar.Write(w, calendar.Build(e.app.Cfg.AppName, n.Scheduled(), time.Now()))
		},
	}
	export.Flags().StringVarP(&out, "output", "o", "", "archivo de salida (stdout por defecto)")

	cmd.AddCommand(list, create, read, readAll, del, watch, export)
	return cmd
}

func writeNotifications(w io.Writer, items []model.Notification) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t\tTIPO\tTÍTULO\tFECHA")
	for _, item := range items {
		mark := " "
		if !item.Read {
			mark = "*"
		}
		when := item.CreatedAt
		if item.ScheduledAt != nil {
			when = item.ScheduledAt
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", item.ID, mark, item.Type.Label(), item.Title, ui.FormatDateTime(when))
	}
	return tw.Flush()
}
