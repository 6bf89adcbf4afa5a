// Package cmd holds the fitlife command-line client.
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dianagomez24/FrontFilLife/internal/app"
	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/config"
	"github.com/Dianagomez24/FrontFilLife/internal/logger"
	"github.com/Dianagomez24/FrontFilLife/internal/session"
	"github.com/Dianagomez24/FrontFilLife/internal/store"
)

// env is shared by every subcommand. It is filled in by the root PersistentPreRunE.
type env struct {
	app   *app.App
	in    io.Reader
	out   io.Writer
	lines *bufio.Reader
}

func Root() *cobra.Command {
	e := &env{in: os.Stdin, out: os.Stdout}
	var verbose bool

	root := &cobra.Command{
		Use:           "fitlife",
		Short:         "FitLife desde la terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadClient()

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger.Setup(logger.Options{
				Dev:       true,
				SentryDSN: cfg.SentryDSN,
				Output:    os.Stderr,
				Component: "cli",
				Level:     level,
			})

			a, err := app.NewCLI(cfg)
			if err != nil {
				return err
			}
			e.app = a
			e.out = cmd.OutOrStdout()
			e.in = cmd.InOrStdin()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if e.app == nil {
				return nil
			}
			return e.app.Close()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log backend calls")

	root.AddCommand(loginCmd(e))
	root.AddCommand(logoutCmd(e))
	root.AddCommand(registerCmd(e))
	root.AddCommand(verifyCmd(e))
	root.AddCommand(resendCmd(e))
	root.AddCommand(whoamiCmd(e))
	root.AddCommand(exerciseCmd(e))
	root.AddCommand(nutritionCmd(e))
	root.AddCommand(notificationsCmd(e))
	root.AddCommand(healthCmd(e))
	root.AddCommand(dashboardCmd(e))

	return root
}

// Message turns a command error into the line shown to the user.
func Message(err error) string {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return "No has iniciado sesión. Ejecuta: fitlife login"
	case errors.Is(err, backend.ErrUnauthorized):
		return "Tu sesión ha expirado. Ejecuta: fitlife login"
	}
	var se *store.Error
	if errors.As(err, &se) {
		return se.Message
	}
	var be *backend.Error
	if errors.As(err, &be) {
		return backend.Message(err, "Ha ocurrido un error. Intenta de nuevo.")
	}
	return err.Error()
}

func (e *env) printf(format string, args ...any) {
	fmt.Fprintf(e.out, format, args...)
}
