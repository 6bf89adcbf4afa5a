package cmd

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/lockout"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/session"
	"github.com/Dianagomez24/FrontFilLife/internal/validation"
)

func loginCmd(e *env) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var err error
			if email == "" {
				email, err = e.ask("Email", "")
				if err != nil {
					return err
				}
			}
			email = strings.ToLower(strings.TrimSpace(email))
			if err := validation.ValidateEmail(email); err != nil {
				return errors.New("Por favor ingresa un email válido")
			}

			// The lockout lives only as long as this process, so it bounds the retry loop.
			guard := lockout.New(e.app.Cfg.LoginMaxAttempts, e.app.Cfg.LoginLockout)
			interactive := password == ""

			for {
				if st, err := guard.Check(email); errors.Is(err, lockout.ErrLocked) {
					return fmt.Errorf("Demasiados intentos. Espera %d segundos", int(math.Ceil(st.Remaining.Seconds())))
				}

				if interactive {
					password, err = e.askSecret("Contraseña")
					if err != nil {
						return err
					}
				}
				if len(password) < validation.MinPasswordLength {
					if !interactive {
						return errors.New("La contraseña debe tener al menos 6 caracteres")
					}
					e.printf("La contraseña debe tener al menos 6 caracteres\n")
					continue
				}

				resp, err := e.app.AuthService.Login(ctx, model.LoginRequest{Email: email, Password: password})
				if err == nil {
					guard.Succeed(email)
					_, err = e.app.Sessions.Start(ctx, session.CLIKey, resp)
					if err != nil {
						return fmt.Errorf("failed to store session: %w", err)
					}
					e.printf("Bienvenido, %s\n", resp.User.FullName())
					return nil
				}

				st := guard.Fail(email)
				msg, retry := cliLoginError(err, st)
				if !interactive || !retry {
					return errors.New(msg)
				}
				e.printf("%s\n", msg)
			}
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "email de la cuenta")
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (se pide si se omite)")
	return cmd
}

// cliLoginError returns the copy for a failed login and whether asking for the
// password again can help.
func cliLoginError(err error, st lockout.Status) (string, bool) {
	if st.Locked {
		return fmt.Sprintf("Demasiados intentos fallidos. Cuenta bloqueada por %d minutos.", int(math.Ceil(st.Remaining.Minutes()))), false
	}

	switch backend.StatusCode(err) {
	case http.StatusUnauthorized:
		msg := strings.ToLower(backend.Message(err, ""))
		if strings.Contains(msg, "verific") || strings.Contains(msg, "verify") {
			return "Debes verificar tu email antes de iniciar sesión. Ejecuta: fitlife resend <email>", false
		}
		return fmt.Sprintf("Email o contraseña incorrectos. Intentos restantes: %d", st.Left), true
	case http.StatusForbidden:
		return "Debes verificar tu email antes de iniciar sesión. Ejecuta: fitlife resend <email>", false
	case http.StatusTooManyRequests:
		return "Demasiados intentos. Por favor espera antes de intentar nuevamente.", false
	}
	return "Error al iniciar sesión. Intenta de nuevo.", false
}

func logoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := e.app.Sessions.End(cmd.Context(), session.CLIKey)
			if err != nil {
				return err
			}
			e.printf("Sesión cerrada\n")
			return nil
		},
	}
}

func registerCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Crear una cuenta",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req model.RegisterRequest
			var confirm string
			var err error

			for _, f := range []struct {
				label  string
				dst    *string
				secret bool
			}{
				{"Nombre", &req.Name, false},
				{"Apellidos", &req.Surname, false},
				{"Email", &req.Email, false},
				{"Contraseña", &req.Password, true},
				{"Confirmar contraseña", &confirm, true},
			} {
				if f.secret {
					*f.dst, err = e.askSecret(f.label)
				} else {
					*f.dst, err = e.ask(f.label, "")
				}
				if err != nil {
					return err
				}
			}

			for _, check := range []error{
				validation.ValidateName(req.Name),
				validation.ValidateName(req.Surname),
				validation.ValidateEmail(req.Email),
				validation.ValidatePassword(req.Password),
				validation.ValidatePasswordStrength(req.Password),
				validation.ValidatePasswordConfirmation(req.Password, confirm),
			} {
				if check != nil {
					return check
				}
			}

			_, err = e.app.AuthService.Register(cmd.Context(), req)
			if backend.StatusCode(err) == http.StatusConflict {
				return errors.New("Este email ya está registrado")
			}
			if err != nil {
				return errors.New(backend.Message(err, "Error al crear la cuenta. Intenta de nuevo."))
			}

			e.printf("Cuenta creada. Revisa tu correo (%s) para verificar tu email.\n", strings.ToLower(req.Email))
			return nil
		},
	}
}

func verifyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token>",
		Short: "Verificar el email con el token recibido",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := e.app.AuthService.VerifyEmail(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				switch backend.StatusCode(err) {
				case http.StatusBadRequest:
					return errors.New("Token de verificación inválido o expirado")
				case http.StatusNotFound:
					return errors.New("Token no encontrado")
				}
				return errors.New("Error al verificar el email. Intenta de nuevo.")
			}
			e.printf("Email verificado. Ya puedes iniciar sesión.\n")
			return nil
		},
	}
}

func resendCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "resend <email>",
		Short: "Reenviar el correo de verificación",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := e.app.AuthService.ResendVerification(cmd.Context(), args[0])
			if err != nil {
				switch backend.StatusCode(err) {
				case http.StatusNotFound:
					return errors.New("Usuario no encontrado")
				case http.StatusBadRequest:
					return errors.New("El email ya está verificado")
				}
				return errors.New("Error al reenviar verificación. Intenta de nuevo.")
			}
			e.printf("Email enviado. Revisa tu bandeja de entrada.\n")
			return nil
		},
	}
}

func whoamiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar el usuario de la sesión",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.app.Sessions.Current(cmd.Context(), session.CLIKey)
			if err != nil {
				return err
			}

			p, err := e.app.UserService.Profile(cmd.Context())
			if err != nil {
				return err
			}

			e.printf("%s %s <%s>\n", p.Name, p.Surname, p.Email)
			e.printf("Datos de salud: %s\n", yesNo(s.User.HasHealthData || p.HealthProfile != nil))
			e.printf("Sesión válida hasta: %s\n", s.ExpiresAt.Local().Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}
