package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
	"github.com/Dianagomez24/FrontFilLife/internal/form"
	"github.com/Dianagomez24/FrontFilLife/internal/lockout"
	"github.com/Dianagomez24/FrontFilLife/internal/middleware"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/session"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
	"github.com/Dianagomez24/FrontFilLife/internal/ui/pages"
	"github.com/Dianagomez24/FrontFilLife/internal/validation"
)

// AuthService is the part of service.AuthService the pages need.
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.Ack, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	VerifyEmail(ctx context.Context, token string) (*model.Ack, error)
	ResendVerification(ctx context.Context, email string) (*model.Ack, error)
}

type AuthHandler struct {
	auth     AuthService
	sessions *session.Manager
	cookies  *session.Cookies
	guard    *lockout.Guard
}

func NewAuthHandler(auth AuthService, sessions *session.Manager, cookies *session.Cookies, guard *lockout.Guard) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		cookies:  cookies,
		guard:    guard,
	}
}

// lockKey identifies the browser. The CSRF cookie is per browser and always present here.
func lockKey(r *http.Request) string {
	if token := ctxkeys.CSRFToken(r.Context()); token != "" {
		return "web:" + token
	}
	return "ip:" + r.RemoteAddr
}

func minutes(d time.Duration) int {
	return int(math.Ceil(d.Minutes()))
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	props := pages.LoginProps{Email: q.Get("email")}

	switch {
	case ctxkeys.User(r.Context()) != nil:
		middleware.Redirect(w, r, "/app/dashboard")
		return
	case q.Get("expired") == "1":
		props.Notice = "Tu sesión ha expirado. Inicia sesión de nuevo."
	case q.Get("verified") == "1":
		props.Notice = "Email verificado. Ya puedes iniciar sesión."
	}

	st, err := h.guard.Check(lockKey(r))
	if errors.Is(err, lockout.ErrLocked) {
		props.Locked = true
		props.LockedMinutes = minutes(st.Remaining)
	}

	ui.RenderView(w, r, pages.Login(props))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	props := pages.LoginProps{Email: email}
	key := lockKey(r)

	st, err := h.guard.Check(key)
	if errors.Is(err, lockout.ErrLocked) {
		props.Locked = true
		props.LockedMinutes = minutes(st.Remaining)
		props.Error = fmt.Sprintf("Demasiados intentos. Espera %d segundos", int(math.Ceil(st.Remaining.Seconds())))
		ui.RenderView(w, r, pages.Login(props))
		return
	}

	switch {
	case email == "" || password == "":
		props.Error = "Por favor completa todos los campos"
	case validation.ValidateEmail(email) != nil:
		props.Error = "Por favor ingresa un email válido"
	case len(password) < validation.MinPasswordLength:
		props.Error = "La contraseña debe tener al menos 6 caracteres"
	}
	if props.Error != "" {
		ui.RenderView(w, r, pages.Login(props))
		return
	}

	resp, err := h.auth.Login(r.Context(), model.LoginRequest{Email: email, Password: password})
	if err != nil {
		st := h.guard.Fail(key)
		props.Error, props.NeedsVerification = loginError(err, st)
		props.Locked = st.Locked
		props.LockedMinutes = minutes(st.Remaining)
		slog.Warn("login failed", "error", err, "email", email, "attempts", st.Attempts, "locked", st.Locked)
		ui.RenderView(w, r, pages.Login(props))
		return
	}
	h.guard.Succeed(key)

	s, err := h.sessions.Start(r.Context(), "", resp)
	if err != nil {
		slog.Error("failed to start session", "error", err, "user_id", resp.User.ID)
		props.Error = "Error al iniciar sesión. Intenta de nuevo."
		ui.RenderView(w, r, pages.Login(props))
		return
	}

	err = h.cookies.Set(w, s.ID, s.ExpiresAt)
	if err != nil {
		slog.Error("failed to set session cookie", "error", err, "user_id", resp.User.ID)
		props.Error = "Error al iniciar sesión. Intenta de nuevo."
		ui.RenderView(w, r, pages.Login(props))
		return
	}

	slog.Info("user logged in", "user_id", resp.User.ID)
	middleware.Redirect(w, r, "/app/dashboard")
}

// loginError maps a failed login to the message shown above the form and whether
// to offer a new verification mail.
func loginError(err error, st lockout.Status) (string, bool) {
	if st.Locked {
		return fmt.Sprintf("Demasiados intentos fallidos. Cuenta bloqueada por %d minutos.", minutes(st.Remaining)), false
	}

	switch backend.StatusCode(err) {
	case http.StatusUnauthorized:
		msg := strings.ToLower(backend.Message(err, ""))
		if strings.Contains(msg, "verific") || strings.Contains(msg, "verify") {
			return "Debes verificar tu email antes de iniciar sesión", true
		}
		return fmt.Sprintf("Email o contraseña incorrectos. Intentos restantes: %d", st.Left), false
	case http.StatusForbidden:
		return "Debes verificar tu email antes de iniciar sesión", true
	case http.StatusTooManyRequests:
		return "Demasiados intentos. Por favor espera antes de intentar nuevamente.", false
	}
	return "Error al iniciar sesión. Intenta de nuevo.", false
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderView(w, r, pages.Register(pages.RegisterProps{}))
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	props := pages.RegisterProps{
		Name:    strings.TrimSpace(r.FormValue("nombre")),
		Surname: strings.TrimSpace(r.FormValue("apellidos")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Errors:  form.Errors{},
	}
	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")

	if err := validation.ValidateName(props.Name); err != nil {
		props.Errors["nombre"] = err.Error()
	}
	if err := validation.ValidateName(props.Surname); err != nil {
		props.Errors["apellidos"] = err.Error()
	}
	if err := validation.ValidateEmail(props.Email); err != nil {
		props.Errors["email"] = err.Error()
	}
	if err := validation.ValidatePassword(password); err != nil {
		props.Errors["password"] = err.Error()
	} else if err := validation.ValidatePasswordStrength(password); err != nil {
		props.Errors["password"] = err.Error()
	}
	if err := validation.ValidatePasswordConfirmation(password, confirm); err != nil {
		props.Errors["confirmPassword"] = err.Error()
	}
	if len(props.Errors) > 0 {
		ui.RenderView(w, r, pages.Register(props))
		return
	}

	_, err := h.auth.Register(r.Context(), model.RegisterRequest{
		Name:     props.Name,
		Surname:  props.Surname,
		Email:    props.Email,
		Password: password,
	})
	if err != nil {
		slog.Warn("registration failed", "error", err, "email", props.Email)
		if backend.StatusCode(err) == http.StatusConflict {
			props.Error = "Este email ya está registrado"
		} else {
			props.Error = backend.Message(err, "Error al crear la cuenta. Intenta de nuevo.")
		}
		ui.RenderView(w, r, pages.Register(props))
		return
	}

	slog.Info("user registered", "email", props.Email)
	middleware.Redirect(w, r, "/auth/verify-email?email="+url.QueryEscape(strings.ToLower(props.Email)))
}

// VerifyEmailPage verifies the token from the mail link, or shows the "check your inbox"
// page when there is none.
func (h *AuthHandler) VerifyEmailPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	props := pages.VerifyEmailProps{Email: q.Get("email")}

	token := strings.TrimSpace(q.Get("token"))
	if token == "" {
		ui.RenderView(w, r, pages.VerifyEmail(props))
		return
	}

	_, err := h.auth.VerifyEmail(r.Context(), token)
	if err != nil {
		slog.Warn("email verification failed", "error", err)
		switch backend.StatusCode(err) {
		case http.StatusBadRequest:
			props.Error = "Token de verificación inválido o expirado"
		case http.StatusNotFound:
			props.Error = "Token no encontrado"
		default:
			props.Error = "Error al verificar el email. Intenta de nuevo."
		}
		ui.RenderView(w, r, pages.VerifyEmail(props))
		return
	}

	props.Verified = true
	ui.RenderView(w, r, pages.VerifyEmail(props))
}

func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	props := pages.VerifyEmailProps{Email: email}

	if email == "" {
		props.Error = "Por favor ingresa tu email primero"
		ui.RenderView(w, r, pages.VerifyEmail(props))
		return
	}

	_, err := h.auth.ResendVerification(r.Context(), email)
	if err != nil {
		slog.Warn("resend verification failed", "error", err, "email", email)
		switch backend.StatusCode(err) {
		case http.StatusNotFound:
			props.Error = "Usuario no encontrado"
		case http.StatusBadRequest:
			props.Error = "El email ya está verificado"
		default:
			props.Error = "Error al reenviar verificación. Intenta de nuevo."
		}
		ui.RenderView(w, r, pages.VerifyEmail(props))
		return
	}

	props.Sent = true
	ui.RenderView(w, r, pages.VerifyEmail(props))
	toastSuccess(w, r, "Email enviado", "Revisa tu bandeja de entrada.")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sid := ctxkeys.SessionID(r.Context()); sid != "" {
		err := h.sessions.End(r.Context(), sid)
		if err != nil {
			slog.Error("failed to end session", "error", err, "session_id", sid)
		}
	}
	h.cookies.Clear(w)
	slog.Info("user logged out", "user_id", userID(r))
	middleware.Redirect(w, r, "/auth/login")
}
