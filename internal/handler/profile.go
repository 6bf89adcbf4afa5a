package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
	"github.com/Dianagomez24/FrontFilLife/internal/form"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/session"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
	"github.com/Dianagomez24/FrontFilLife/internal/ui/pages"
	"github.com/Dianagomez24/FrontFilLife/internal/validation"
)

type UserService interface {
	Profile(ctx context.Context) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, req model.UpdateUserRequest) (*model.UserProfile, error)
}

type ProfileHandler struct {
	users    UserService
	sessions *session.Manager
}

func NewProfileHandler(users UserService, sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{
		users:    users,
		sessions: sessions,
	}
}

func (h *ProfileHandler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	p, err := h.users.Profile(r.Context())
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		slog.Error("failed to load profile", "error", err, "user_id", userID(r))
		// fall back to the session snapshot
		props := pages.ProfileProps{Error: "Error al cargar el perfil"}
		if u := ctxkeys.User(r.Context()); u != nil {
			props.Name, props.Surname, props.Email = u.Name, u.Surname, u.Email
		}
		ui.RenderView(w, r, pages.Profile(props))
		return
	}

	ui.RenderView(w, r, pages.Profile(pages.ProfileProps{
		Name:    p.Name,
		Surname: p.Surname,
		Email:   p.Email,
		Health:  p.HealthProfile,
	}))
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	props := pages.ProfileProps{
		Name:    strings.TrimSpace(r.FormValue("nombre")),
		Surname: strings.TrimSpace(r.FormValue("apellidos")),
		Email:   strings.ToLower(strings.TrimSpace(r.FormValue("email"))),
		Errors:  form.Errors{},
	}

	if err := validation.ValidateName(props.Name); err != nil {
		props.Errors["nombre"] = err.Error()
	}
	if err := validation.ValidateName(props.Surname); err != nil {
		props.Errors["apellidos"] = err.Error()
	}
	if err := validation.ValidateEmail(props.Email); err != nil {
		props.Errors["email"] = err.Error()
	}
	if len(props.Errors) > 0 {
		ui.RenderView(w, r, pages.Profile(props))
		return
	}

	updated, err := h.users.UpdateProfile(r.Context(), model.UpdateUserRequest{
		Name:    &props.Name,
		Surname: &props.Surname,
		Email:   &props.Email,
	})
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		slog.Error("failed to update profile", "error", err, "user_id", userID(r))
		props.Error = backend.Message(err, "Error al actualizar el perfil")
		ui.RenderView(w, r, pages.Profile(props))
		toastError(w, r, "No se pudo guardar", props.Error)
		return
	}

	if user := ctxkeys.User(r.Context()); user != nil {
		snapshot := *user
		snapshot.Name, snapshot.Surname, snapshot.Email = updated.Name, updated.Surname, updated.Email
		err = h.sessions.UpdateUser(r.Context(), ctxkeys.SessionID(r.Context()), snapshot)
		if err != nil {
			slog.Warn("failed to refresh session user", "error", err, "user_id", user.ID)
		}
	}

	slog.Info("profile updated", "user_id", userID(r))
	ui.RenderView(w, r, pages.Profile(pages.ProfileProps{
		Name:    updated.Name,
		Surname: updated.Surname,
		Email:   updated.Email,
		Health:  updated.HealthProfile,
	}))
	toastSuccess(w, r, "Perfil actualizado", "")
}
