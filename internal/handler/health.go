package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/questionnaire"
	"github.com/Dianagomez24/FrontFilLife/internal/service"
	"github.com/Dianagomez24/FrontFilLife/internal/session"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
	"github.com/Dianagomez24/FrontFilLife/internal/ui/pages"
)

type HealthDataService interface {
	questionnaire.Saver
	Get(ctx context.Context) (*model.HealthProfile, error)
}

type HealthHandler struct {
	svc      HealthDataService
	sessions *session.Manager
}

func NewHealthHandler(svc HealthDataService, sessions *session.Manager) *HealthHandler {
	return &HealthHandler{
		svc:      svc,
		sessions: sessions,
	}
}

// profile returns nil (no error) when the questionnaire was never filled in.
func (h *HealthHandler) profile(w http.ResponseWriter, r *http.Request) (*model.HealthProfile, bool) {
	p, err := h.svc.Get(r.Context())
	if errors.Is(err, service.ErrNoHealthProfile) {
		return nil, true
	}
	if err != nil {
		if sessionExpired(w, r, err) {
			return nil, false
		}
		slog.Error("failed to load health profile", "error", err, "user_id", userID(r))
		ui.RenderView(w, r, pages.Health(questionnaire.New(), "Error al cargar tus datos de salud"))
		return nil, false
	}
	return p, true
}

// HealthPage shows the saved profile, or the questionnaire intro when there is none.
func (h *HealthHandler) HealthPage(w http.ResponseWriter, r *http.Request) {
	p, ok := h.profile(w, r)
	if !ok {
		return
	}
	ui.RenderView(w, r, pages.Health(questionnaire.Resume(p), ""))
}

func (h *HealthHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	p, ok := h.profile(w, r)
	if !ok {
		return
	}
	q := questionnaire.Resume(p)
	q.Edit()
	ui.RenderView(w, r, pages.Health(q, ""))
}

// Step moves the questionnaire: "next" and "back" navigate, "submit" saves.
func (h *HealthHandler) Step(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Formulario inválido", http.StatusBadRequest)
		return
	}

	step, _ := strconv.Atoi(r.PostForm.Get("step"))
	q := questionnaire.At(questionnaire.Step(step), questionnaire.DraftFromValues(r.PostForm))

	switch r.PostForm.Get("action") {
	case "back":
		q.Back()
	case "submit":
		h.submit(w, r, q)
		return
	default:
		err = q.Next()
		if errors.Is(err, questionnaire.ErrStepIncomplete) {
			ui.RenderView(w, r, pages.Health(q, "Por favor completa todos los campos requeridos"))
			return
		}
	}
	ui.RenderView(w, r, pages.Health(q, ""))
}

func (h *HealthHandler) submit(w http.ResponseWriter, r *http.Request, q *questionnaire.Questionnaire) {
	_, err := q.Submit(r.Context(), h.svc)
	if errors.Is(err, questionnaire.ErrStepIncomplete) {
		ui.RenderView(w, r, pages.Health(q, "Por favor completa todos los campos requeridos"))
		return
	}
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		slog.Error("failed to save health profile", "error", err, "user_id", userID(r))
		msg := backend.Message(err, "Error al guardar los datos. Intenta de nuevo.")
		ui.RenderView(w, r, pages.Health(q, msg))
		toastError(w, r, "No se pudo guardar", msg)
		return
	}

	if user := ctxkeys.User(r.Context()); user != nil && !user.HasHealthData {
		updated := *user
		updated.HasHealthData = true
		err = h.sessions.UpdateUser(r.Context(), ctxkeys.SessionID(r.Context()), updated)
		if err != nil {
			slog.Warn("failed to refresh session user", "error", err, "user_id", user.ID)
		}
	}

	slog.Info("health profile saved", "user_id", userID(r))
	w.Header().Set("HX-Push-Url", "/app/health")
	ui.RenderView(w, r, pages.Health(q, ""))
	toastSuccess(w, r, "Datos guardados", "Tu perfil de salud está actualizado.")
}
