package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/form"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/store"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
	"github.com/Dianagomez24/FrontFilLife/internal/ui/pages"
)

const exercisePlansURL = "/app/exercise-plans"

type ExercisePlanService interface {
	store.ExercisePlanService
	ByID(ctx context.Context, id int64) (*model.ExercisePlan, error)
}

type ExercisePlanHandler struct {
	svc ExercisePlanService
}

func NewExercisePlanHandler(svc ExercisePlanService) *ExercisePlanHandler {
	return &ExercisePlanHandler{svc: svc}
}

func (h *ExercisePlanHandler) PlansPage(w http.ResponseWriter, r *http.Request) {
	plans := store.NewExercisePlans(h.svc)
	err := plans.Load(r.Context())
	if sessionExpired(w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to load exercise plans", "error", err, "user_id", userID(r))
	}
	h.renderList(w, r, plans)
}

func (h *ExercisePlanHandler) renderList(w http.ResponseWriter, r *http.Request, plans *store.ExercisePlans) {
	filter := r.URL.Query().Get("filter")
	items := plans.Items()
	if filter == pages.FilterActive {
		items = plans.Active()
	}
	ui.RenderView(w, r, pages.ExercisePlans(pages.ExercisePlansProps{
		Plans:  items,
		Total:  len(plans.Items()),
		Filter: filter,
		Error:  plans.Err(),
	}))
}

func (h *ExercisePlanHandler) PlanPage(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plan(w, r)
	if !ok {
		return
	}
	ui.RenderView(w, r, pages.ExercisePlan(pages.ExercisePlanProps{Plan: *plan}))
}

func (h *ExercisePlanHandler) NewPlanPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderView(w, r, pages.ExercisePlanForm(pages.ExercisePlanFormProps{
		Draft: form.NewExercisePlanDraft(),
	}))
}

func (h *ExercisePlanHandler) EditPlanPage(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plan(w, r)
	if !ok {
		return
	}
	ui.RenderView(w, r, pages.ExercisePlanForm(pages.ExercisePlanFormProps{
		PlanID: plan.ID,
		Draft:  form.ExercisePlanDraftFromPlan(*plan),
	}))
}

// plan loads the plan named in the path, rendering 404 when it does not exist.
func (h *ExercisePlanHandler) plan(w http.ResponseWriter, r *http.Request) (*model.ExercisePlan, bool) {
	id, ok := pathID(r)
	if !ok {
		NewHomeHandler().NotFoundPage(w, r)
		return nil, false
	}

	plan, err := h.svc.ByID(r.Context(), id)
	if err != nil {
		if sessionExpired(w, r, err) {
			return nil, false
		}
		if errors.Is(err, backend.ErrNotFound) {
			NewHomeHandler().NotFoundPage(w, r)
			return nil, false
		}
		slog.Error("failed to load exercise plan", "error", err, "user_id", userID(r), "plan_id", id)
		http.Error(w, "Error al cargar el plan", http.StatusBadGateway)
		return nil, false
	}
	return plan, true
}

// CreatePlan handles every submit of the new-plan form: row edits re-render the draft,
// "save" validates and creates.
func (h *ExercisePlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, 0)
}

func (h *ExercisePlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		NewHomeHandler().NotFoundPage(w, r)
		return
	}
	h.submit(w, r, id)
}

// ValidatePlan re-renders the submit controls for the current draft, disabled while it is invalid.
func (h *ExercisePlanHandler) ValidatePlan(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Formulario inválido", http.StatusBadRequest)
		return
	}

	id, _ := strconv.ParseInt(r.PostForm.Get("id"), 10, 64)
	props := pages.ExercisePlanFormProps{
		PlanID: id,
		Draft:  form.ExercisePlanDraftFromValues(r.PostForm),
	}
	ui.Render(w, r, pages.ExercisePlanForm(props).Block("submit"))
}

func (h *ExercisePlanHandler) submit(w http.ResponseWriter, r *http.Request, id int64) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Formulario inválido", http.StatusBadRequest)
		return
	}

	props := pages.ExercisePlanFormProps{
		PlanID: id,
		Draft:  form.ExercisePlanDraftFromValues(r.PostForm),
	}

	action, idx := rowAction(r.PostForm.Get("action"))
	switch action {
	case "add-exercise":
		props.Draft.AddExercise()
		ui.RenderView(w, r, pages.ExercisePlanForm(props))
		return
	case "remove-exercise":
		if len(idx) != 1 {
			http.Error(w, "Acción inválida", http.StatusBadRequest)
			return
		}
		err := props.Draft.RemoveExercise(idx[0])
		if errors.Is(err, form.ErrLastRow) {
			props.Errors = form.Errors{"ejercicios": "El plan debe tener al menos un ejercicio"}
		}
		ui.RenderView(w, r, pages.ExercisePlanForm(props))
		return
	}

	props.Errors = props.Draft.Validate()
	if len(props.Errors) > 0 {
		ui.RenderView(w, r, pages.ExercisePlanForm(props))
		return
	}

	plans := store.NewExercisePlans(h.svc)
	if id == 0 {
		req, _ := props.Draft.CreateRequest()
		_, err = plans.Create(r.Context(), req)
	} else {
		req, _ := props.Draft.UpdateRequest()
		_, err = plans.Update(r.Context(), id, req)
	}
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		slog.Error("failed to save exercise plan", "error", err, "user_id", userID(r), "plan_id", id)
		props.Error = store.UserMessage(err)
		ui.RenderView(w, r, pages.ExercisePlanForm(props))
		toastError(w, r, "No se pudo guardar", props.Error)
		return
	}

	slog.Info("exercise plan saved", "user_id", userID(r), "plan_id", id)
	if !ui.IsPartial(r) {
		http.Redirect(w, r, exercisePlansURL, http.StatusSeeOther)
		return
	}
	w.Header().Set("HX-Push-Url", exercisePlansURL)
	h.renderList(w, r, plans)
	if id == 0 {
		toastSuccess(w, r, "Plan creado", "Tu plan de ejercicio se creó correctamente.")
	} else {
		toastSuccess(w, r, "Plan actualizado", "Los cambios se guardaron correctamente.")
	}
}

func (h *ExercisePlanHandler) TogglePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		NewHomeHandler().NotFoundPage(w, r)
		return
	}

	plans := store.NewExercisePlans(h.svc)
	err := plans.Load(r.Context())
	if err == nil {
		err = plans.ToggleStatus(r.Context(), id)
	}
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		slog.Error("failed to toggle exercise plan", "error", err, "user_id", userID(r), "plan_id", id)
		h.renderList(w, r, plans)
		toastError(w, r, "Error", store.UserMessage(err))
		return
	}

	h.renderList(w, r, plans)
}

func (h *ExercisePlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		NewHomeHandler().NotFoundPage(w, r)
		return
	}

	plans := store.NewExercisePlans(h.svc)
	err := plans.Delete(r.Context(), id)
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		slog.Error("failed to delete exercise plan", "error", err, "user_id", userID(r), "plan_id", id)
		_ = plans.Load(r.Context())
		h.renderList(w, r, plans)
		toastError(w, r, "Error", store.UserMessage(err))
		return
	}

	slog.Info("exercise plan deleted", "user_id", userID(r), "plan_id", id)
	h.renderList(w, r, plans)
	toastSuccess(w, r, "Plan eliminado", "")
}
