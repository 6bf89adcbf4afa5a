package handler

import (
	"context"
	"errors"
	"fmt"
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

const nutritionPlansURL = "/app/nutrition-plans"

type NutritionPlanService interface {
	store.NutritionPlanService
	ByID(ctx context.Context, id int64) (*model.NutritionPlan, error)
}

type NutritionPlanHandler struct {
	svc NutritionPlanService
}

func NewNutritionPlanHandler(svc NutritionPlanService) *NutritionPlanHandler {
	return &NutritionPlanHandler{svc: svc}
}

func (h *NutritionPlanHandler) PlansPage(w http.ResponseWriter, r *http.Request) {
	plans := store.NewNutritionPlans(h.svc)
	err := plans.Load(r.Context())
	if sessionExpired(w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to load nutrition plans", "error", err, "user_id", userID(r))
	}
	h.renderList(w, r, plans)
}

func (h *NutritionPlanHandler) renderList(w http.ResponseWriter, r *http.Request, plans *store.NutritionPlans) {
	filter := r.URL.Query().Get("filter")
	items := plans.Items()
	if filter == pages.FilterActive {
		items = plans.Active()
	}
	ui.RenderView(w, r, pages.NutritionPlans(pages.NutritionPlansProps{
		Plans:  items,
		Total:  len(plans.Items()),
		Filter: filter,
		Error:  plans.Err(),
	}))
}

func (h *NutritionPlanHandler) PlanPage(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plan(w, r)
	if !ok {
		return
	}
	ui.RenderView(w, r, pages.NutritionPlan(pages.NutritionPlanProps{Plan: *plan}))
}

func (h *NutritionPlanHandler) NewPlanPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderView(w, r, pages.NutritionPlanForm(pages.NutritionPlanFormProps{
		Draft: form.NewNutritionPlanDraft(),
	}))
}

func (h *NutritionPlanHandler) EditPlanPage(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plan(w, r)
	if !ok {
		return
	}
	ui.RenderView(w, r, pages.NutritionPlanForm(pages.NutritionPlanFormProps{
		PlanID: plan.ID,
		Draft:  form.NutritionPlanDraftFromPlan(*plan),
	}))
}

// plan loads the plan named in the path, rendering 404 when it does not exist.
func (h *NutritionPlanHandler) plan(w http.ResponseWriter, r *http.Request) (*model.NutritionPlan, bool) {
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
		slog.Error("failed to load nutrition plan", "error", err, "user_id", userID(r), "plan_id", id)
		http.Error(w, "Error al cargar el plan", http.StatusBadGateway)
		return nil, false
	}
	return plan, true
}

// CreatePlan handles every submit of the new-plan form: row edits re-render the draft,
// "save" validates and creates.
func (h *NutritionPlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, 0)
}

func (h *NutritionPlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		NewHomeHandler().NotFoundPage(w, r)
		return
	}
	h.submit(w, r, id)
}

// ValidatePlan re-renders the submit controls for the current draft, disabled while it is invalid.
func (h *NutritionPlanHandler) ValidatePlan(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Formulario inválido", http.StatusBadRequest)
		return
	}

	id, _ := strconv.ParseInt(r.PostForm.Get("id"), 10, 64)
	props := pages.NutritionPlanFormProps{
		PlanID: id,
		Draft:  form.NutritionPlanDraftFromValues(r.PostForm),
	}
	ui.Render(w, r, pages.NutritionPlanForm(props).Block("submit"))
}

func (h *NutritionPlanHandler) submit(w http.ResponseWriter, r *http.Request, id int64) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Formulario inválido", http.StatusBadRequest)
		return
	}

	props := pages.NutritionPlanFormProps{
		PlanID: id,
		Draft:  form.NutritionPlanDraftFromValues(r.PostForm),
	}

	action, idx := rowAction(r.PostForm.Get("action"))
	if action != "" && action != "save" {
		props.Errors = editMeals(props.Draft, action, idx)
		if props.Errors == nil && !knownMealAction(action) {
			http.Error(w, "Acción inválida", http.StatusBadRequest)
			return
		}
		ui.RenderView(w, r, pages.NutritionPlanForm(props))
		return
	}

	props.Errors = props.Draft.Validate()
	if len(props.Errors) > 0 {
		ui.RenderView(w, r, pages.NutritionPlanForm(props))
		return
	}

	plans := store.NewNutritionPlans(h.svc)
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
		slog.Error("failed to save nutrition plan", "error", err, "user_id", userID(r), "plan_id", id)
		props.Error = store.UserMessage(err)
		ui.RenderView(w, r, pages.NutritionPlanForm(props))
		toastError(w, r, "No se pudo guardar", props.Error)
		return
	}

	slog.Info("nutrition plan saved", "user_id", userID(r), "plan_id", id)
	if !ui.IsPartial(r) {
		http.Redirect(w, r, nutritionPlansURL, http.StatusSeeOther)
		return
	}
	w.Header().Set("HX-Push-Url", nutritionPlansURL)
	h.renderList(w, r, plans)
	if id == 0 {
		toastSuccess(w, r, "Plan creado", "Tu plan de nutrición se creó correctamente.")
	} else {
		toastSuccess(w, r, "Plan actualizado", "Los cambios se guardaron correctamente.")
	}
}

func (h *NutritionPlanHandler) TogglePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		NewHomeHandler().NotFoundPage(w, r)
		return
	}

	plans := store.NewNutritionPlans(h.svc)
	err := plans.Load(r.Context())
	if err == nil {
		err = plans.ToggleStatus(r.Context(), id)
	}
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		slog.Error("failed to toggle nutrition plan", "error", err, "user_id", userID(r), "plan_id", id)
		h.renderList(w, r, plans)
		toastError(w, r, "Error", store.UserMessage(err))
		return
	}

	h.renderList(w, r, plans)
}

func (h *NutritionPlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		NewHomeHandler().NotFoundPage(w, r)
		return
	}

	plans := store.NewNutritionPlans(h.svc)
	err := plans.Delete(r.Context(), id)
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		slog.Error("failed to delete nutrition plan", "error", err, "user_id", userID(r), "plan_id", id)
		_ = plans.Load(r.Context())
		h.renderList(w, r, plans)
		toastError(w, r, "Error", store.UserMessage(err))
		return
	}

	slog.Info("nutrition plan deleted", "user_id", userID(r), "plan_id", id)
	h.renderList(w, r, plans)
	toastSuccess(w, r, "Plan eliminado", "")
}

func knownMealAction(action string) bool {
	switch action {
	case "add-meal", "remove-meal", "add-food", "remove-food":
		return true
	}
	return false
}

// editMeals applies a row action to the draft. Removing the last meal or food is refused
// with a field message.
func editMeals(d *form.NutritionPlanDraft, action string, idx []int) form.Errors {
	var err error
	switch {
	case action == "add-meal":
		d.AddMeal()
	case action == "remove-meal" && len(idx) == 1:
		err = d.RemoveMeal(idx[0])
		if errors.Is(err, form.ErrLastRow) {
			return form.Errors{"comidas": "El plan debe tener al menos una comida"}
		}
	case action == "add-food" && len(idx) == 1:
		err = d.AddFood(idx[0])
	case action == "remove-food" && len(idx) == 2:
		err = d.RemoveFood(idx[0], idx[1])
		if errors.Is(err, form.ErrLastRow) {
			return form.Errors{fmt.Sprintf("comidas.%d.alimentos", idx[0]): "Cada comida necesita al menos un alimento"}
		}
	}
	if err != nil {
		slog.Warn("nutrition plan row action failed", "error", err, "action", action)
	}
	return nil
}
