package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

func samplePlans() []model.ExercisePlan {
	return []model.ExercisePlan{
		{ID: 1, Name: "Fuerza total", Description: "Tren superior", DurationMinutes: 45, Difficulty: model.DifficultyIntermediate, Active: true,
			Exercises: []model.Exercise{{Name: "Press banca", Sets: 4, Reps: "8-10", Rest: "90s"}}},
		{ID: 2, Name: "Cardio suave", Description: "Caminata", DurationMinutes: 30, Difficulty: model.DifficultyBeginner, Active: false},
	}
}

func validExerciseForm() url.Values {
	return url.Values{
		"nombre":                 {"Piernas"},
		"descripcion":            {"Día de pierna"},
		"duracionMinutos":        {"50"},
		"nivelDificultad":        {"avanzado"},
		"ejercicio_nombre":       {"Sentadilla"},
		"ejercicio_series":       {"5"},
		"ejercicio_repeticiones": {"5"},
		"ejercicio_descanso":     {"120s"},
		"ejercicio_peso":         {"80"},
		"ejercicio_duracion":     {""},
		"ejercicio_notas":        {""},
	}
}

func TestExercisePlansPage(t *testing.T) {
	h := NewExercisePlanHandler(newFakeExercisePlans(samplePlans()...))

	w := httptest.NewRecorder()
	h.PlansPage(w, newRequest(http.MethodGet, "/app/exercise-plans", nil, false))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<html")
	assert.Contains(t, body, "Fuerza total")
	assert.Contains(t, body, "Cardio suave")
}

func TestExercisePlansPageActiveFilter(t *testing.T) {
	h := NewExercisePlanHandler(newFakeExercisePlans(samplePlans()...))

	w := httptest.NewRecorder()
	h.PlansPage(w, newRequest(http.MethodGet, "/app/exercise-plans?filter=active", nil, true))

	body := w.Body.String()
	assert.NotContains(t, body, "<html", "htmx navigation gets only the content")
	assert.Contains(t, body, "Fuerza total")
	assert.NotContains(t, body, "Cardio suave")
}

func TestExercisePlansPageEmpty(t *testing.T) {
	h := NewExercisePlanHandler(newFakeExercisePlans())

	w := httptest.NewRecorder()
	h.PlansPage(w, newRequest(http.MethodGet, "/app/exercise-plans", nil, true))

	assert.Contains(t, w.Body.String(), "Aún no tienes planes de ejercicio")
}

func TestExercisePlansPageSessionExpired(t *testing.T) {
	svc := newFakeExercisePlans()
	svc.listErr = errUnauthorized
	h := NewExercisePlanHandler(svc)

	w := httptest.NewRecorder()
	h.PlansPage(w, newRequest(http.MethodGet, "/app/exercise-plans", nil, true))

	assert.Equal(t, "/auth/login?expired=1", w.Header().Get("HX-Redirect"))

	w = httptest.NewRecorder()
	h.PlansPage(w, newRequest(http.MethodGet, "/app/exercise-plans", nil, false))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/login?expired=1", w.Header().Get("Location"))
}

func TestExercisePlansPageLoadError(t *testing.T) {
	svc := newFakeExercisePlans()
	svc.listErr = errServer
	h := NewExercisePlanHandler(svc)

	w := httptest.NewRecorder()
	h.PlansPage(w, newRequest(http.MethodGet, "/app/exercise-plans", nil, true))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Error al cargar los planes")
}

func TestExercisePlanPage(t *testing.T) {
	h := NewExercisePlanHandler(newFakeExercisePlans(samplePlans()...))

	r := newRequest(http.MethodGet, "/app/exercise-plans/1", nil, true)
	r.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.PlanPage(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Press banca")
}

func TestExercisePlanPageNotFound(t *testing.T) {
	h := NewExercisePlanHandler(newFakeExercisePlans(samplePlans()...))

	for _, id := range []string{"99", "abc", "-1"} {
		r := newRequest(http.MethodGet, "/app/exercise-plans/"+id, nil, false)
		r.SetPathValue("id", id)
		w := httptest.NewRecorder()
		h.PlanPage(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code, id)
	}
}

func TestCreateExercisePlanAddsRow(t *testing.T) {
	svc := newFakeExercisePlans()
	h := NewExercisePlanHandler(svc)

	form := validExerciseForm()
	form.Set("action", "add-exercise")
	w := httptest.NewRecorder()
	h.CreatePlan(w, newRequest(http.MethodPost, "/app/exercise-plans", form, true))

	body := w.Body.String()
	assert.Equal(t, 2, strings.Count(body, `name="ejercicio_nombre"`))
	assert.Contains(t, body, `value="Sentadilla"`)
	assert.Empty(t, svc.created, "row edits never reach the backend")
}

func TestCreateExercisePlanRemoveLastRow(t *testing.T) {
	svc := newFakeExercisePlans()
	h := NewExercisePlanHandler(svc)

	form := validExerciseForm()
	form.Set("action", "remove-exercise:0")
	w := httptest.NewRecorder()
	h.CreatePlan(w, newRequest(http.MethodPost, "/app/exercise-plans", form, true))

	body := w.Body.String()
	assert.Equal(t, 1, strings.Count(body, `name="ejercicio_nombre"`))
	assert.Contains(t, body, "El plan debe tener al menos un ejercicio")
}

func TestCreateExercisePlanValidation(t *testing.T) {
	svc := newFakeExercisePlans()
	h := NewExercisePlanHandler(svc)

	form := validExerciseForm()
	form.Set("nombre", "  ")
	form.Set("ejercicio_series", "muchas")
	form.Set("action", "save")
	w := httptest.NewRecorder()
	h.CreatePlan(w, newRequest(http.MethodPost, "/app/exercise-plans", form, true))

	body := w.Body.String()
	assert.Contains(t, body, "Este campo es requerido")
	assert.Contains(t, body, "Debe ser un número válido")
	assert.Empty(t, svc.created)
}

func TestCreateExercisePlan(t *testing.T) {
	svc := newFakeExercisePlans(samplePlans()...)
	h := NewExercisePlanHandler(svc)

	form := validExerciseForm()
	form.Set("action", "save")
	w := httptest.NewRecorder()
	h.CreatePlan(w, newRequest(http.MethodPost, "/app/exercise-plans", form, true))

	require.Len(t, svc.created, 1)
	req := svc.created[0]
	assert.Equal(t, "Piernas", req.Name)
	assert.Equal(t, model.DifficultyAdvanced, req.Difficulty)
	require.Len(t, req.Exercises, 1)
	assert.Equal(t, 5, req.Exercises[0].Sets)
	require.NotNil(t, req.Exercises[0].Weight)
	assert.Equal(t, 80.0, *req.Exercises[0].Weight)
	assert.Nil(t, req.Exercises[0].Duration)

	assert.Equal(t, "/app/exercise-plans", w.Header().Get("HX-Push-Url"))
	body := w.Body.String()
	assert.Contains(t, body, "Piernas", "the reloaded list includes the new plan")
	assert.Contains(t, body, "Plan creado")
	assert.Contains(t, body, `hx-swap-oob="beforeend:#toast-container"`)
}

func TestCreateExercisePlanWithoutHTMXRedirects(t *testing.T) {
	svc := newFakeExercisePlans()
	h := NewExercisePlanHandler(svc)

	form := validExerciseForm()
	form.Set("action", "save")
	w := httptest.NewRecorder()
	h.CreatePlan(w, newRequest(http.MethodPost, "/app/exercise-plans", form, false))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/app/exercise-plans", w.Header().Get("Location"))
	assert.Len(t, svc.created, 1)
}

func TestCreateExercisePlanBackendError(t *testing.T) {
	svc := newFakeExercisePlans()
	svc.saveErr = errServer
	h := NewExercisePlanHandler(svc)

	form := validExerciseForm()
	form.Set("action", "save")
	w := httptest.NewRecorder()
	h.CreatePlan(w, newRequest(http.MethodPost, "/app/exercise-plans", form, true))

	body := w.Body.String()
	assert.Contains(t, body, "Error al crear el plan")
	assert.Contains(t, body, `value="Piernas"`, "the draft survives the failure")
	assert.Empty(t, w.Header().Get("HX-Push-Url"))
}

func TestUpdateExercisePlan(t *testing.T) {
	svc := newFakeExercisePlans(samplePlans()...)
	h := NewExercisePlanHandler(svc)

	form := validExerciseForm()
	form.Set("action", "save")
	r := newRequest(http.MethodPut, "/app/exercise-plans/1", form, true)
	r.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.UpdatePlan(w, r)

	req, ok := svc.updated[1]
	require.True(t, ok)
	require.NotNil(t, req.Name)
	assert.Equal(t, "Piernas", *req.Name)
	assert.Nil(t, req.Active, "editing leaves the active flag alone")
	assert.Contains(t, w.Body.String(), "Plan actualizado")
}

func TestEditExercisePlanPagePrefills(t *testing.T) {
	h := NewExercisePlanHandler(newFakeExercisePlans(samplePlans()...))

	r := newRequest(http.MethodGet, "/app/exercise-plans/1/edit", nil, true)
	r.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.EditPlanPage(w, r)

	body := w.Body.String()
	assert.Contains(t, body, `value="Fuerza total"`)
	assert.Contains(t, body, `value="Press banca"`)
	assert.Contains(t, body, `hx-put="/app/exercise-plans/1"`)
}

func TestToggleExercisePlan(t *testing.T) {
	svc := newFakeExercisePlans(samplePlans()...)
	h := NewExercisePlanHandler(svc)

	r := newRequest(http.MethodPost, "/app/exercise-plans/2/toggle", nil, true)
	r.SetPathValue("id", "2")
	w := httptest.NewRecorder()
	h.TogglePlan(w, r)

	req := svc.updated[2]
	require.NotNil(t, req.Active)
	assert.True(t, *req.Active)
	assert.True(t, svc.plans[1].Active)
}

func TestToggleUnknownExercisePlan(t *testing.T) {
	svc := newFakeExercisePlans(samplePlans()...)
	h := NewExercisePlanHandler(svc)

	r := newRequest(http.MethodPost, "/app/exercise-plans/9/toggle", nil, true)
	r.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	h.TogglePlan(w, r)

	assert.Empty(t, svc.updated)
	assert.Contains(t, w.Body.String(), "Error al actualizar el plan")
}

func TestDeleteExercisePlan(t *testing.T) {
	svc := newFakeExercisePlans(samplePlans()...)
	h := NewExercisePlanHandler(svc)

	r := newRequest(http.MethodDelete, "/app/exercise-plans/1", nil, true)
	r.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.DeletePlan(w, r)

	assert.Equal(t, []int64{1}, svc.deleted)
	body := w.Body.String()
	assert.NotContains(t, body, "Fuerza total")
	assert.Contains(t, body, "Plan eliminado")
}

func TestValidateExercisePlan(t *testing.T) {
	h := NewExercisePlanHandler(newFakeExercisePlans())

	w := httptest.NewRecorder()
	h.ValidatePlan(w, newRequest(http.MethodPost, "/app/exercise-plans/validate", validExerciseForm(), true))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="plan-submit"`)
	assert.Contains(t, w.Body.String(), "Crear plan")
	assert.NotContains(t, w.Body.String(), `value="save" disabled`)

	form := validExerciseForm()
	form.Set("nombre", "")
	form.Set("id", "3")
	w = httptest.NewRecorder()
	h.ValidatePlan(w, newRequest(http.MethodPost, "/app/exercise-plans/validate", form, true))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="save" disabled`)
	assert.Contains(t, w.Body.String(), "Guardar cambios")
}
