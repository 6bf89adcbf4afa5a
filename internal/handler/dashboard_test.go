package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

type fakeWearable struct {
	metrics *model.DailyMetrics
	err     error
}

func (f *fakeWearable) Today(ctx context.Context) (*model.DailyMetrics, error) {
	return f.metrics, f.err
}

func TestDashboardPage(t *testing.T) {
	nutrition := &fakeNutritionPlans{plans: []model.NutritionPlan{{ID: 5, Name: "Definición", TargetCalories: 1800, Active: true}}}
	wearable := &fakeWearable{metrics: &model.DailyMetrics{
		Date:    "2024-05-01",
		Profile: model.MetricsProfile{GoalCalories: 2100},
		Totals:  model.DailyTotals{IntakeCalories: 1500, BurnedCalories: 400, NetCalories: 1100},
	}}
	h := NewDashboardHandler(newFakeExercisePlans(samplePlans()...), nutrition, wearable)

	w := httptest.NewRecorder()
	h.DashboardPage(w, newRequest(http.MethodGet, "/app/dashboard", nil, false))

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "Hola, Ana")
	assert.Contains(t, body, "Fuerza total")
	assert.Contains(t, body, "Actividad de hoy")
	assert.Contains(t, body, "Completa tu cuestionario de salud")
}

func TestDashboardWithoutWearable(t *testing.T) {
	h := NewDashboardHandler(newFakeExercisePlans(samplePlans()...), &fakeNutritionPlans{}, &fakeWearable{err: errors.New("wearable api down")})

	w := httptest.NewRecorder()
	h.DashboardPage(w, newRequest(http.MethodGet, "/app/dashboard", nil, true))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Actividad de hoy")
}

func TestDashboardSessionExpired(t *testing.T) {
	svc := newFakeExercisePlans()
	svc.listErr = errUnauthorized
	h := NewDashboardHandler(svc, &fakeNutritionPlans{}, nil)

	w := httptest.NewRecorder()
	h.DashboardPage(w, newRequest(http.MethodGet, "/app/dashboard", nil, false))
	assert.Equal(t, "/auth/login?expired=1", w.Header().Get("Location"))
}
