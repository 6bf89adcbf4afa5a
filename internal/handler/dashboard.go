package handler

import (
	"log/slog"
	"net/http"

	"github.com/Dianagomez24/FrontFilLife/internal/store"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
	"github.com/Dianagomez24/FrontFilLife/internal/ui/pages"
)

type DashboardHandler struct {
	exercise  store.ExercisePlanService
	nutrition store.NutritionPlanService
	wearable  store.WearableSource
}

func NewDashboardHandler(exercise store.ExercisePlanService, nutrition store.NutritionPlanService, wearable store.WearableSource) *DashboardHandler {
	return &DashboardHandler{
		exercise:  exercise,
		nutrition: nutrition,
		wearable:  wearable,
	}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	d := store.NewDashboard(h.exercise, h.nutrition, h.wearable)

	overview, err := d.Load(r.Context())
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		slog.Error("failed to load dashboard", "error", err, "user_id", userID(r))
		ui.RenderView(w, r, pages.Dashboard(pages.DashboardProps{Error: store.UserMessage(err)}))
		return
	}

	ui.RenderView(w, r, pages.Dashboard(pages.DashboardProps{Overview: overview}))
}
