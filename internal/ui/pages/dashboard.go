package pages

import (
	"github.com/Dianagomez24/FrontFilLife/internal/store"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
)

type DashboardProps struct {
	Overview *store.Overview
	Error    string
}

// RecentLimit is how many plans of each kind the dashboard lists.
const RecentLimit = 3

func Dashboard(p DashboardProps) ui.View {
	if p.Overview != nil {
		o := *p.Overview
		if len(o.ExercisePlans) > RecentLimit {
			o.ExercisePlans = o.ExercisePlans[:RecentLimit]
		}
		if len(o.NutritionPlans) > RecentLimit {
			o.NutritionPlans = o.NutritionPlans[:RecentLimit]
		}
		p.Overview = &o
	}
	return ui.NewView("dashboard", "Panel", p)
}
