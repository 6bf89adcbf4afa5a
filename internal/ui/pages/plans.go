package pages

import (
	"github.com/Dianagomez24/FrontFilLife/internal/form"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
)

const FilterActive = "active"

type ExercisePlansProps struct {
	Plans  []model.ExercisePlan
	Total  int
	Filter string
	Error  string
}

func ExercisePlans(p ExercisePlansProps) ui.View {
	return ui.NewView("exercise_plans", "Planes de ejercicio", p)
}

type ExercisePlanProps struct {
	Plan model.ExercisePlan
}

func ExercisePlan(p ExercisePlanProps) ui.View {
	return ui.NewView("exercise_plan", p.Plan.Name, p)
}

type ExercisePlanFormProps struct {
	// PlanID is zero when creating.
	PlanID       int64
	Draft        *form.ExercisePlanDraft
	Errors       form.Errors
	Error        string
	Difficulties []model.Difficulty
}

func ExercisePlanForm(p ExercisePlanFormProps) ui.View {
	if p.Difficulties == nil {
		p.Difficulties = model.Difficulties
	}
	title := "Nuevo plan de ejercicio"
	if p.PlanID != 0 {
		title = "Editar plan de ejercicio"
	}
	return ui.NewView("exercise_plan_form", title, p)
}

type NutritionPlansProps struct {
	Plans  []model.NutritionPlan
	Total  int
	Filter string
	Error  string
}

func NutritionPlans(p NutritionPlansProps) ui.View {
	return ui.NewView("nutrition_plans", "Planes de nutrición", p)
}

type NutritionPlanProps struct {
	Plan model.NutritionPlan
}

func NutritionPlan(p NutritionPlanProps) ui.View {
	return ui.NewView("nutrition_plan", p.Plan.Name, p)
}

type NutritionPlanFormProps struct {
	PlanID int64
	Draft  *form.NutritionPlanDraft
	Errors form.Errors
	Error  string
}

func NutritionPlanForm(p NutritionPlanFormProps) ui.View {
	title := "Nuevo plan de nutrición"
	if p.PlanID != 0 {
		title = "Editar plan de nutrición"
	}
	return ui.NewView("nutrition_plan_form", title, p)
}
