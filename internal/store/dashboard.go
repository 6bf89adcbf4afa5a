package store

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

type WearableSource interface {
	Today(ctx context.Context) (*model.DailyMetrics, error)
}

type Stats struct {
	TotalExercisePlans   int
	TotalNutritionPlans  int
	ActiveExercisePlans  int
	ActiveNutritionPlans int
	TotalExercises       int
	TotalMeals           int
	TotalCalories        float64
	ProgressPercentage   int
}

type Overview struct {
	Stats          Stats
	ExercisePlans  []model.ExercisePlan
	NutritionPlans []model.NutritionPlan
	Metrics        *model.DailyMetrics // nil when the wearable backend is unavailable
}

// Dashboard aggregates both plan lists and today's wearable metrics.
type Dashboard struct {
	Exercise  *ExercisePlans
	Nutrition *NutritionPlans
	wearable  WearableSource
}

func NewDashboard(exercise ExercisePlanService, nutrition NutritionPlanService, wearable WearableSource) *Dashboard {
	return &Dashboard{
		Exercise:  NewExercisePlans(exercise),
		Nutrition: NewNutritionPlans(nutrition),
		wearable:  wearable,
	}
}

// Load fetches everything concurrently. Only plan failures fail the dashboard.
func (d *Dashboard) Load(ctx context.Context) (*Overview, error) {
	var metrics *model.DailyMetrics

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.Exercise.Load(gctx)
	})
	g.Go(func() error {
		return d.Nutrition.Load(gctx)
	})
	if d.wearable != nil {
		g.Go(func() error {
			m, err := d.wearable.Today(gctx)
			if err != nil {
				slog.Warn("failed to load wearable metrics", "error", err)
				return nil
			}
			metrics = m
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return nil, err
	}

	exercise := d.Exercise.Items()
	nutrition := d.Nutrition.Items()
	return &Overview{
		Stats:          ComputeStats(exercise, nutrition),
		ExercisePlans:  exercise,
		NutritionPlans: nutrition,
		Metrics:        metrics,
	}, nil
}

// ComputeStats derives the dashboard counters. Progress grows 10 points per plan, up to 100.
func ComputeStats(exercise []model.ExercisePlan, nutrition []model.NutritionPlan) Stats {
	s := Stats{
		TotalExercisePlans:  len(exercise),
		TotalNutritionPlans: len(nutrition),
	}
	for _, p := range exercise {
		if p.Active {
			s.ActiveExercisePlans++
		}
		s.TotalExercises += len(p.Exercises)
	}
	for _, p := range nutrition {
		if p.Active {
			s.ActiveNutritionPlans++
		}
		s.TotalMeals += len(p.Meals)
		s.TotalCalories += p.Calories()
	}
	s.ProgressPercentage = min((s.TotalExercisePlans+s.TotalNutritionPlans)*10, 100)
	return s
}
