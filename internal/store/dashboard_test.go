package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

func TestComputeStats(t *testing.T) {
	exercise := []model.ExercisePlan{
		{ID: 1, Active: true, Exercises: []model.Exercise{{Name: "Sentadilla"}, {Name: "Peso muerto"}}},
		{ID: 2, Active: false, Exercises: []model.Exercise{{Name: "Correr"}}},
	}
	nutrition := []model.NutritionPlan{{
		ID:     3,
		Active: true,
		Meals: []model.Meal{
			{Name: "Desayuno", Foods: []model.Food{{Name: "Avena", Calories: 150}, {Name: "Plátano", Calories: 90}}},
			{Name: "Comida", Foods: []model.Food{{Name: "Pollo", Calories: 330}}},
		},
	}}

	s := ComputeStats(exercise, nutrition)
	assert.Equal(t, Stats{
		TotalExercisePlans:   2,
		TotalNutritionPlans:  1,
		ActiveExercisePlans:  1,
		ActiveNutritionPlans: 1,
		TotalExercises:       3,
		TotalMeals:           2,
		TotalCalories:        570,
		ProgressPercentage:   30,
	}, s)
}

func TestComputeStatsCapsProgress(t *testing.T) {
	exercise := make([]model.ExercisePlan, 12)
	assert.Equal(t, 100, ComputeStats(exercise, nil).ProgressPercentage)
	assert.Equal(t, 0, ComputeStats(nil, nil).ProgressPercentage)
}

func TestDashboardToleratesWearableFailure(t *testing.T) {
	ex := new(MockExercisePlanService)
	nu := new(MockNutritionPlanService)
	wear := new(MockWearableSource)
	ex.On("List", ctxArg).Return([]model.ExercisePlan{{ID: 1, Active: true}}, nil)
	nu.On("List", ctxArg).Return([]model.NutritionPlan{}, nil)
	wear.On("Today", ctxArg).Return(nil, errors.New("connection refused"))

	d := NewDashboard(ex, nu, wear)
	o, err := d.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, o.Metrics)
	assert.Equal(t, 1, o.Stats.TotalExercisePlans)
	assert.Equal(t, 10, o.Stats.ProgressPercentage)
}

func TestDashboardFailsOnPlanError(t *testing.T) {
	ex := new(MockExercisePlanService)
	nu := new(MockNutritionPlanService)
	ex.On("List", ctxArg).Return(nil, errors.New("timeout"))
	nu.On("List", ctxArg).Return([]model.NutritionPlan{}, nil)

	d := NewDashboard(ex, nu, nil)
	_, err := d.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Error al cargar los planes", UserMessage(err))
}
