package store

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

type MockExercisePlanService struct {
	mock.Mock
}

func (m *MockExercisePlanService) List(ctx context.Context) ([]model.ExercisePlan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]model.ExercisePlan)
	return plans, args.Error(1)
}

func (m *MockExercisePlanService) Create(ctx context.Context, req model.CreateExercisePlanRequest) (*model.ExercisePlan, error) {
	args := m.Called(ctx, req)
	plan, _ := args.Get(0).(*model.ExercisePlan)
	return plan, args.Error(1)
}

func (m *MockExercisePlanService) Update(ctx context.Context, id int64, req model.UpdateExercisePlanRequest) (*model.ExercisePlan, error) {
	args := m.Called(ctx, id, req)
	plan, _ := args.Get(0).(*model.ExercisePlan)
	return plan, args.Error(1)
}

func (m *MockExercisePlanService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNutritionPlanService struct {
	mock.Mock
}

func (m *MockNutritionPlanService) List(ctx context.Context) ([]model.NutritionPlan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]model.NutritionPlan)
	return plans, args.Error(1)
}

func (m *MockNutritionPlanService) Create(ctx context.Context, req model.CreateNutritionPlanRequest) (*model.NutritionPlan, error) {
	args := m.Called(ctx, req)
	plan, _ := args.Get(0).(*model.NutritionPlan)
	return plan, args.Error(1)
}

func (m *MockNutritionPlanService) Update(ctx context.Context, id int64, req model.UpdateNutritionPlanRequest) (*model.NutritionPlan, error) {
	args := m.Called(ctx, id, req)
	plan, _ := args.Get(0).(*model.NutritionPlan)
	return plan, args.Error(1)
}

func (m *MockNutritionPlanService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context) ([]model.Notification, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Notification)
	return items, args.Error(1)
}

func (m *MockNotificationService) Create(ctx context.Context, req model.CreateNotificationRequest) (*model.Notification, error) {
	args := m.Called(ctx, req)
	n, _ := args.Get(0).(*model.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWearableSource struct {
	mock.Mock
}

func (m *MockWearableSource) Today(ctx context.Context) (*model.DailyMetrics, error) {
	args := m.Called(ctx)
	metrics, _ := args.Get(0).(*model.DailyMetrics)
	return metrics, args.Error(1)
}
