package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

const nutritionPlansPath = "/plans/nutricion"

type NutritionPlanService struct {
	api *backend.Client
}

func NewNutritionPlanService(api *backend.Client) *NutritionPlanService {
	return &NutritionPlanService{api: api}
}

func (s *NutritionPlanService) Create(ctx context.Context, req model.CreateNutritionPlanRequest) (*model.NutritionPlan, error) {
	var raw json.RawMessage
	err := s.api.Post(ctx, nutritionPlansPath, req, &raw)
	if err != nil {
		return nil, err
	}
	return acked[model.NutritionPlan](raw, "plan")
}

func (s *NutritionPlanService) List(ctx context.Context) ([]model.NutritionPlan, error) {
	var raw json.RawMessage
	err := s.api.Get(ctx, nutritionPlansPath, &raw)
	if err != nil {
		return nil, err
	}
	return listOf[model.NutritionPlan](raw, "planes")
}

func (s *NutritionPlanService) ByID(ctx context.Context, id int64) (*model.NutritionPlan, error) {
	var raw json.RawMessage
	err := s.api.Get(ctx, fmt.Sprintf("%s/%d", nutritionPlansPath, id), &raw)
	if err != nil {
		return nil, err
	}
	return oneOf[model.NutritionPlan](raw, "plan")
}

func (s *NutritionPlanService) Update(ctx context.Context, id int64, req model.UpdateNutritionPlanRequest) (*model.NutritionPlan, error) {
	var raw json.RawMessage
	err := s.api.Put(ctx, fmt.Sprintf("%s/%d", nutritionPlansPath, id), req, &raw)
	if err != nil {
		return nil, err
	}
	return acked[model.NutritionPlan](raw, "plan")
}

func (s *NutritionPlanService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("%s/%d", nutritionPlansPath, id), nil)
}
