package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

const exercisePlansPath = "/plans/ejercicio"

type ExercisePlanService struct {
	api *backend.Client
}

func NewExercisePlanService(api *backend.Client) *ExercisePlanService {
	return &ExercisePlanService{api: api}
}

func (s *ExercisePlanService) Create(ctx context.Context, req model.CreateExercisePlanRequest) (*model.ExercisePlan, error) {
	var raw json.RawMessage
	err := s.api.Post(ctx, exercisePlansPath, req, &raw)
	if err != nil {
		return nil, err
	}
	return acked[model.ExercisePlan](raw, "plan")
}

func (s *ExercisePlanService) List(ctx context.Context) ([]model.ExercisePlan, error) {
	var raw json.RawMessage
	err := s.api.Get(ctx, exercisePlansPath, &raw)
	if err != nil {
		return nil, err
	}
	return listOf[model.ExercisePlan](raw, "planes")
}

func (s *ExercisePlanService) ByID(ctx context.Context, id int64) (*model.ExercisePlan, error) {
	var raw json.RawMessage
	err := s.api.Get(ctx, fmt.Sprintf("%s/%d", exercisePlansPath, id), &raw)
	if err != nil {
		return nil, err
	}
	return oneOf[model.ExercisePlan](raw, "plan")
}

func (s *ExercisePlanService) Update(ctx context.Context, id int64, req model.UpdateExercisePlanRequest) (*model.ExercisePlan, error) {
	var raw json.RawMessage
	err := s.api.Put(ctx, fmt.Sprintf("%s/%d", exercisePlansPath, id), req, &raw)
	if err != nil {
		return nil, err
	}
	return acked[model.ExercisePlan](raw, "plan")
}

func (s *ExercisePlanService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("%s/%d", exercisePlansPath, id), nil)
}
