package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

const healthDataPath = "/users/datos-fisicos"

var ErrNoHealthProfile = errors.New("no health profile yet")

type HealthDataService struct {
	api *backend.Client
}

func NewHealthDataService(api *backend.Client) *HealthDataService {
	return &HealthDataService{api: api}
}

// Get returns ErrNoHealthProfile when the user has not filled in the questionnaire.
func (s *HealthDataService) Get(ctx context.Context) (*model.HealthProfile, error) {
	var raw json.RawMessage
	err := s.api.Get(ctx, healthDataPath, &raw)
	if errors.Is(err, backend.ErrNotFound) {
		return nil, ErrNoHealthProfile
	}
	if err != nil {
		return nil, err
	}

	profile, err := oneOf[model.HealthProfile](raw, "datosFisicos")
	if err != nil {
		return nil, err
	}
	if profile.Age == 0 && profile.Weight == 0 && profile.Height == 0 {
		return nil, ErrNoHealthProfile
	}
	return profile, nil
}

func (s *HealthDataService) Create(ctx context.Context, req model.CreateHealthProfileRequest) (*model.HealthProfile, error) {
	var raw json.RawMessage
	err := s.api.Post(ctx, healthDataPath, req, &raw)
	if err != nil {
		return nil, err
	}
	return acked[model.HealthProfile](raw, "datosFisicos")
}

func (s *HealthDataService) Update(ctx context.Context, req model.UpdateHealthProfileRequest) (*model.HealthProfile, error) {
	var raw json.RawMessage
	err := s.api.Put(ctx, healthDataPath, req, &raw)
	if err != nil {
		return nil, err
	}
	return acked[model.HealthProfile](raw, "datosFisicos")
}

// Save updates the existing profile, or creates one when there is none.
func (s *HealthDataService) Save(ctx context.Context, req model.CreateHealthProfileRequest) (*model.HealthProfile, error) {
	_, err := s.Get(ctx)
	if errors.Is(err, ErrNoHealthProfile) {
		return s.Create(ctx, req)
	}
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, model.UpdateFrom(req))
}
