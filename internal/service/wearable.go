package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

// WearableService reads daily metrics from the fitness-data backend. That host is not
// FitLife's, so its requests never carry the user's access token.
type WearableService struct {
	api *backend.Client
}

func NewWearableService(api *backend.Client) *WearableService {
	return &WearableService{api: api}
}

func (s *WearableService) Today(ctx context.Context) (*model.DailyMetrics, error) {
	var m model.DailyMetrics
	err := s.api.Get(backend.Anonymous(ctx), "/api/fitness", &m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *WearableService) ByDate(ctx context.Context, date time.Time) (*model.DailyMetrics, error) {
	var m model.DailyMetrics
	err := s.api.Get(backend.Anonymous(ctx), fmt.Sprintf("/api/fitness/%s", date.Format(time.DateOnly)), &m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
