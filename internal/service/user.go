package service

import (
	"context"
	"encoding/json"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

type UserService struct {
	api *backend.Client
}

func NewUserService(api *backend.Client) *UserService {
	return &UserService{api: api}
}

func (s *UserService) Profile(ctx context.Context) (*model.UserProfile, error) {
	var raw json.RawMessage
	err := s.api.Get(ctx, "/users/profile", &raw)
	if err != nil {
		return nil, err
	}
	return oneOf[model.UserProfile](raw, "user")
}

func (s *UserService) UpdateProfile(ctx context.Context, req model.UpdateUserRequest) (*model.UserProfile, error) {
	if req.Email != nil {
		e := normalizeEmail(*req.Email)
		req.Email = &e
	}

	var raw json.RawMessage
	err := s.api.Put(ctx, "/users/profile", req, &raw)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return s.Profile(ctx)
	}
	return oneOf[model.UserProfile](raw, "user")
}
