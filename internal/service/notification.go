package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

type NotificationService struct {
	api *backend.Client
}

func NewNotificationService(api *backend.Client) *NotificationService {
	return &NotificationService{api: api}
}

func (s *NotificationService) Create(ctx context.Context, req model.CreateNotificationRequest) (*model.Notification, error) {
	var raw json.RawMessage
	err := s.api.Post(ctx, "/notifications", req, &raw)
	if err != nil {
		return nil, err
	}
	return acked[model.Notification](raw, "notification")
}

func (s *NotificationService) List(ctx context.Context) ([]model.Notification, error) {
	var raw json.RawMessage
	err := s.api.Get(ctx, "/notifications", &raw)
	if err != nil {
		return nil, err
	}
	return listOf[model.Notification](raw, "notifications")
}

func (s *NotificationService) Unread(ctx context.Context) ([]model.Notification, error) {
	var raw json.RawMessage
	err := s.api.Get(ctx, "/notifications/unread", &raw)
	if err != nil {
		return nil, err
	}
	return listOf[model.Notification](raw, "notifications")
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id int64) error {
	return s.api.Put(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/notifications/%d", id), nil)
}
