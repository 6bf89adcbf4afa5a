package service

import (
	"context"
	"strings"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

// AuthService calls the public auth endpoints. They never carry a session token.
type AuthService struct {
	api *backend.Client
}

func NewAuthService(api *backend.Client) *AuthService {
	return &AuthService{api: api}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.Ack, error) {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	req.Surname = strings.TrimSpace(req.Surname)

	var ack model.Ack
	err := s.api.Post(backend.Anonymous(ctx), "/auth/register", req, &ack)
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	req.Email = normalizeEmail(req.Email)

	var resp model.LoginResponse
	err := s.api.Post(backend.Anonymous(ctx), "/auth/login", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) (*model.Ack, error) {
	var ack model.Ack
	err := s.api.Post(backend.Anonymous(ctx), "/auth/verify-email", model.VerifyEmailRequest{Token: token}, &ack)
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

func (s *AuthService) ResendVerification(ctx context.Context, email string) (*model.Ack, error) {
	var ack model.Ack
	err := s.api.Post(backend.Anonymous(ctx), "/auth/resend-verification", model.ResendVerificationRequest{Email: normalizeEmail(email)}, &ack)
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
