package usecase

import (
	"storefront/internal/data/repository"
	"storefront/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Order OrderService
}

func NewService(repo *repository.Repository, issuer *token.Issuer, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, issuer, log),
		Order: NewOrderService(repo, log),
	}
}
