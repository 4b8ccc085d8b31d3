package usecase

import (
	"go.uber.org/zap"

	"seedco-api/internal/data/repository"
	"seedco-api/pkg/utils"
)

type Service struct {
	Auth  AuthService
	User  UserService
	Order OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo.User, config, log),
		User:  NewUserService(repo.User, log),
		Order: NewOrderService(log),
	}
}
