package usecase

import (
	"bite-reviews/internal/data/repository"
	"bite-reviews/pkg/mailer"
	"bite-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Review ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, notifier mailer.Notifier, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(config.Admin, log),
		Review: NewReviewService(repo, notifier, log),
	}
}
