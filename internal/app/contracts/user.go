package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, userID int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateLastLogin(ctx context.Context, userID int64, lastLogin time.Time) error
}

type UserUsecase interface {
	Create(ctx context.Context, actor models.ActorContext, request *requests.CreateUser) (*models.User, error)
}
