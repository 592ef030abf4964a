package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	Me(ctx context.Context, actor models.ActorContext) (*responses.Me, error)
	UpdatePassword(ctx context.Context, actor models.ActorContext, request *requests.UpdatePassword) error
}
