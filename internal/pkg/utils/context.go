package utils

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
)

func GetSessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return session, nil
}

// ActorFromContext builds the caller identity every service call requires.
func ActorFromContext(ctx context.Context) (models.ActorContext, error) {
	session, err := GetSessionFromContext(ctx)
	if err != nil {
		return models.ActorContext{}, err
	}
	return session.Actor(), nil
}
