package session

import (
	"context"
	"errors"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

func sessionKey(sessionID string) string {
	return constvars.RedisKeySessionPrefix + sessionID
}

func (svc *sessionService) CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error) {
	actor := user.Actor()
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      actor.Role,
		RefID:     actor.RefID,
		ExpiresAt: time.Now().Add(ttl),
	}

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
	if err != nil {
		svc.Log.Error("sessionService.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Int64(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return nil, err
	}
	return session, nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrInvalidSession(errors.New("session not found"))
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if session.IsExpired(time.Now()) {
		return nil, exceptions.ErrInvalidSession(errors.New("session expired"))
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
