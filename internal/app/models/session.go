package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	RefID     int64     `json:"ref_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Actor() ActorContext {
	return ActorContext{
		UserID: s.UserID,
		Role:   s.Role,
		RefID:  s.RefID,
	}
}

func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
