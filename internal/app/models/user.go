package models

import "time"

type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	RefID        *int64     `json:"ref_id"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`
	TimeModel
}

func (u User) Actor() ActorContext {
	actor := ActorContext{UserID: u.ID, Role: u.Role}
	if u.RefID != nil {
		actor.RefID = *u.RefID
	}
	return actor
}
