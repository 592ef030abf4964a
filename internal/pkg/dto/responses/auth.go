package responses

import (
	"hospital-service/internal/app/models"
	"time"
)

type Login struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      models.User `json:"user"`
}

type Register struct {
	User    models.User    `json:"user"`
	Patient models.Patient `json:"patient"`
}

// Me carries the logged in user and, depending on role, one of the profile rows.
type Me struct {
	User    models.User     `json:"user"`
	Patient *models.Patient `json:"patient,omitempty"`
	Doctor  *models.Doctor  `json:"doctor,omitempty"`
	Staff   *models.Staff   `json:"staff,omitempty"`
}
