package models

import "time"

// TimeModel holds the audit columns every table carries. Both are set by postgres defaults and
// the updated_at trigger, never by the application.
type TimeModel struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
