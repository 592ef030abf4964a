package models

import "time"

type Staff struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	ContactNumber  string    `json:"contact_number"`
	Email          string    `json:"email"`
	DepartmentID   *int64    `json:"department_id"`
	DepartmentName string    `json:"department_name,omitempty"`
	Position       string    `json:"position"`
	JoiningDate    time.Time `json:"joining_date"`
	TimeModel
}

func (s Staff) FullName() string {
	return joinName(s.FirstName, s.LastName)
}

type StaffFilter struct {
	Search       string
	DepartmentID int64
	Pagination
}
