package models

import "github.com/shopspring/decimal"

type Doctor struct {
	ID                 int64           `json:"id"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	ContactNumber      string          `json:"contact_number"`
	Email              string          `json:"email"`
	SpecializationID   int64           `json:"specialization_id"`
	SpecializationName string          `json:"specialization_name,omitempty"`
	DepartmentID       *int64          `json:"department_id"`
	DepartmentName     string          `json:"department_name,omitempty"`
	LicenseNumber      *string         `json:"license_number"`
	Qualification      string          `json:"qualification"`
	ExperienceYears    int             `json:"experience_years"`
	ConsultationFee    decimal.Decimal `json:"consultation_fee"`
	TimeModel
}

func (d Doctor) FullName() string {
	return joinName(d.FirstName, d.LastName)
}

type DoctorFilter struct {
	Search           string
	SpecializationID int64
	DepartmentID     int64
	Pagination
}
