package requests

import "github.com/shopspring/decimal"

type CreateDoctor struct {
	FirstName        string           `json:"first_name" validate:"required,max=100"`
	LastName         string           `json:"last_name" validate:"max=100"`
	ContactNumber    string           `json:"contact_number" validate:"omitempty,phone"`
	Email            string           `json:"email" validate:"omitempty,email"`
	SpecializationID int64            `json:"specialization_id" validate:"required,gt=0"`
	DepartmentID     *int64           `json:"department_id" validate:"omitempty,gt=0"`
	LicenseNumber    *string          `json:"license_number" validate:"omitempty,max=50"`
	Qualification    string           `json:"qualification"`
	ExperienceYears  int              `json:"experience_years" validate:"gte=0,lte=80"`
	ConsultationFee  *decimal.Decimal `json:"consultation_fee"`
}

type UpdateDoctor struct {
	FirstName        *string          `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName         *string          `json:"last_name" validate:"omitempty,max=100"`
	ContactNumber    *string          `json:"contact_number" validate:"omitempty,phone"`
	Email            *string          `json:"email" validate:"omitempty,email"`
	SpecializationID *int64           `json:"specialization_id" validate:"omitempty,gt=0"`
	DepartmentID     *int64           `json:"department_id" validate:"omitempty,gt=0"`
	LicenseNumber    *string          `json:"license_number" validate:"omitempty,max=50"`
	Qualification    *string          `json:"qualification"`
	ExperienceYears  *int             `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	ConsultationFee  *decimal.Decimal `json:"consultation_fee"`
}
