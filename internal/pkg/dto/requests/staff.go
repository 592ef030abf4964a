package requests

type CreateStaff struct {
	FirstName     string `json:"first_name" validate:"required,max=100"`
	LastName      string `json:"last_name" validate:"max=100"`
	ContactNumber string `json:"contact_number" validate:"omitempty,phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	DepartmentID  *int64 `json:"department_id" validate:"omitempty,gt=0"`
	Position      string `json:"position" validate:"max=100"`
	JoiningDate   string `json:"joining_date" validate:"omitempty,booking_date"`
}

type UpdateStaff struct {
	FirstName     *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName      *string `json:"last_name" validate:"omitempty,max=100"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	DepartmentID  *int64  `json:"department_id" validate:"omitempty,gt=0"`
	Position      *string `json:"position" validate:"omitempty,max=100"`
	JoiningDate   *string `json:"joining_date" validate:"omitempty,booking_date"`
}
