package requests

type Specialization struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type Department struct {
	Name         string `json:"name" validate:"required,max=100"`
	Description  string `json:"description"`
	HeadDoctorID *int64 `json:"head_doctor_id" validate:"omitempty,gt=0"`
}

type Clinic struct {
	Name          string `json:"name" validate:"required,max=150"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number" validate:"omitempty,phone"`
	Email         string `json:"email" validate:"omitempty,email"`
}
