package models

type Specialization struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TimeModel
}

type Department struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	HeadDoctorID   *int64 `json:"head_doctor_id"`
	HeadDoctorName string `json:"head_doctor_name,omitempty"`
	TimeModel
}

type Clinic struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	TimeModel
}
