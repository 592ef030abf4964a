package requests

type CreatePatient struct {
	FirstName              string `json:"first_name" validate:"required,max=100"`
	LastName               string `json:"last_name" validate:"max=100"`
	DateOfBirth            string `json:"date_of_birth" validate:"omitempty,booking_date"`
	Gender                 string `json:"gender" validate:"omitempty,gender"`
	BloodGroup             string `json:"blood_group" validate:"omitempty,blood_group"`
	ContactNumber          string `json:"contact_number" validate:"omitempty,phone"`
	Email                  string `json:"email" validate:"omitempty,email"`
	Address                string `json:"address"`
	EmergencyContact       string `json:"emergency_contact" validate:"max=100"`
	EmergencyContactNumber string `json:"emergency_contact_number" validate:"omitempty,phone"`
}

type UpdatePatient struct {
	FirstName              *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName               *string `json:"last_name" validate:"omitempty,max=100"`
	DateOfBirth            *string `json:"date_of_birth" validate:"omitempty,booking_date"`
	Gender                 *string `json:"gender" validate:"omitempty,gender"`
	BloodGroup             *string `json:"blood_group" validate:"omitempty,blood_group"`
	ContactNumber          *string `json:"contact_number" validate:"omitempty,phone"`
	Email                  *string `json:"email" validate:"omitempty,email"`
	Address                *string `json:"address"`
	EmergencyContact       *string `json:"emergency_contact" validate:"omitempty,max=100"`
	EmergencyContactNumber *string `json:"emergency_contact_number" validate:"omitempty,phone"`
}
