package requests

type RegisterPatient struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,password"`
	RetypePassword string `json:"retype_password" validate:"required,eqfield=Password"`
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"max=100"`
	DateOfBirth    string `json:"date_of_birth" validate:"omitempty,booking_date"`
	Gender         string `json:"gender" validate:"omitempty,gender"`
	BloodGroup     string `json:"blood_group" validate:"omitempty,blood_group"`
	ContactNumber  string `json:"contact_number" validate:"omitempty,phone"`
	Address        string `json:"address"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdatePassword struct {
	CurrentPassword         string `json:"current_password" validate:"required"`
	NewPassword             string `json:"new_password" validate:"required,password"`
	NewPasswordConfirmation string `json:"new_password_confirmation" validate:"required,eqfield=NewPassword"`
}

type CreateUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role" validate:"required,oneof=admin doctor staff"`
	RefID    *int64 `json:"ref_id" validate:"omitempty,gt=0"`
}
