package models

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RoleStaff   = "staff"
	RolePatient = "patient"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RoleStaff, RolePatient:
		return true
	}
	return false
}

// ActorContext identifies who is calling a service. RefID points at the patients, doctors or
// staff row matching Role and is zero for admins.
type ActorContext struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	RefID  int64  `json:"ref_id"`
}

func (a ActorContext) IsAdmin() bool   { return a.Role == RoleAdmin }
func (a ActorContext) IsDoctor() bool  { return a.Role == RoleDoctor }
func (a ActorContext) IsStaff() bool   { return a.Role == RoleStaff }
func (a ActorContext) IsPatient() bool { return a.Role == RolePatient }
