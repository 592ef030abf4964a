// Package access decides whether an actor may read or write a row. It is pure: everything it
// needs arrives in the arguments, so services call it after loading the row in question.
package access

import (
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/exceptions"
)

type Resource string

const (
	ResourcePatient        Resource = "patient"
	ResourceDoctor         Resource = "doctor"
	ResourceStaff          Resource = "staff"
	ResourceSpecialization Resource = "specialization"
	ResourceDepartment     Resource = "department"
	ResourceClinic         Resource = "clinic"
	ResourceAppointment    Resource = "appointment"
	ResourceMedicalRecord  Resource = "medical_record"
	ResourcePrescription   Resource = "prescription"
	ResourceBilling        Resource = "billing"
	ResourcePayment        Resource = "payment"
	ResourceUser           Resource = "user"
	ResourceDashboard      Resource = "dashboard"
)

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

var staffWritable = map[Resource]bool{
	ResourcePatient:     true,
	ResourceAppointment: true,
	ResourceBilling:     true,
	ResourcePayment:     true,
	ResourceStaff:       true,
}

var doctorOwned = map[Resource]bool{
	ResourceAppointment:   true,
	ResourceMedicalRecord: true,
	ResourcePrescription:  true,
}

// patientOwned rows are readable by the patient they belong to; patientWritable is the subset
// the patient may also change.
var patientOwned = map[Resource]bool{
	ResourcePatient:       true,
	ResourceAppointment:   true,
	ResourceBilling:       true,
	ResourcePayment:       true,
	ResourceMedicalRecord: true,
	ResourcePrescription:  true,
}

var patientWritable = map[Resource]bool{
	ResourcePatient:     true,
	ResourceAppointment: true,
	ResourceBilling:     true,
}

var publicDirectory = map[Resource]bool{
	ResourceDoctor:         true,
	ResourceSpecialization: true,
	ResourceDepartment:     true,
	ResourceClinic:         true,
}

// CanAccess reports whether actor may perform action on a resource row owned by owner.
func CanAccess(actor models.ActorContext, resource Resource, owner models.Owner, action Action) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true

	case models.RoleStaff:
		if action == ActionRead {
			return true
		}
		return staffWritable[resource]

	case models.RoleDoctor:
		if doctorOwned[resource] {
			return actor.RefID != 0 && owner.DoctorID == actor.RefID
		}
		return action == ActionRead

	case models.RolePatient:
		if patientOwned[resource] {
			if action == ActionWrite && !patientWritable[resource] {
				return false
			}
			return actor.RefID != 0 && owner.PatientID == actor.RefID
		}
		return action == ActionRead && publicDirectory[resource]
	}
	return false
}

// Authorize is CanAccess returning the 403 error services hand back to the caller.
func Authorize(actor models.ActorContext, resource Resource, owner models.Owner, action Action) error {
	if CanAccess(actor, resource, owner, action) {
		return nil
	}
	return exceptions.ErrForbiddenAccess(nil, actor.Role, actor.RefID, string(action), string(resource))
}
