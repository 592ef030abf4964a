package access

import (
	"testing"

	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	admin := models.ActorContext{UserID: 1, Role: models.RoleAdmin}
	staff := models.ActorContext{UserID: 2, Role: models.RoleStaff, RefID: 5}
	doctor := models.ActorContext{UserID: 3, Role: models.RoleDoctor, RefID: 10}
	patient := models.ActorContext{UserID: 4, Role: models.RolePatient, RefID: 20}
	unknown := models.ActorContext{UserID: 5, Role: "janitor", RefID: 20}

	ownPatientRow := models.Owner{PatientID: 20, DoctorID: 10}
	otherRow := models.Owner{PatientID: 21, DoctorID: 11}

	tests := []struct {
		name     string
		actor    models.ActorContext
		resource Resource
		owner    models.Owner
		action   Action
		want     bool
	}{
		{"admin writes anything", admin, ResourceMedicalRecord, otherRow, ActionWrite, true},
		{"admin deletes doctor", admin, ResourceDoctor, models.Owner{}, ActionWrite, true},

		{"staff reads medical record", staff, ResourceMedicalRecord, otherRow, ActionRead, true},
		{"staff writes billing", staff, ResourceBilling, otherRow, ActionWrite, true},
		{"staff writes payment", staff, ResourcePayment, otherRow, ActionWrite, true},
		{"staff writes staff", staff, ResourceStaff, models.Owner{}, ActionWrite, true},
		{"staff cannot write prescription", staff, ResourcePrescription, otherRow, ActionWrite, false},
		{"staff cannot write doctor", staff, ResourceDoctor, models.Owner{}, ActionWrite, false},
		{"staff cannot write clinic", staff, ResourceClinic, models.Owner{}, ActionWrite, false},

		{"doctor reads own appointment", doctor, ResourceAppointment, ownPatientRow, ActionRead, true},
		{"doctor writes own medical record", doctor, ResourceMedicalRecord, ownPatientRow, ActionWrite, true},
		{"doctor writes own prescription", doctor, ResourcePrescription, ownPatientRow, ActionWrite, true},
		{"doctor reads other doctor's medical record", doctor, ResourceMedicalRecord, otherRow, ActionRead, false},
		{"doctor writes other doctor's appointment", doctor, ResourceAppointment, otherRow, ActionWrite, false},
		{"doctor reads patient", doctor, ResourcePatient, otherRow, ActionRead, true},
		{"doctor reads billing", doctor, ResourceBilling, otherRow, ActionRead, true},
		{"doctor cannot write patient", doctor, ResourcePatient, otherRow, ActionWrite, false},
		{"doctor cannot write billing", doctor, ResourceBilling, otherRow, ActionWrite, false},

		{"patient reads own record", patient, ResourcePatient, models.Owner{PatientID: 20}, ActionRead, true},
		{"patient writes own appointment", patient, ResourceAppointment, ownPatientRow, ActionWrite, true},
		{"patient reads own billing", patient, ResourceBilling, models.Owner{PatientID: 20}, ActionRead, true},
		{"patient reads own payment", patient, ResourcePayment, models.Owner{PatientID: 20}, ActionRead, true},
		{"patient reads other patient", patient, ResourcePatient, models.Owner{PatientID: 21}, ActionRead, false},
		{"patient reads other appointment", patient, ResourceAppointment, otherRow, ActionRead, false},
		{"patient reads doctor directory", patient, ResourceDoctor, models.Owner{}, ActionRead, true},
		{"patient reads clinics", patient, ResourceClinic, models.Owner{}, ActionRead, true},
		{"patient cannot write doctor", patient, ResourceDoctor, models.Owner{}, ActionWrite, false},
		{"patient reads own medical record", patient, ResourceMedicalRecord, ownPatientRow, ActionRead, true},
		{"patient reads own prescription", patient, ResourcePrescription, ownPatientRow, ActionRead, true},
		{"patient reads other medical record", patient, ResourceMedicalRecord, otherRow, ActionRead, false},
		{"patient reads other prescription", patient, ResourcePrescription, otherRow, ActionRead, false},
		{"patient cannot write own medical record", patient, ResourceMedicalRecord, ownPatientRow, ActionWrite, false},
		{"patient cannot write own prescription", patient, ResourcePrescription, ownPatientRow, ActionWrite, false},
		{"patient cannot record payment on own bill", patient, ResourcePayment, models.Owner{PatientID: 20}, ActionWrite, false},
		{"patient writes own billing", patient, ResourceBilling, models.Owner{PatientID: 20}, ActionWrite, true},
		{"patient cannot write other billing", patient, ResourceBilling, models.Owner{PatientID: 21}, ActionWrite, false},
		{"patient cannot read staff", patient, ResourceStaff, models.Owner{}, ActionRead, false},
		{"patient cannot read dashboard", patient, ResourceDashboard, models.Owner{}, ActionRead, false},

		{"unknown role reads nothing", unknown, ResourceDoctor, models.Owner{}, ActionRead, false},
		{"patient without ref id owns nothing", models.ActorContext{Role: models.RolePatient}, ResourcePatient, models.Owner{}, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.actor, tt.resource, tt.owner, tt.action))
		})
	}
}

func TestAuthorize(t *testing.T) {
	patient := models.ActorContext{Role: models.RolePatient, RefID: 20}

	assert.NoError(t, Authorize(patient, ResourceAppointment, models.Owner{PatientID: 20}, ActionWrite))

	err := Authorize(patient, ResourceAppointment, models.Owner{PatientID: 21}, ActionWrite)
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))
}
