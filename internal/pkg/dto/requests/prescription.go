package requests

import "hospital-service/internal/app/models"

type CreatePrescription struct {
	PatientID       int64               `json:"patient_id" validate:"required,gt=0"`
	DoctorID        int64               `json:"doctor_id" validate:"omitempty,gt=0"`
	MedicalRecordID *int64              `json:"medical_record_id" validate:"omitempty,gt=0"`
	Medications     []models.Medication `json:"medications" validate:"required,min=1,dive"`
	Instructions    string              `json:"instructions"`
	ValidUntil      string              `json:"valid_until" validate:"omitempty,booking_date"`
}

type UpdatePrescription struct {
	Medications  *[]models.Medication `json:"medications" validate:"omitempty,min=1,dive"`
	Instructions *string              `json:"instructions"`
	ValidUntil   *string              `json:"valid_until" validate:"omitempty,booking_date"`
	Status       *string              `json:"status" validate:"omitempty,oneof=Active Completed Cancelled"`
}
