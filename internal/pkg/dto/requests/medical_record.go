package requests

import "hospital-service/internal/app/models"

type CreateMedicalRecord struct {
	PatientID     int64              `json:"patient_id" validate:"required,gt=0"`
	DoctorID      int64              `json:"doctor_id" validate:"omitempty,gt=0"`
	AppointmentID *int64             `json:"appointment_id" validate:"omitempty,gt=0"`
	VisitDate     string             `json:"visit_date" validate:"omitempty,booking_date"`
	Symptoms      string             `json:"symptoms"`
	Diagnosis     string             `json:"diagnosis"`
	TreatmentPlan string             `json:"treatment_plan"`
	Notes         string             `json:"notes"`
	VitalSigns    *models.VitalSigns `json:"vital_signs"`
}

type UpdateMedicalRecord struct {
	Symptoms      *string            `json:"symptoms"`
	Diagnosis     *string            `json:"diagnosis"`
	TreatmentPlan *string            `json:"treatment_plan"`
	Notes         *string            `json:"notes"`
	VitalSigns    *models.VitalSigns `json:"vital_signs"`
}

type UploadAttachment struct {
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}
