package models

import (
	"database/sql/driver"
	"time"
)

type VitalSigns struct {
	BloodPressure    string   `json:"blood_pressure,omitempty"`
	HeartRate        *int     `json:"heart_rate,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	RespiratoryRate  *int     `json:"respiratory_rate,omitempty"`
	OxygenSaturation *float64 `json:"oxygen_saturation,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	Height           *float64 `json:"height,omitempty"`
}

func (v VitalSigns) Value() (driver.Value, error) {
	return jsonbValue(v)
}

func (v *VitalSigns) Scan(src interface{}) error {
	return jsonbScan(src, v)
}

type MedicalRecord struct {
	ID            int64      `json:"id"`
	PatientID     int64      `json:"patient_id"`
	PatientName   string     `json:"patient_name,omitempty"`
	DoctorID      int64      `json:"doctor_id"`
	DoctorName    string     `json:"doctor_name,omitempty"`
	AppointmentID *int64     `json:"appointment_id"`
	VisitDate     time.Time  `json:"visit_date"`
	Symptoms      string     `json:"symptoms"`
	Diagnosis     string     `json:"diagnosis"`
	TreatmentPlan string     `json:"treatment_plan"`
	Notes         string     `json:"notes"`
	VitalSigns    VitalSigns `json:"vital_signs"`
	TimeModel
}

func (m MedicalRecord) Owner() Owner {
	return Owner{PatientID: m.PatientID, DoctorID: m.DoctorID}
}

type MedicalRecordFilter struct {
	PatientID int64
	DoctorID  int64
	Pagination
}

type Attachment struct {
	ObjectName   string    `json:"object_name"`
	FileName     string    `json:"file_name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
	URL          string    `json:"url"`
}
