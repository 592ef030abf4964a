package models

import (
	"database/sql/driver"
	"time"
)

type PrescriptionStatus string

const (
	PrescriptionStatusActive    PrescriptionStatus = "Active"
	PrescriptionStatusCompleted PrescriptionStatus = "Completed"
	PrescriptionStatusCancelled PrescriptionStatus = "Cancelled"
)

func (s PrescriptionStatus) IsValid() bool {
	switch s {
	case PrescriptionStatusActive, PrescriptionStatusCompleted, PrescriptionStatusCancelled:
		return true
	}
	return false
}

type Medication struct {
	DrugName     string `json:"drug_name" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	DurationDays int    `json:"duration_days" validate:"gte=0"`
}

type Medications []Medication

func (m Medications) Value() (driver.Value, error) {
	if m == nil {
		return jsonbValue([]Medication{})
	}
	return jsonbValue([]Medication(m))
}

func (m *Medications) Scan(src interface{}) error {
	return jsonbScan(src, m)
}

type Prescription struct {
	ID               int64              `json:"id"`
	PatientID        int64              `json:"patient_id"`
	PatientName      string             `json:"patient_name,omitempty"`
	DoctorID         int64              `json:"doctor_id"`
	DoctorName       string             `json:"doctor_name,omitempty"`
	MedicalRecordID  *int64             `json:"medical_record_id"`
	Medications      Medications        `json:"medications"`
	Instructions     string             `json:"instructions"`
	PrescriptionDate time.Time          `json:"prescription_date"`
	ValidUntil       *time.Time         `json:"valid_until"`
	Status           PrescriptionStatus `json:"status"`
	TimeModel
}

func (p Prescription) Owner() Owner {
	return Owner{PatientID: p.PatientID, DoctorID: p.DoctorID}
}

type PrescriptionFilter struct {
	PatientID int64
	DoctorID  int64
	Status    PrescriptionStatus
	Pagination
}
