package models

import "time"

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

type Patient struct {
	ID                     int64      `json:"id"`
	PatientNumber          string     `json:"patient_number"`
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	DateOfBirth            *time.Time `json:"date_of_birth"`
	Gender                 string     `json:"gender"`
	BloodGroup             string     `json:"blood_group"`
	ContactNumber          string     `json:"contact_number"`
	Email                  string     `json:"email"`
	Address                string     `json:"address"`
	EmergencyContact       string     `json:"emergency_contact"`
	EmergencyContactNumber string     `json:"emergency_contact_number"`
	TimeModel
}

func (p Patient) FullName() string {
	return joinName(p.FirstName, p.LastName)
}

func (p Patient) Owner() Owner {
	return Owner{PatientID: p.ID}
}

type PatientFilter struct {
	Search string
	Pagination
}

func joinName(first, last string) string {
	if last == "" {
		return first
	}
	if first == "" {
		return last
	}
	return first + " " + last
}
