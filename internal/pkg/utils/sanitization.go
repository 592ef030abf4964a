package utils

import (
	"hospital-service/internal/pkg/dto/requests"
	"strings"
	"unicode"
)

func capitalize(input string) string {
	if len(input) == 0 {
		return input
	}
	runes := []rune(input)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimPtr(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func SanitizeRegisterPatientRequest(input *requests.RegisterPatient) {
	input.Email = sanitizeEmail(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = capitalize(strings.TrimSpace(input.Gender))
	input.BloodGroup = strings.ToUpper(strings.TrimSpace(input.BloodGroup))
	input.ContactNumber = strings.TrimSpace(input.ContactNumber)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = sanitizeEmail(input.Email)
}

func SanitizeCreateUserRequest(input *requests.CreateUser) {
	input.Email = sanitizeEmail(input.Email)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = capitalize(strings.TrimSpace(input.Gender))
	input.BloodGroup = strings.ToUpper(strings.TrimSpace(input.BloodGroup))
	input.ContactNumber = strings.TrimSpace(input.ContactNumber)
	input.Email = sanitizeEmail(input.Email)
	input.Address = strings.TrimSpace(input.Address)
	input.EmergencyContact = strings.TrimSpace(input.EmergencyContact)
	input.EmergencyContactNumber = strings.TrimSpace(input.EmergencyContactNumber)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	trimPtr(input.FirstName)
	trimPtr(input.LastName)
	trimPtr(input.DateOfBirth)
	trimPtr(input.ContactNumber)
	trimPtr(input.Address)
	trimPtr(input.EmergencyContact)
	trimPtr(input.EmergencyContactNumber)
	if input.Gender != nil {
		*input.Gender = capitalize(strings.TrimSpace(*input.Gender))
	}
	if input.BloodGroup != nil {
		*input.BloodGroup = strings.ToUpper(strings.TrimSpace(*input.BloodGroup))
	}
	if input.Email != nil {
		*input.Email = sanitizeEmail(*input.Email)
	}
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.AppointmentTime = strings.TrimSpace(input.AppointmentTime)
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeRecordPaymentRequest(input *requests.RecordPayment) {
	input.PaymentMethod = strings.TrimSpace(input.PaymentMethod)
	input.TransactionID = strings.TrimSpace(input.TransactionID)
	input.PaymentDate = strings.TrimSpace(input.PaymentDate)
}
