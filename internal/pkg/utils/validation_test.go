package utils

import (
	"testing"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_CreateAppointment(t *testing.T) {
	tests := []struct {
		name    string
		request requests.CreateAppointment
		wantMsg string
	}{
		{
			name:    "valid with minutes",
			request: requests.CreateAppointment{DoctorID: 1, AppointmentDate: "2025-11-20", AppointmentTime: "10:00"},
		},
		{
			name:    "valid with seconds",
			request: requests.CreateAppointment{DoctorID: 1, AppointmentDate: "2025-11-20", AppointmentTime: "10:00:00"},
		},
		{
			name:    "missing doctor",
			request: requests.CreateAppointment{AppointmentDate: "2025-11-20", AppointmentTime: "10:00"},
			wantMsg: "doctor_id is required",
		},
		{
			name:    "bad date",
			request: requests.CreateAppointment{DoctorID: 1, AppointmentDate: "2025-13-40", AppointmentTime: "10:00"},
			wantMsg: "appointment_date must be a valid date in YYYY-MM-DD format",
		},
		{
			name:    "bad time",
			request: requests.CreateAppointment{DoctorID: 1, AppointmentDate: "2025-11-20", AppointmentTime: "25:00"},
			wantMsg: "appointment_time must be a valid time in HH:MM or HH:MM:SS format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.request)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantMsg, exceptions.FormatFirstValidationError(err))
		})
	}
}

func TestValidateStruct_StatusWithSpace(t *testing.T) {
	assert.NoError(t, ValidateStruct(requests.UpdateAppointmentStatus{Status: "No Show"}))
	assert.Error(t, ValidateStruct(requests.UpdateAppointmentStatus{Status: "Rescheduled"}))
}

func TestValidateStruct_RegisterPatient(t *testing.T) {
	request := requests.RegisterPatient{
		Email:          "jane@example.com",
		Password:       "Secret#123",
		RetypePassword: "Secret#123",
		FirstName:      "Jane",
		BloodGroup:     "O+",
		Gender:         "Female",
	}
	assert.NoError(t, ValidateStruct(request))

	request.Password = "weakpassword"
	request.RetypePassword = "weakpassword"
	err := ValidateStruct(request)
	assert.Error(t, err)
	assert.Contains(t, exceptions.FormatFirstValidationError(err), "password")

	request.Password = "Secret#123"
	request.RetypePassword = "Secret#123"
	request.BloodGroup = "C+"
	assert.Error(t, ValidateStruct(request))
}

func TestValidateStruct_RecordPayment(t *testing.T) {
	assert.NoError(t, ValidateStruct(requests.RecordPayment{Amount: decimal.NewFromInt(10), PaymentMethod: "UPI"}))

	err := ValidateStruct(requests.RecordPayment{Amount: decimal.NewFromInt(10), PaymentMethod: "Cheque"})
	assert.Error(t, err)
	assert.Equal(t, "payment_method must be one of [Cash, Card, UPI, Insurance]", exceptions.FormatFirstValidationError(err))
}
