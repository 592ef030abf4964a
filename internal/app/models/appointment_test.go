package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	all := []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	}
	allowed := map[AppointmentStatus]map[AppointmentStatus]bool{
		AppointmentStatusScheduled: {
			AppointmentStatusConfirmed: true,
			AppointmentStatusCancelled: true,
			AppointmentStatusNoShow:    true,
		},
		AppointmentStatusConfirmed: {
			AppointmentStatusCompleted: true,
			AppointmentStatusCancelled: true,
			AppointmentStatusNoShow:    true,
		},
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				assert.Equal(t, allowed[from][to], from.CanTransitionTo(to))
			})
		}
	}
}

func TestAppointmentStatus_SlotAndTerminal(t *testing.T) {
	tests := []struct {
		status    AppointmentStatus
		terminal  bool
		holdsSlot bool
	}{
		{AppointmentStatusScheduled, false, true},
		{AppointmentStatusConfirmed, false, true},
		{AppointmentStatusCompleted, true, true},
		{AppointmentStatusCancelled, true, false},
		{AppointmentStatusNoShow, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.True(t, tt.status.IsValid())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.holdsSlot, tt.status.HoldsSlot())
		})
	}

	assert.False(t, AppointmentStatus("Rescheduled").IsValid())
}
