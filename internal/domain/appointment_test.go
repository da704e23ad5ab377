package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"confirmed to rejected", StatusConfirmed, StatusRejected, false},
		{"rejected is terminal", StatusRejected, StatusConfirmed, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted} {
		assert.True(t, s.IsValid())
	}

	// Статусы регистрозависимы
	assert.False(t, AppointmentStatus("pending").IsValid())
	assert.False(t, AppointmentStatus("CONFIRMED").IsValid())
	assert.False(t, AppointmentStatus("unknown").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointmentIsActive(t *testing.T) {
	appt := &Appointment{Status: StatusPending}
	assert.True(t, appt.IsActive())

	appt.Status = StatusConfirmed
	assert.True(t, appt.IsActive())

	for _, s := range TerminalStatuses {
		appt.Status = s
		assert.False(t, appt.IsActive(), "status %s", s)
	}
}

func TestAppointmentCanBeRescheduled(t *testing.T) {
	appt := &Appointment{Status: StatusPending}
	assert.True(t, appt.CanBeRescheduled())

	appt.Status = StatusConfirmed
	assert.True(t, appt.CanBeRescheduled())

	appt.Status = StatusCompleted
	assert.False(t, appt.CanBeRescheduled())

	// Courtesy-записи переносятся только через courtesy flow
	courtesy := &Appointment{Status: StatusPending, IsCourtesy: true}
	assert.False(t, courtesy.CanBeRescheduled())
}

func TestAppointmentOnDate(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	appt := &Appointment{Date: date}

	assert.True(t, appt.OnDate(date))
	assert.True(t, appt.OnDate(time.Date(2026, 9, 14, 23, 59, 0, 0, time.UTC)))
	assert.False(t, appt.OnDate(date.AddDate(0, 0, 1)))
}
