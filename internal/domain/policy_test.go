package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

func TestPolicyFor(t *testing.T) {
	rules := NewCalendarRules(nil, 0)
	detector := NewConflictDetector(0)

	assert.IsType(t, CourtesyPolicy{}, PolicyFor(TypeCourtesy, rules, detector))
	assert.IsType(t, StandardPolicy{}, PolicyFor(TypeSolicitation, rules, detector))
	assert.IsType(t, StandardPolicy{}, PolicyFor(TypeInvitation, rules, detector))
	assert.IsType(t, StandardPolicy{}, PolicyFor(TypeMedicalFinance, rules, detector))
}

func TestStandardPolicyValidateSlot(t *testing.T) {
	rules := NewCalendarRules([]string{"12-25"}, 2)
	detector := NewConflictDetector(60)
	policy := PolicyFor(TypeSolicitation, rules, detector)

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	existing := []*Appointment{
		makeAppointment(1, monday, "09:00 AM", StatusConfirmed),
	}

	tests := []struct {
		name    string
		date    time.Time
		slot    string
		index   DayCountIndex
		wantErr error
	}{
		{"valid slot", monday, "10:00 AM", DayCountIndex{}, nil},
		{"past date", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), "10:00 AM", DayCountIndex{}, ErrDateInPast},
		{"holiday", time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), "10:00 AM", DayCountIndex{}, ErrHoliday},
		{"weekend", time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), "10:00 AM", DayCountIndex{}, ErrWeekend},
		{"day full", monday, "10:00 AM", DayCountIndex{"2026-09-14": 2}, ErrDayFull},
		{"time conflict", monday, "09:30 AM", DayCountIndex{}, ErrTimeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.ValidateSlot(tt.date, types.TimeString(tt.slot), now, tt.index, existing, 0)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCourtesyPolicyValidateSlot(t *testing.T) {
	policy := CourtesyPolicy{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	// Courtesy освобождена от праздников, выходных, лимита и конфликтов
	saturday := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, policy.ValidateSlot(saturday, "09:00 AM", now, nil, nil, 0))

	christmas := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, policy.ValidateSlot(christmas, "09:00 AM", now, nil, nil, 0))

	// Прошлое отклоняется даже для привилегированного пути
	past := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, policy.ValidateSlot(past, "09:00 AM", now, nil, nil, 0), ErrDateInPast)

	// Сегодня — не прошлое
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, policy.ValidateSlot(today, "09:00 AM", now, nil, nil, 0))
}

func TestStaffConfirmable(t *testing.T) {
	rules := NewCalendarRules(nil, 0)
	detector := NewConflictDetector(0)

	assert.True(t, PolicyFor(TypeSolicitation, rules, detector).StaffConfirmable())
	assert.False(t, PolicyFor(TypeCourtesy, rules, detector).StaffConfirmable())
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 9, 14, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), now))
	// Сегодняшний день не считается прошлым независимо от времени суток
	assert.False(t, IsDateInPast(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), now))
}
