package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildDayCountIndex(t *testing.T) {
	day1 := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	courtesy := makeAppointment(4, day1, "11:00 AM", StatusConfirmed)
	courtesy.IsCourtesy = true

	appointments := []*Appointment{
		makeAppointment(1, day1, "09:00 AM", StatusConfirmed),
		makeAppointment(2, day1, "10:00 AM", StatusConfirmed),
		makeAppointment(3, day1, "11:00 AM", StatusPending), // не Confirmed — не считается
		courtesy, // courtesy не считается
		makeAppointment(5, day2, "09:00 AM", StatusConfirmed),
		makeAppointment(6, day2, "10:00 AM", StatusCancelled),
	}

	index := BuildDayCountIndex(appointments)

	assert.Equal(t, 2, index.CountFor(day1))
	assert.Equal(t, 1, index.CountFor(day2))
	assert.Equal(t, 0, index.CountFor(day2.AddDate(0, 0, 1)))
}

func TestDayCountIndexIncrementDecrement(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	index := make(DayCountIndex)

	index.Increment(day)
	index.Increment(day)
	assert.Equal(t, 2, index.CountFor(day))

	index.Decrement(day)
	assert.Equal(t, 1, index.CountFor(day))

	// Счётчик не уходит в минус
	index.Decrement(day)
	index.Decrement(day)
	assert.Equal(t, 0, index.CountFor(day))
}
