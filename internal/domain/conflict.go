package domain

import (
	"time"

	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

// ConflictDetector checks a candidate (user, date, time) against the
// user's existing appointments. Two appointments of the same user on the
// same calendar day conflict when their start times are strictly closer
// than BufferMinutes. Courtesy appointments are excluded from both sides
// of the comparison. The check is advisory: it is not atomic against
// concurrent writers, the serializable transaction in the create usecase
// closes that window.
type ConflictDetector struct {
	bufferMinutes int
}

// NewConflictDetector creates a detector with the given conflict buffer
// in minutes (falls back to the default when non-positive)
func NewConflictDetector(bufferMinutes int) ConflictDetector {
	if bufferMinutes <= 0 {
		bufferMinutes = DefaultTimeSlotConflictMinutes
	}
	return ConflictDetector{bufferMinutes: bufferMinutes}
}

// BufferMinutes returns the configured conflict buffer
func (d ConflictDetector) BufferMinutes() int {
	return d.bufferMinutes
}

// HasConflict reports whether the candidate slot collides with any of the
// user's existing appointments. excludeID removes the appointment being
// rescheduled from the comparison (0 = nothing excluded).
func (d ConflictDetector) HasConflict(
	date time.Time,
	slot types.TimeString,
	existing []*Appointment,
	excludeID int64,
) (bool, error) {
	candidate, err := slot.MinutesSinceMidnight()
	if err != nil {
		return false, err
	}

	for _, appt := range existing {
		if appt.ID == excludeID {
			continue
		}
		// Курьерные (courtesy) записи не участвуют в проверке конфликтов
		if appt.IsCourtesy {
			continue
		}
		if !appt.IsActive() {
			continue
		}
		if !appt.OnDate(date) {
			continue
		}

		minutes, err := appt.Time.MinutesSinceMidnight()
		if err != nil {
			// Некорректное время существующей записи не должно блокировать
			// проверку остальных
			continue
		}

		diff := candidate - minutes
		if diff < 0 {
			diff = -diff
		}
		if diff < d.bufferMinutes {
			return true, nil
		}
	}

	return false, nil
}
