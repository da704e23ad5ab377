package domain

import "time"

// DayCountIndex is the derived day-capacity aggregate: calendar date
// (YYYY-MM-DD) to the number of Confirmed non-courtesy appointments on
// that date. It is never persisted; it is rebuilt by scanning the
// appointment collection and patched in memory as live updates arrive,
// so it is eventually, not immediately, consistent with concurrent
// writers.
type DayCountIndex map[string]int

// BuildDayCountIndex rebuilds the index from a scan of appointments
func BuildDayCountIndex(appointments []*Appointment) DayCountIndex {
	index := make(DayCountIndex)
	for _, appt := range appointments {
		if appt.IsCourtesy {
			continue
		}
		if appt.Status != StatusConfirmed {
			continue
		}
		index[appt.Date.Format(DateFormat)]++
	}
	return index
}

// CountFor returns the confirmed-appointment count for a date
func (i DayCountIndex) CountFor(date time.Time) int {
	return i[date.Format(DateFormat)]
}

// Increment patches the index in memory after observing a confirmation
func (i DayCountIndex) Increment(date time.Time) {
	i[date.Format(DateFormat)]++
}

// Decrement patches the index in memory after observing a cancellation
func (i DayCountIndex) Decrement(date time.Time) {
	key := date.Format(DateFormat)
	if i[key] > 0 {
		i[key]--
	}
}
