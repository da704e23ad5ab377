package domain

import "time"

// CalendarRules are the pure availability predicates over a date:
// the fixed holiday calendar, the weekend rule and the daily capacity
// limit. The rules never touch storage; callers pass in the current
// DayCountIndex.
type CalendarRules struct {
	holidays map[string]struct{} // ключи в формате MM-DD
	maxDaily int
}

// NewCalendarRules builds the rules from a holiday list (MM-DD entries)
// and the daily capacity constant. Unknown-length or empty inputs fall
// back to the defaults.
func NewCalendarRules(holidays []string, maxDaily int) CalendarRules {
	if len(holidays) == 0 {
		holidays = DefaultHolidays
	}
	if maxDaily <= 0 {
		maxDaily = DefaultMaxDailyAppointments
	}

	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h] = struct{}{}
	}

	return CalendarRules{holidays: set, maxDaily: maxDaily}
}

// MaxDaily returns the daily capacity limit
func (r CalendarRules) MaxDaily() int {
	return r.maxDaily
}

// IsHoliday returns true if the date's month-day falls in the holiday set.
// The calendar is not year-dependent.
func (r CalendarRules) IsHoliday(date time.Time) bool {
	_, ok := r.holidays[date.Format(HolidayFormat)]
	return ok
}

// IsWeekend returns true if the date is a Saturday or Sunday
func (r CalendarRules) IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBookable returns true if the date is neither a holiday nor a weekend
// and the confirmed-appointment count for the day is below capacity
func (r CalendarRules) IsBookable(date time.Time, index DayCountIndex) bool {
	return r.CheckBookable(date, index) == nil
}

// CheckBookable is IsBookable with a descriptive error naming the violated
// rule: ErrHoliday, ErrWeekend or ErrDayFull
func (r CalendarRules) CheckBookable(date time.Time, index DayCountIndex) error {
	if r.IsHoliday(date) {
		return ErrHoliday
	}
	if r.IsWeekend(date) {
		return ErrWeekend
	}
	if index.CountFor(date) >= r.maxDaily {
		return ErrDayFull
	}
	return nil
}
