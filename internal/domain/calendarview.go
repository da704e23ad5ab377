package domain

import "time"

// CalendarDayView is the request-scoped presentation state of a single
// day cell in the week/month calendar. It is computed on demand and
// never persisted.
type CalendarDayView struct {
	Date          time.Time
	IsToday       bool
	IsSelected    bool
	IsUnavailable bool // праздник, выходной, прошедшая дата или день заполнен
	HasAppointment bool
	// AppointmentStatus статус собственной записи пользователя на этот день
	// (пустой, если записи нет)
	AppointmentStatus AppointmentStatus
	// Density загрузка дня: отношение подтверждённых записей к лимиту (0..1)
	Density float64
}

// BuildCalendarDayView derives the day-cell state from the rules, the
// count index and the user's own appointments
func BuildCalendarDayView(
	date time.Time,
	now time.Time,
	selected *time.Time,
	rules CalendarRules,
	index DayCountIndex,
	userAppointments []*Appointment,
) CalendarDayView {
	view := CalendarDayView{
		Date:    date,
		IsToday: IsSameDay(date, now),
	}

	if selected != nil && IsSameDay(date, *selected) {
		view.IsSelected = true
	}

	view.IsUnavailable = IsDateInPast(date, now) || !rules.IsBookable(date, index)

	if max := rules.MaxDaily(); max > 0 {
		view.Density = float64(index.CountFor(date)) / float64(max)
		if view.Density > 1 {
			view.Density = 1
		}
	}

	// Отмечаем собственную запись пользователя: активная запись имеет
	// приоритет над завершённой или отменённой
	for _, appt := range userAppointments {
		if !appt.OnDate(date) {
			continue
		}
		if !view.HasAppointment || appt.IsActive() {
			view.HasAppointment = true
			view.AppointmentStatus = appt.Status
		}
		if appt.IsActive() {
			break
		}
	}

	return view
}
