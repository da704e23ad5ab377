package get_calendar

import (
	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	getCalendar "github.com/m04kA/CSC-AppointmentService/internal/usecase/get_calendar"
)

// CalendarDayResponse состояние одной ячейки календаря
type CalendarDayResponse struct {
	Date              string  `json:"date"` // "2026-09-14"
	IsToday           bool    `json:"isToday"`
	IsSelected        bool    `json:"isSelected"`
	IsUnavailable     bool    `json:"isUnavailable"`
	HasAppointment    bool    `json:"hasAppointment"`
	AppointmentStatus string  `json:"appointmentStatus,omitempty"`
	Density           float64 `json:"density"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Month string                `json:"month"` // "2026-09"
	Days  []CalendarDayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, CalendarDayResponse{
			Date:              day.Date.Format(domain.DateFormat),
			IsToday:           day.IsToday,
			IsSelected:        day.IsSelected,
			IsUnavailable:     day.IsUnavailable,
			HasAppointment:    day.HasAppointment,
			AppointmentStatus: string(day.AppointmentStatus),
			Density:           day.Density,
		})
	}

	return &CalendarResponse{
		Month: resp.Month.Format(domain.MonthFormat),
		Days:  days,
	}
}
