package reschedule_appointment

import (
	"time"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64            // ID переносимой записи
	UserID        int64            // ID пользователя-владельца
	Date          time.Time        // Новая дата
	StartTime     types.TimeString // Новое время
}

// Response модель ответа с обновлённой записью
type Response struct {
	ID         int64
	UserID     int64
	Type       domain.AppointmentType
	IsCourtesy bool
	Purpose    string
	Date       time.Time
	Time       types.TimeString
	Status     string // статус переносом не меняется
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// fromDomain конвертирует domain модель в response
func fromDomain(a *domain.Appointment) *Response {
	return &Response{
		ID:         a.ID,
		UserID:     a.UserID,
		Type:       a.Type,
		IsCourtesy: a.IsCourtesy,
		Purpose:    a.Purpose,
		Date:       a.Date,
		Time:       a.Time,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
