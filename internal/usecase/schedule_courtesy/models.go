package schedule_courtesy

import (
	"time"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

// Request модель запроса на назначение слота courtesy-записи
type Request struct {
	AppointmentID int64            // ID courtesy-записи в статусе Pending
	StaffID       int64            // ID сотрудника, назначающего слот
	Date          time.Time        // Назначаемая дата (правила календаря не применяются)
	StartTime     types.TimeString // Назначаемое время
}

// Response модель ответа с запланированной записью
type Response struct {
	ID          int64
	UserID      int64
	Purpose     string
	Date        time.Time
	Time        types.TimeString
	Status      string
	ScheduledBy int64
	CreatedAt   time.Time // не меняется при назначении слота
	UpdatedAt   time.Time
}

// fromDomain конвертирует domain модель в response
func fromDomain(a *domain.Appointment) *Response {
	resp := &Response{
		ID:        a.ID,
		UserID:    a.UserID,
		Purpose:   a.Purpose,
		Date:      a.Date,
		Time:      a.Time,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.ScheduledBy != nil {
		resp.ScheduledBy = *a.ScheduledBy
	}
	return resp
}
