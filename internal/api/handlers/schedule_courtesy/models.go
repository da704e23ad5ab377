package schedule_courtesy

import (
	"time"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	scheduleCourtesy "github.com/m04kA/CSC-AppointmentService/internal/usecase/schedule_courtesy"
	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

// ScheduleCourtesyRequest HTTP request model.
// Слот может выпадать на выходной или праздник: календарные правила
// на courtesy-запросы не распространяются.
type ScheduleCourtesyRequest struct {
	Date      string `json:"date"`      // "2026-09-14"
	StartTime string `json:"startTime"` // "09:00 AM"
}

// ScheduledAppointmentResponse HTTP response model
type ScheduledAppointmentResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Purpose     string `json:"purpose"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	ScheduledBy int64  `json:"scheduledBy"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleCourtesyRequest) ToUseCaseRequest(appointmentID, staffID int64) (*scheduleCourtesy.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &scheduleCourtesy.Request{
		AppointmentID: appointmentID,
		StaffID:       staffID,
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleCourtesy.Response) *ScheduledAppointmentResponse {
	return &ScheduledAppointmentResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		Purpose:     resp.Purpose,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		Status:      resp.Status,
		ScheduledBy: resp.ScheduledBy,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
