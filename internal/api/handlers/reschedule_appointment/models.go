package reschedule_appointment

import (
	"time"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	rescheduleAppointment "github.com/m04kA/CSC-AppointmentService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	Date      string `json:"date"`      // "2026-09-14"
	StartTime string `json:"startTime"` // "09:00 AM"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	Type       string `json:"type"`
	IsCourtesy bool   `json:"isCourtesy"`
	Purpose    string `json:"purpose"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(appointmentID, userID int64) (*rescheduleAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		UserID:        userID,
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		Type:       string(resp.Type),
		IsCourtesy: resp.IsCourtesy,
		Purpose:    resp.Purpose,
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       resp.Time.String(),
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
