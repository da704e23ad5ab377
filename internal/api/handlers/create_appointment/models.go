package create_appointment

import (
	"time"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/CSC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model.
// Date и startTime обязательны для всех типов, кроме courtesy:
// courtesy-запрос создается без слота, слот назначает сотрудник.
type CreateAppointmentRequest struct {
	Type      string `json:"type"`
	Purpose   string `json:"purpose"`
	Date      string `json:"date,omitempty"`      // "2026-09-14"
	StartTime string `json:"startTime,omitempty"` // "09:00 AM"

	PatientName          *string `json:"patientName,omitempty"`
	ProcessorName        *string `json:"processorName,omitempty"`
	MedicalDetails       *string `json:"medicalDetails,omitempty"`
	VerificationImageRef *string `json:"verificationImageRef,omitempty"`
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

	PatientName          *string `json:"patientName,omitempty"`
	ProcessorName        *string `json:"processorName,omitempty"`
	MedicalDetails       *string `json:"medicalDetails,omitempty"`
	VerificationImageRef *string `json:"verificationImageRef,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		UserID:               userID,
		Type:                 domain.AppointmentType(r.Type),
		Purpose:              r.Purpose,
		PatientName:          r.PatientName,
		ProcessorName:        r.ProcessorName,
		MedicalDetails:       r.MedicalDetails,
		VerificationImageRef: r.VerificationImageRef,
	}

	// Для courtesy дата и время могут отсутствовать
	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if r.StartTime != "" {
		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                   resp.ID,
		UserID:               resp.UserID,
		Type:                 string(resp.Type),
		IsCourtesy:           resp.IsCourtesy,
		Purpose:              resp.Purpose,
		Date:                 resp.Date.Format(domain.DateFormat),
		Time:                 resp.Time.String(),
		Status:               resp.Status,
		PatientName:          resp.PatientName,
		ProcessorName:        resp.ProcessorName,
		MedicalDetails:       resp.MedicalDetails,
		VerificationImageRef: resp.VerificationImageRef,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
