package models

import (
	"errors"
	"time"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на смену статуса записи (staff-only)
type UpdateStatusRequest struct {
	StaffID int64  `json:"staffId"`
	Status  string `json:"status"`
}

// GetUserAppointmentsRequest запрос на получение записей пользователя
type GetUserAppointmentsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Type        string `json:"type"`
	IsCourtesy  bool   `json:"isCourtesy"`
	Purpose     string `json:"purpose"`
	Date        string `json:"date"` // "2026-09-14"
	Time        string `json:"time"` // "09:00 AM"
	Status      string `json:"status"`
	ScheduledBy *int64 `json:"scheduledBy,omitempty"`

	PatientName          *string `json:"patientName,omitempty"`
	ProcessorName        *string `json:"processorName,omitempty"`
	MedicalDetails       *string `json:"medicalDetails,omitempty"`
	VerificationImageRef *string `json:"verificationImageRef,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                   a.ID,
		UserID:               a.UserID,
		Type:                 string(a.Type),
		IsCourtesy:           a.IsCourtesy,
		Purpose:              a.Purpose,
		Date:                 a.Date.Format(domain.DateFormat),
		Time:                 a.Time.String(),
		Status:               string(a.Status),
		ScheduledBy:          a.ScheduledBy,
		PatientName:          a.PatientName,
		ProcessorName:        a.ProcessorName,
		MedicalDetails:       a.MedicalDetails,
		VerificationImageRef: a.VerificationImageRef,
		CancellationReason:   a.CancellationReason,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией.
// Значения регистрозависимы и должны совпадать с хранимыми.
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
