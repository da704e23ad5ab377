package create_appointment

import (
	"time"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID  int64                  // ID пользователя
	Type    domain.AppointmentType // Категория записи
	Purpose string                 // Цель визита, обязательное поле

	// Дата и время слота. Для courtesy-запросов не обязательны:
	// слот назначается сотрудником позже через courtesy flow.
	Date      time.Time
	StartTime types.TimeString

	// Поля расширения для типа medical_finance
	PatientName          *string
	ProcessorName        *string
	MedicalDetails       *string
	VerificationImageRef *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64
	UserID     int64
	Type       domain.AppointmentType
	IsCourtesy bool
	Purpose    string
	Date       time.Time
	Time       types.TimeString
	Status     string

	PatientName          *string
	ProcessorName        *string
	MedicalDetails       *string
	VerificationImageRef *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует domain модель в response
func fromDomain(a *domain.Appointment) *Response {
	return &Response{
		ID:                   a.ID,
		UserID:               a.UserID,
		Type:                 a.Type,
		IsCourtesy:           a.IsCourtesy,
		Purpose:              a.Purpose,
		Date:                 a.Date,
		Time:                 a.Time,
		Status:               string(a.Status),
		PatientName:          a.PatientName,
		ProcessorName:        a.ProcessorName,
		MedicalDetails:       a.MedicalDetails,
		VerificationImageRef: a.VerificationImageRef,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}
