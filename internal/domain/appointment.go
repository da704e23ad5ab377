package domain

import (
	"time"

	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment.
// Values are stored in the database exactly as listed, case-sensitive.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusRejected  AppointmentStatus = "Rejected"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusCompleted AppointmentStatus = "Completed"
)

// AppointmentType represents the category of an appointment request
type AppointmentType string

const (
	TypeSolicitation   AppointmentType = "solicitation"
	TypeCourtesy       AppointmentType = "courtesy"
	TypeInvitation     AppointmentType = "invitation"
	TypeMedicalFinance AppointmentType = "medical_finance"
)

// statusTransitions таблица допустимых переходов статусов.
// Любой переход, которого нет в таблице, отклоняется.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether a status change from s to target is
// allowed by the lifecycle state machine.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions
func (s AppointmentStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// IsValid reports whether s is one of the known status values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsValid reports whether t is one of the known appointment types
func (t AppointmentType) IsValid() bool {
	switch t {
	case TypeSolicitation, TypeCourtesy, TypeInvitation, TypeMedicalFinance:
		return true
	}
	return false
}

// Appointment represents a constituent appointment request in the system
type Appointment struct {
	ID         int64
	UserID     int64
	Type       AppointmentType
	IsCourtesy bool // immutable after creation, selects the scheduling policy
	Purpose    string

	// Date is the appointment day. For courtesy requests it holds the
	// creation time as a placeholder until staff schedule a real slot.
	Date time.Time
	// Time is the wall-clock slot start, denormalized for display and
	// conflict arithmetic.
	Time types.TimeString

	Status      AppointmentStatus
	ScheduledBy *int64 // staff member who scheduled a courtesy request

	// Medical-finance extension fields, present only for TypeMedicalFinance
	PatientName          *string
	ProcessorName        *string
	MedicalDetails       *string
	VerificationImageRef *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies a slot
// (counts towards conflicts and capacity)
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsTerminal returns true if the appointment reached a final status
func (a *Appointment) IsTerminal() bool {
	return a.Status.IsTerminal()
}

// CanBeCancelled returns true if the appointment may transition to Cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status.CanTransitionTo(StatusCancelled)
}

// CanBeRescheduled returns true if the appointment date/time may be changed
// through the ordinary reschedule path. Courtesy requests are scheduled
// exclusively through the courtesy flow.
func (a *Appointment) CanBeRescheduled() bool {
	return !a.IsCourtesy && a.IsActive()
}

// OnDate returns true if the appointment falls on the given calendar day
func (a *Appointment) OnDate(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// UserAppointmentsFilter фильтр для получения записей пользователя
type UserAppointmentsFilter struct {
	UserID     int64              // Обязательный параметр
	Status     *AppointmentStatus // Фильтр по статусу (опционально)
	Date       *time.Time         // Фильтр по конкретной дате (опционально)
	OnlyActive bool               // Только Pending/Confirmed
}

// AppointmentsFilter фильтр для выборки записей по датам и статусам
type AppointmentsFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeCourtesy bool
}
