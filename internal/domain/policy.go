package domain

import (
	"time"

	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

// SchedulingPolicy is the per-lifecycle slot validation capability.
// The variant is selected once, at creation time, from the appointment
// type: the standard policy enforces CalendarRules and the
// ConflictDetector, the courtesy policy is exempt from both. This keeps
// the courtesy/ordinary branching in one place instead of scattering
// IsCourtesy checks across components.
type SchedulingPolicy interface {
	// Name идентификатор политики для логов
	Name() string

	// ValidateSlot проверяет, что слот (date, slot) допустим для записи.
	// excludeID исключает перезаписываемую запись из проверки конфликтов.
	ValidateSlot(
		date time.Time,
		slot types.TimeString,
		now time.Time,
		index DayCountIndex,
		existing []*Appointment,
		excludeID int64,
	) error

	// StaffConfirmable сообщает, можно ли подтвердить запись через
	// обычный staff-путь смены статуса. Courtesy-записи подтверждаются
	// только через courtesy scheduling flow.
	StaffConfirmable() bool
}

// PolicyFor selects the scheduling policy for an appointment type
func PolicyFor(t AppointmentType, rules CalendarRules, detector ConflictDetector) SchedulingPolicy {
	if t == TypeCourtesy {
		return CourtesyPolicy{}
	}
	return StandardPolicy{rules: rules, detector: detector}
}

// StandardPolicy enforces the full rule set: no past dates, no holidays
// or weekends, daily capacity, and the per-user conflict buffer
type StandardPolicy struct {
	rules    CalendarRules
	detector ConflictDetector
}

// Name идентификатор политики
func (p StandardPolicy) Name() string { return "standard" }

// ValidateSlot проверяет слот по полному набору правил
func (p StandardPolicy) ValidateSlot(
	date time.Time,
	slot types.TimeString,
	now time.Time,
	index DayCountIndex,
	existing []*Appointment,
	excludeID int64,
) error {
	if IsDateInPast(date, now) {
		return ErrDateInPast
	}

	if err := p.rules.CheckBookable(date, index); err != nil {
		return err
	}

	conflict, err := p.detector.HasConflict(date, slot, existing, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return ErrTimeConflict
	}

	return nil
}

// StaffConfirmable обычные записи подтверждаются через staff-путь
func (p StandardPolicy) StaffConfirmable() bool { return true }

// CourtesyPolicy is the privileged variant: exempt from holiday, weekend,
// capacity and conflict rules. Only scheduling into the past is rejected.
type CourtesyPolicy struct{}

// Name идентификатор политики
func (p CourtesyPolicy) Name() string { return "courtesy" }

// ValidateSlot для courtesy-записей проверяет только, что дата не в прошлом
func (p CourtesyPolicy) ValidateSlot(
	date time.Time,
	_ types.TimeString,
	now time.Time,
	_ DayCountIndex,
	_ []*Appointment,
	_ int64,
) error {
	if IsDateInPast(date, now) {
		return ErrDateInPast
	}
	return nil
}

// StaffConfirmable courtesy-записи подтверждаются только через courtesy flow
func (p CourtesyPolicy) StaffConfirmable() bool { return false }

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
// (сравниваются только даты, без времени)
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
