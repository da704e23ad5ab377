package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда запись принадлежит другому пользователю
	ErrAccessDenied = errors.New("reschedule_appointment: access denied")

	// ErrCourtesyReschedule возвращается при попытке перенести courtesy-запись
	// через обычный путь: слот courtesy-записи назначается только через
	// courtesy scheduling flow, и только один раз
	ErrCourtesyReschedule = errors.New("reschedule_appointment: courtesy appointments cannot be rescheduled")

	// ErrNotActive возвращается, когда статус записи не допускает перенос
	ErrNotActive = errors.New("reschedule_appointment: appointment is not in a reschedulable state")

	// ErrInvalidDate возвращается при попытке переноса на прошедшую дату
	ErrInvalidDate = errors.New("reschedule_appointment: date is in the past")

	// ErrHoliday возвращается при попытке переноса на праздничный день
	ErrHoliday = errors.New("reschedule_appointment: date falls on a holiday")

	// ErrWeekend возвращается при попытке переноса на выходной день
	ErrWeekend = errors.New("reschedule_appointment: date falls on a weekend")

	// ErrDayFull возвращается, когда лимит записей на новый день исчерпан
	ErrDayFull = errors.New("reschedule_appointment: daily appointment capacity reached")

	// ErrTimeConflict возвращается при конфликте с другой записью пользователя
	ErrTimeConflict = errors.New("reschedule_appointment: conflicting appointment within time slot buffer")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
