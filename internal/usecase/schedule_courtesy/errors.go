package schedule_courtesy

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_courtesy: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("schedule_courtesy: appointment not found")

	// ErrNotCourtesy возвращается, когда запись не является courtesy-запросом
	ErrNotCourtesy = errors.New("schedule_courtesy: appointment is not a courtesy request")

	// ErrAlreadyScheduled возвращается при повторной попытке назначить слот:
	// courtesy-запрос планируется ровно один раз
	ErrAlreadyScheduled = errors.New("schedule_courtesy: courtesy request is already scheduled")

	// ErrNotPending возвращается, когда запись находится в терминальном статусе
	ErrNotPending = errors.New("schedule_courtesy: appointment is not pending")

	// ErrDateInPast возвращается при попытке назначить слот в прошлом
	ErrDateInPast = errors.New("schedule_courtesy: date is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_courtesy: internal error")
)
