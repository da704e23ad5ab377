package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidStatus возвращается при некорректном целевом статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTransition возвращается, когда текущий статус записи
	// не допускает запрошенный переход
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCourtesyConfirm возвращается при попытке подтвердить courtesy-запрос
	// через обычный staff-путь: подтверждение courtesy-запросов выполняется
	// только назначением слота через courtesy scheduling flow
	ErrCourtesyConfirm = errors.New("courtesy requests cannot be confirmed through this path")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
