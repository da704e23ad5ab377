package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidDate возвращается при попытке записи на прошедшую дату
	ErrInvalidDate = errors.New("create_appointment: date is in the past")

	// ErrHoliday возвращается при попытке записи на праздничный день
	ErrHoliday = errors.New("create_appointment: date falls on a holiday")

	// ErrWeekend возвращается при попытке записи на выходной день
	ErrWeekend = errors.New("create_appointment: date falls on a weekend")

	// ErrDayFull возвращается, когда лимит записей на день исчерпан
	ErrDayFull = errors.New("create_appointment: daily appointment capacity reached")

	// ErrTimeConflict возвращается, когда у пользователя уже есть запись
	// в пределах конфликтного окна в этот день
	ErrTimeConflict = errors.New("create_appointment: conflicting appointment within time slot buffer")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
