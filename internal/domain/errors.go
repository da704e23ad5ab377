package domain

import "errors"

// Ошибки правил календаря и проверки слотов. Usecases оборачивают их
// в свои sentinel-ошибки, handlers переводят в HTTP-ответы.
var (
	// ErrHoliday возвращается при попытке записи на праздничный день
	ErrHoliday = errors.New("domain: date falls on a holiday")

	// ErrWeekend возвращается при попытке записи на выходной день
	ErrWeekend = errors.New("domain: date falls on a weekend")

	// ErrDayFull возвращается, когда лимит подтверждённых записей на день исчерпан
	ErrDayFull = errors.New("domain: daily appointment capacity reached")

	// ErrDateInPast возвращается при попытке записи на прошедшую дату
	ErrDateInPast = errors.New("domain: date is in the past")

	// ErrTimeConflict возвращается, когда у пользователя уже есть запись
	// в пределах конфликтного окна
	ErrTimeConflict = errors.New("domain: conflicting appointment within time slot buffer")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("domain: invalid status transition")
)
