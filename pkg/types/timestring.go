package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени слота: 12-часовой циферблат с меткой AM/PM,
// например "09:00 AM". Хранится в БД и отдаётся клиентам как есть.
const TimeFormat = "03:04 PM"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format")
)

// TimeString время в пределах суток в виде строки "hh:mm AM" / "hh:mm PM".
// Используется для отображения и для арифметики конфликтов (в минутах от
// полуночи). Не содержит даты и часового пояса.
type TimeString string

// NewTimeString создает TimeString из компонента времени time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString парсит и валидирует строку времени
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	// Нормализуем представление (например "9:00 am" -> "09:00 AM")
	return TimeString(t.Format(TimeFormat)), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата времени
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// MinutesSinceMidnight возвращает количество минут от полуночи
func (t TimeString) MinutesSinceMidnight() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на указанное число минут вперед
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(TimeFormat)), nil
}

// IsBefore проверяет, что время раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	tm, err := t.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	om, err := other.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	return tm < om
}

// IsAfter проверяет, что время позже other
func (t TimeString) IsAfter(other TimeString) bool {
	tm, err := t.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	om, err := other.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	return tm > om
}

// MinutesBetween возвращает абсолютную разницу в минутах между двумя временами
func (t TimeString) MinutesBetween(other TimeString) (int, error) {
	tm, err := t.MinutesSinceMidnight()
	if err != nil {
		return 0, err
	}
	om, err := other.MinutesSinceMidnight()
	if err != nil {
		return 0, err
	}
	diff := tm - om
	if diff < 0 {
		diff = -diff
	}
	return diff, nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
	return nil
}
