package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByUserWithFilter(ctx context.Context, filter domain.UserAppointmentsFilter) ([]*domain.Appointment, error)
	CountConfirmedByDate(ctx context.Context, start, end time.Time) (domain.DayCountIndex, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
