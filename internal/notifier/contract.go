package notifier

import (
	"context"

	"github.com/m04kA/CSC-AppointmentService/internal/integrations/notifyservice"
)

// NotificationDispatcher интерфейс клиента доставки уведомлений
type NotificationDispatcher interface {
	Send(ctx context.Context, notification *notifyservice.Notification) error
}

// Metrics интерфейс метрик уведомлений
type Metrics interface {
	ObserveNotification(transition, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
