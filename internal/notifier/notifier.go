package notifier

import (
	"context"
	"fmt"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	"github.com/m04kA/CSC-AppointmentService/internal/integrations/notifyservice"
)

// Notifier наблюдает за снапшотами live-подписки и отправляет ровно одно
// уведомление на каждый значимый переход статуса. Уведомление advisory:
// запись в хранилище уже отражает истинное состояние, поэтому ошибка
// доставки логируется и не повторяется.
type Notifier struct {
	diff       *DiffEngine
	dispatcher NotificationDispatcher
	metrics    Metrics // может быть nil, если метрики отключены
	logger     Logger
}

// New создает notifier
func New(dispatcher NotificationDispatcher, metrics Metrics, logger Logger) *Notifier {
	return &Notifier{
		diff:       NewDiffEngine(),
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}
}

// Run обрабатывает снапшоты до отмены контекста. Карта последних известных
// статусов живёт ровно столько, сколько живёт подписка: при перезапуске
// цикла состояние начинается заново, и первый снапшот уведомлений не даёт.
func (n *Notifier) Run(ctx context.Context, snapshots <-chan []*domain.Appointment) {
	lastKnown := make(map[int64]domain.AppointmentStatus)

	n.logger.Info("Notifier: started")

	for {
		select {
		case <-ctx.Done():
			n.logger.Info("Notifier: stopped")
			return

		case snapshot, ok := <-snapshots:
			if !ok {
				n.logger.Info("Notifier: snapshot channel closed")
				return
			}

			changes, next := n.diff.Diff(lastKnown, snapshot)
			lastKnown = next

			for _, change := range changes {
				n.dispatch(ctx, change)
			}
		}
	}
}

// dispatch отправляет одно уведомление о переходе статуса.
// Ошибка доставки не влияет на состояние записи и не ретраится.
func (n *Notifier) dispatch(ctx context.Context, change StatusChange) {
	transition := fmt.Sprintf("%s->%s", change.From, change.To)

	notification := buildNotification(change)

	if err := n.dispatcher.Send(ctx, notification); err != nil {
		n.logger.Error("Notifier: failed to dispatch notification for appointment id=%d (%s): %v",
			change.Appointment.ID, transition, err)
		n.observe(transition, "error")
		return
	}

	n.logger.Info("Notifier: dispatched notification for appointment id=%d user=%d (%s)",
		change.Appointment.ID, change.Appointment.UserID, transition)
	n.observe(transition, "ok")
}

func (n *Notifier) observe(transition, result string) {
	if n.metrics != nil {
		n.metrics.ObserveNotification(transition, result)
	}
}

// buildNotification формирует текст уведомления по типу перехода
func buildNotification(change StatusChange) *notifyservice.Notification {
	appt := change.Appointment

	var title, body string
	switch change.To {
	case domain.StatusConfirmed:
		title = "Appointment Confirmed"
		body = fmt.Sprintf("Your appointment on %s at %s has been confirmed.",
			appt.Date.Format(domain.DateFormat), appt.Time)
	case domain.StatusCancelled:
		title = "Appointment Cancelled"
		body = fmt.Sprintf("Your appointment on %s at %s has been cancelled.",
			appt.Date.Format(domain.DateFormat), appt.Time)
	case domain.StatusCompleted:
		title = "Appointment Completed"
		body = fmt.Sprintf("Your appointment on %s has been marked as completed.",
			appt.Date.Format(domain.DateFormat))
	default:
		title = "Appointment Updated"
		body = fmt.Sprintf("Your appointment status changed to %s.", change.To)
	}

	return &notifyservice.Notification{
		UserID: appt.UserID,
		Title:  title,
		Body:   body,
		Data: map[string]string{
			"appointmentId": fmt.Sprintf("%d", appt.ID),
			"transition":    fmt.Sprintf("%s->%s", change.From, change.To),
			"status":        string(change.To),
		},
	}
}
