package notifier

import "github.com/m04kA/CSC-AppointmentService/internal/domain"

// StatusChange наблюдаемый переход статуса записи между двумя
// последовательными снапшотами live-подписки
type StatusChange struct {
	Appointment *domain.Appointment
	From        domain.AppointmentStatus
	To          domain.AppointmentStatus
}

// DiffEngine сравнивает последовательные снапшоты коллекции записей и
// выделяет значимые для пользователя переходы статусов. Карта предыдущих
// состояний передаётся явно при каждом вызове: движок не хранит
// глобального состояния, владение картой остаётся у вызывающего
// (время жизни карты = время жизни подписки).
type DiffEngine struct{}

// NewDiffEngine создает диффер снапшотов
func NewDiffEngine() *DiffEngine {
	return &DiffEngine{}
}

// Diff сравнивает снапшот current с картой последних известных статусов
// prev и возвращает список значимых переходов вместе с новой картой
// состояний, которой нужно заменить prev.
//
// Повторная доставка неизменённого набора (нормальное поведение
// live-подписки) не порождает переходов. Новые записи, впервые попавшие
// в снапшот, тоже: их начальный статус не является переходом.
func (e *DiffEngine) Diff(
	prev map[int64]domain.AppointmentStatus,
	current []*domain.Appointment,
) ([]StatusChange, map[int64]domain.AppointmentStatus) {
	next := make(map[int64]domain.AppointmentStatus, len(current))
	changes := make([]StatusChange, 0)

	for _, appt := range current {
		next[appt.ID] = appt.Status

		lastKnown, seen := prev[appt.ID]
		if !seen {
			// Новая запись с начальным статусом — не переход
			continue
		}
		if lastKnown == appt.Status {
			continue
		}

		if isMeaningfulTransition(lastKnown, appt.Status) {
			changes = append(changes, StatusChange{
				Appointment: appt,
				From:        lastKnown,
				To:          appt.Status,
			})
		}
	}

	return changes, next
}

// isMeaningfulTransition определяет, заслуживает ли переход уведомления:
// Pending→Confirmed, {Pending,Confirmed}→Cancelled, любой→Completed
// (кроме уже Completed). Остальные переходы (включая Rejected) пользователю
// не анонсируются.
func isMeaningfulTransition(from, to domain.AppointmentStatus) bool {
	switch to {
	case domain.StatusConfirmed:
		return from == domain.StatusPending
	case domain.StatusCancelled:
		return from == domain.StatusPending || from == domain.StatusConfirmed
	case domain.StatusCompleted:
		return from != domain.StatusCompleted
	default:
		return false
	}
}
