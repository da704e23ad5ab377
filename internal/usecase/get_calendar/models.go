package get_calendar

import (
	"time"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
)

// Request модель запроса месячного календаря
type Request struct {
	UserID   int64      // Пользователь, чьи записи отмечаются в ячейках
	Month    time.Time  // Любой день запрашиваемого месяца
	Selected *time.Time // Выбранная в UI дата (опционально)
}

// Response модель ответа с ячейками календаря.
// Ячейки покрывают весь месяц, с понедельника по воскресенье,
// состояние каждой вычисляется на момент запроса и нигде не хранится.
type Response struct {
	Month time.Time
	Days  []domain.CalendarDayView
}
