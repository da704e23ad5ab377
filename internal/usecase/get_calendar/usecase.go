package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
)

// UseCase use case построения месячного календаря: для каждого дня месяца
// вычисляется состояние ячейки (сегодня/выбран/недоступен/занят/загрузка)
// из правил календаря, индекса загрузки дней и собственных записей
// пользователя
type UseCase struct {
	appointmentRepo AppointmentRepository
	rules           domain.CalendarRules
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	rules domain.CalendarRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		rules:           rules,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute строит календарь на месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Month.IsZero() {
		return nil, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	uc.logger.Info("GetCalendar: user=%d, month=%s", req.UserID, req.Month.Format(domain.MonthFormat))

	now := uc.timeProvider.Now()

	// Границы месяца
	firstDay := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, req.Month.Location())
	lastDay := firstDay.AddDate(0, 1, -1)

	// Индекс загрузки дней пересобирается сканированием коллекции —
	// он производный и нигде не хранится
	index, err := uc.appointmentRepo.CountConfirmedByDate(ctx, firstDay, lastDay)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to build day count index: %v", err)
		return nil, fmt.Errorf("%w: failed to build day count index: %v", ErrInternal, err)
	}

	// Собственные записи пользователя для отметок в ячейках
	userAppointments, err := uc.appointmentRepo.GetByUserWithFilter(ctx, domain.UserAppointmentsFilter{
		UserID: req.UserID,
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get user appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get user appointments: %v", ErrInternal, err)
	}

	days := make([]domain.CalendarDayView, 0, lastDay.Day())
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		days = append(days, domain.BuildCalendarDayView(day, now, req.Selected, uc.rules, index, userAppointments))
	}

	uc.logger.Info("GetCalendar: built %d day cells for user=%d", len(days), req.UserID)

	return &Response{Month: firstDay, Days: days}, nil
}
