package schedule_courtesy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/CSC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/CSC-AppointmentService/pkg/ptr"
)

// UseCase use case назначения слота pending courtesy-запросу.
// Привилегированный путь: правила праздников/выходных/лимита и проверка
// конфликтов не применяются, отклоняется только слот в прошлом.
// Назначение одной операцией переводит запись в Confirmed и фиксирует
// сотрудника в scheduled_by; created_at сохраняется исходный.
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case назначения слота courtesy-записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleCourtesy: appointment=%d, staff=%d, date=%s, time=%s",
		req.AppointmentID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleCourtesy: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Слот в прошлом отклоняется даже для привилегированного пути
	policy := domain.CourtesyPolicy{}
	if err := policy.ValidateSlot(req.Date, req.StartTime, now, nil, nil, 0); err != nil {
		uc.logger.Warn("ScheduleCourtesy: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	var result *domain.Appointment

	// 3. Проверка состояния и назначение в транзакции (строка блокируется)
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("ScheduleCourtesy: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("ScheduleCourtesy: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if !appt.IsCourtesy {
			uc.logger.Warn("ScheduleCourtesy: appointment id=%d is not a courtesy request", req.AppointmentID)
			return ErrNotCourtesy
		}

		// Courtesy-запрос планируется один раз: повторная попытка — stale state
		switch appt.Status {
		case domain.StatusPending:
			// допустимое состояние
		case domain.StatusConfirmed:
			uc.logger.Warn("ScheduleCourtesy: appointment id=%d is already scheduled", req.AppointmentID)
			return ErrAlreadyScheduled
		default:
			uc.logger.Warn("ScheduleCourtesy: appointment id=%d has status=%s", req.AppointmentID, appt.Status)
			return ErrNotPending
		}

		if err := uc.appointmentRepo.ScheduleCourtesy(txCtx, appt.ID, req.Date, req.StartTime, req.StaffID); err != nil {
			uc.logger.Error("ScheduleCourtesy: failed to schedule appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to schedule appointment: %v", ErrInternal, err)
		}

		appt.Date = req.Date
		appt.Time = req.StartTime
		appt.Status = domain.StatusConfirmed
		appt.ScheduledBy = ptr.Ptr(req.StaffID)
		appt.UpdatedAt = now
		result = appt
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ScheduleCourtesy: successfully scheduled appointment id=%d for %s %s by staff=%d",
		result.ID, result.Date.Format(domain.DateFormat), result.Time, req.StaffID)

	return fromDomain(result), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}
