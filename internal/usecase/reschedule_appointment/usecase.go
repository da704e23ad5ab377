package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/CSC-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case переноса записи на новый слот.
// Прогоняет те же проверки доступности, что и создание, против нового
// слота, исключая переносимую запись из сравнения конфликтов.
// Статус записи переносом не меняется.
type UseCase struct {
	appointmentRepo AppointmentRepository
	rules           domain.CalendarRules
	detector        domain.ConflictDetector
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	rules domain.CalendarRules,
	detector domain.ConflictDetector,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		rules:           rules,
		detector:        detector,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%d, user=%d, date=%s, time=%s",
		req.AppointmentID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Appointment

	// 2. Проверки и обновление в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем запись с блокировкой строки
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Переносить можно только собственную запись
		if appt.UserID != req.UserID {
			uc.logger.Warn("RescheduleAppointment: access denied for user=%d to appointment id=%d",
				req.UserID, req.AppointmentID)
			return ErrAccessDenied
		}

		// 2.3. Courtesy-записи через обычный перенос не проходят
		if appt.IsCourtesy {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d is a courtesy request", req.AppointmentID)
			return ErrCourtesyReschedule
		}

		// 2.4. Терминальные записи не переносятся
		if !appt.IsActive() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d has status=%s", req.AppointmentID, appt.Status)
			return ErrNotActive
		}

		// 2.5. Проверяем новый слот теми же правилами, что и при создании,
		// исключая саму запись из проверки конфликтов
		index, err := uc.appointmentRepo.CountConfirmedByDate(txCtx, req.Date, req.Date)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to count confirmed appointments: %v", err)
			return fmt.Errorf("%w: failed to count confirmed appointments: %v", ErrInternal, err)
		}

		existing, err := uc.appointmentRepo.GetByUserWithFilter(txCtx, domain.UserAppointmentsFilter{
			UserID:     req.UserID,
			Date:       &req.Date,
			OnlyActive: true,
		})
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get user appointments: %v", err)
			return fmt.Errorf("%w: failed to get user appointments: %v", ErrInternal, err)
		}

		policy := domain.PolicyFor(appt.Type, uc.rules, uc.detector)
		if err := policy.ValidateSlot(req.Date, req.StartTime, now, index, existing, appt.ID); err != nil {
			uc.logger.Warn("RescheduleAppointment: slot validation failed: %v", err)
			return mapPolicyError(err)
		}

		// 2.6. Обновляем дату и время; статус сохраняется как был
		if err := uc.appointmentRepo.UpdateSchedule(txCtx, appt.ID, req.Date, req.StartTime); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to update schedule: %v", err)
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		appt.Date = req.Date
		appt.Time = req.StartTime
		appt.UpdatedAt = now
		result = appt
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully rescheduled appointment id=%d to %s %s",
		result.ID, result.Date.Format(domain.DateFormat), result.Time)

	return fromDomain(result), nil
}
