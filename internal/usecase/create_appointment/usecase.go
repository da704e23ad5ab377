package create_appointment

import (
	"context"
	"fmt"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

// UseCase use case создания записи на приём.
// Политика планирования выбирается по типу записи один раз при создании:
// обычные записи проходят правила календаря и проверку конфликтов,
// courtesy-запросы создаются без слота и от проверок освобождены.
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

// Execute выполняет use case создания записи.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции с блокировкой записей дня (FOR UPDATE), чтобы два клиента
// не прошли проверки одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, type=%s, date=%s, time=%s",
		req.UserID, req.Type, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Выбираем политику планирования по типу записи
	policy := domain.PolicyFor(req.Type, uc.rules, uc.detector)
	isCourtesy := req.Type == domain.TypeCourtesy

	// 4. Для courtesy-запроса дата — placeholder (момент создания),
	// реальный слот назначит сотрудник через courtesy flow
	date := req.Date
	slot := req.StartTime
	if isCourtesy && date.IsZero() {
		date = now
	}
	if isCourtesy && slot.IsZero() {
		slot = types.NewTimeString(now)
	}

	var result *domain.Appointment

	// 5. Проверки и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Индекс загрузки дня (только подтверждённые обычные записи)
		index, err := uc.appointmentRepo.CountConfirmedByDate(txCtx, date, date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count confirmed appointments: %v", err)
			return fmt.Errorf("%w: failed to count confirmed appointments: %v", ErrInternal, err)
		}

		// 5.2. Активные записи пользователя на эту дату (FOR UPDATE)
		existing, err := uc.appointmentRepo.GetByUserWithFilter(txCtx, domain.UserAppointmentsFilter{
			UserID:     req.UserID,
			Date:       &date,
			OnlyActive: true,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get user appointments: %v", err)
			return fmt.Errorf("%w: failed to get user appointments: %v", ErrInternal, err)
		}

		// 5.3. Проверка слота политикой планирования
		if err := policy.ValidateSlot(date, slot, now, index, existing, 0); err != nil {
			uc.logger.Warn("CreateAppointment: slot validation failed (policy=%s): %v", policy.Name(), err)
			return mapPolicyError(err)
		}

		// 5.4. Создаем запись со статусом Pending
		appt := &domain.Appointment{
			UserID:               req.UserID,
			Type:                 req.Type,
			IsCourtesy:           isCourtesy,
			Purpose:              req.Purpose,
			Date:                 date,
			Time:                 slot,
			Status:               domain.StatusPending,
			PatientName:          req.PatientName,
			ProcessorName:        req.ProcessorName,
			MedicalDetails:       req.MedicalDetails,
			VerificationImageRef: req.VerificationImageRef,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d (policy=%s)",
		result.ID, policy.Name())

	return fromDomain(result), nil
}
