package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	storage "github.com/m04kA/CSC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/CSC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с записями: чтение, отмена и смена статусов.
// Создание и перенос записей живут в отдельных use case, так как требуют
// проверки календарных правил и конфликтов слотов.
type Service struct {
	repo      AppointmentRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый сервис записей
func NewService(repo AppointmentRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID возвращает запись по ID с проверкой прав доступа владельца
func (s *Service) GetByID(ctx context.Context, appointmentID, userID int64) (*models.AppointmentResponse, error) {
	if appointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	appt, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, storage.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment %d not found", appointmentID)
			return nil, fmt.Errorf("%w: appointment %d", ErrAppointmentNotFound, appointmentID)
		}
		s.logger.Error("GetByID: failed to get appointment %d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(appt, userID); err != nil {
		s.logger.Warn("GetByID: user %d denied access to appointment %d", userID, appointmentID)
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// GetUserAppointments возвращает записи пользователя, опционально
// отфильтрованные по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if req == nil || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	filter := domain.UserAppointmentsFilter{UserID: req.UserID}
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status filter %q for user %d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	appointments, err := s.repo.GetByUserWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserAppointments: failed to get appointments for user %d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: found %d appointments for user %d", len(appointments), req.UserID)

	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись от имени владельца.
// Повторная отмена уже отмененной записи — no-op без ошибки.
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	if appointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req == nil || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	s.logger.Info("Cancel: user=%d, appointment=%d", req.UserID, appointmentID)

	var result *domain.Appointment

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// Внутри транзакции GetByID блокирует строку (FOR UPDATE),
		// закрывая гонку между проверкой статуса и записью
		appt, err := s.repo.GetByID(ctx, appointmentID)
		if err != nil {
			if errors.Is(err, storage.ErrAppointmentNotFound) {
				return fmt.Errorf("%w: appointment %d", ErrAppointmentNotFound, appointmentID)
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if err := s.checkUserAccess(appt, req.UserID); err != nil {
			return err
		}

		// Идемпотентность: запись уже отменена
		if appt.Status == domain.StatusCancelled {
			result = appt
			return nil
		}

		if !appt.CanBeCancelled() {
			return fmt.Errorf("%w: appointment %d is %s", ErrCannotCancel, appointmentID, appt.Status)
		}

		if err := s.repo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
			return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
		}

		appt, err = s.repo.GetByID(ctx, appointmentID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
		}
		result = appt
		return nil
	})
	if err != nil {
		s.logger.Warn("Cancel: failed for appointment %d: %v", appointmentID, err)
		return nil, err
	}

	s.logger.Info("Cancel: appointment %d is now %s", appointmentID, result.Status)

	return models.FromDomainAppointment(result), nil
}

// UpdateStatus меняет статус записи от имени сотрудника.
// Допустимые переходы заданы таблицей переходов в domain;
// courtesy-запросы нельзя подтвердить через этот путь.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	if appointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req == nil || req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	target, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for appointment %d", req.Status, appointmentID)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, req.Status)
	}

	s.logger.Info("UpdateStatus: staff=%d, appointment=%d, target=%s", req.StaffID, appointmentID, target)

	var result *domain.Appointment

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		appt, err := s.repo.GetByID(ctx, appointmentID)
		if err != nil {
			if errors.Is(err, storage.ErrAppointmentNotFound) {
				return fmt.Errorf("%w: appointment %d", ErrAppointmentNotFound, appointmentID)
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// Courtesy подтверждается только назначением слота сотрудником
		if target == domain.StatusConfirmed && appt.IsCourtesy {
			return fmt.Errorf("%w: appointment %d", ErrCourtesyConfirm, appointmentID)
		}

		if !appt.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, target)
		}

		if err := s.repo.UpdateStatus(ctx, appointmentID, target); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		appt, err = s.repo.GetByID(ctx, appointmentID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
		}
		result = appt
		return nil
	})
	if err != nil {
		s.logger.Warn("UpdateStatus: failed for appointment %d: %v", appointmentID, err)
		return nil, err
	}

	s.logger.Info("UpdateStatus: appointment %d moved to %s", appointmentID, result.Status)

	return models.FromDomainAppointment(result), nil
}

// checkUserAccess проверяет, что пользователь — владелец записи
func (s *Service) checkUserAccess(appt *domain.Appointment, userID int64) error {
	if appt.UserID != userID {
		return fmt.Errorf("%w: user %d is not the owner of appointment %d", ErrAccessDenied, userID, appt.ID)
	}
	return nil
}
