package create_appointment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Проверки слота (праздники, выходные, лимит, конфликты) выполняются
// отдельно, внутри транзакции, через SchedulingPolicy.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, req.Type)
	}

	if strings.TrimSpace(req.Purpose) == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}

	if len(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose exceeds %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	// Для medical_finance обязательны данные пациента, обработчика
	// и подтверждающее изображение
	if req.Type == domain.TypeMedicalFinance {
		if req.PatientName == nil || strings.TrimSpace(*req.PatientName) == "" {
			return fmt.Errorf("%w: patientName is required for medical finance appointments", ErrInvalidInput)
		}
		if req.ProcessorName == nil || strings.TrimSpace(*req.ProcessorName) == "" {
			return fmt.Errorf("%w: processorName is required for medical finance appointments", ErrInvalidInput)
		}
		if req.VerificationImageRef == nil || strings.TrimSpace(*req.VerificationImageRef) == "" {
			return fmt.Errorf("%w: verification image is required for medical finance appointments", ErrInvalidInput)
		}
	}

	// Courtesy-запросы создаются без слота: дату и время назначит сотрудник
	if req.Type == domain.TypeCourtesy {
		return nil
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

// mapPolicyError переводит ошибки правил календаря и конфликтов
// в sentinel-ошибки usecase
func mapPolicyError(err error) error {
	switch {
	case errors.Is(err, domain.ErrDateInPast):
		return ErrInvalidDate
	case errors.Is(err, domain.ErrHoliday):
		return ErrHoliday
	case errors.Is(err, domain.ErrWeekend):
		return ErrWeekend
	case errors.Is(err, domain.ErrDayFull):
		return ErrDayFull
	case errors.Is(err, domain.ErrTimeConflict):
		return ErrTimeConflict
	default:
		return fmt.Errorf("%w: slot validation failed: %v", ErrInternal, err)
	}
}
