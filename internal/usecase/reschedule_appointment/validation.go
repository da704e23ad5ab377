package reschedule_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
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
