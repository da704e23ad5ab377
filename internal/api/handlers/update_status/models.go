package update_status

import (
	"github.com/m04kA/CSC-AppointmentService/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model.
// Статусы регистрозависимы: "Confirmed", "Rejected", "Cancelled", "Completed".
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(staffID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		StaffID: staffID,
		Status:  r.Status,
	}
}
