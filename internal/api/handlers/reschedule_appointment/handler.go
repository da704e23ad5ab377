package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CSC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CSC-AppointmentService/internal/api/middleware"
	rescheduleAppointment "github.com/m04kA/CSC-AppointmentService/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и hh:mm AM/PM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgCourtesyReschedule   = "courtesy-запись нельзя перенести"
	msgNotActive            = "запись в текущем статусе нельзя перенести"
	msgDateInPast           = "дата записи уже прошла"
	msgHoliday              = "выбранная дата — праздничный день"
	msgWeekend              = "выбранная дата — выходной день"
	msgDayFull              = "лимит записей на выбранную дату исчерпан"
	msgTimeConflict         = "у вас уже есть запись в пределах часа от выбранного времени"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, userID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleAppointment.ErrCourtesyReschedule):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Courtesy reschedule rejected: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgCourtesyReschedule)

		case errors.Is(err, rescheduleAppointment.ErrNotActive):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Appointment not active: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgNotActive)

		case errors.Is(err, rescheduleAppointment.ErrInvalidDate):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Date in past: appointment_id=%d, date=%s",
				appointmentID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, rescheduleAppointment.ErrHoliday):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Holiday: appointment_id=%d, date=%s",
				appointmentID, req.Date)
			handlers.RespondBadRequest(w, msgHoliday)

		case errors.Is(err, rescheduleAppointment.ErrWeekend):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Weekend: appointment_id=%d, date=%s",
				appointmentID, req.Date)
			handlers.RespondBadRequest(w, msgWeekend)

		case errors.Is(err, rescheduleAppointment.ErrDayFull):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Day is full: appointment_id=%d, date=%s",
				appointmentID, req.Date)
			handlers.RespondConflict(w, msgDayFull)

		case errors.Is(err, rescheduleAppointment.ErrTimeConflict):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Time conflict: appointment_id=%d, date=%s, time=%s",
				appointmentID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgTimeConflict)

		default:
			h.logger.Error("PATCH /appointments/{id}/reschedule - Failed to reschedule: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /appointments/{id}/reschedule - Appointment rescheduled successfully: appointment_id=%d, user_id=%d",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
