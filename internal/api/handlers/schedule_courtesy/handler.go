package schedule_courtesy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CSC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CSC-AppointmentService/internal/api/middleware"
	scheduleCourtesy "github.com/m04kA/CSC-AppointmentService/internal/usecase/schedule_courtesy"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и hh:mm AM/PM"
	msgMissingStaffID       = "отсутствует ID сотрудника"
	msgNotFound             = "запись не найдена"
	msgNotCourtesy          = "запись не является courtesy-запросом"
	msgAlreadyScheduled     = "courtesy-запросу уже назначен слот"
	msgNotPending           = "запись не в статусе Pending"
	msgDateInPast           = "назначаемая дата уже прошла"
)

type Handler struct {
	useCase ScheduleCourtesyUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleCourtesyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/schedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/schedule - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req ScheduleCourtesyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, staffID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleCourtesy.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/schedule - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, scheduleCourtesy.ErrNotCourtesy):
			h.logger.Warn("PATCH /appointments/{id}/schedule - Not a courtesy request: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgNotCourtesy)

		case errors.Is(err, scheduleCourtesy.ErrAlreadyScheduled):
			h.logger.Warn("PATCH /appointments/{id}/schedule - Already scheduled: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgAlreadyScheduled)

		case errors.Is(err, scheduleCourtesy.ErrNotPending):
			h.logger.Warn("PATCH /appointments/{id}/schedule - Not pending: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, scheduleCourtesy.ErrDateInPast):
			h.logger.Warn("PATCH /appointments/{id}/schedule - Date in past: appointment_id=%d, date=%s",
				appointmentID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		default:
			h.logger.Error("PATCH /appointments/{id}/schedule - Failed to schedule courtesy: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /appointments/{id}/schedule - Courtesy scheduled successfully: appointment_id=%d, staff_id=%d, date=%s",
		appointmentID, staffID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, response)
}
