package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/CSC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CSC-AppointmentService/internal/api/middleware"
	createAppointment "github.com/m04kA/CSC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и hh:mm AM/PM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные записи"
	msgDateInPast         = "дата записи уже прошла"
	msgHoliday            = "выбранная дата — праздничный день"
	msgWeekend            = "выбранная дата — выходной день"
	msgDayFull            = "лимит записей на выбранную дату исчерпан"
	msgTimeConflict       = "у вас уже есть запись в пределах часа от выбранного времени"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in past: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrHoliday):
			h.logger.Warn("POST /appointments - Holiday: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgHoliday)

		case errors.Is(err, createAppointment.ErrWeekend):
			h.logger.Warn("POST /appointments - Weekend: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgWeekend)

		case errors.Is(err, createAppointment.ErrDayFull):
			h.logger.Warn("POST /appointments - Day is full: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondConflict(w, msgDayFull)

		case errors.Is(err, createAppointment.ErrTimeConflict):
			h.logger.Warn("POST /appointments - Time conflict: user_id=%d, date=%s, time=%s",
				userID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgTimeConflict)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d, type=%s",
		result.ID, userID, req.Type)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
