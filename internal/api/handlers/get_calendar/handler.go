package get_calendar

import (
	"net/http"
	"time"

	"github.com/m04kA/CSC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CSC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	getCalendar "github.com/m04kA/CSC-AppointmentService/internal/usecase/get_calendar"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidMonth    = "некорректный формат месяца, ожидается YYYY-MM"
	msgInvalidSelected = "некорректный формат выбранной даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?month=2026-09&selected=2026-09-14
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /calendar - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Месяц по умолчанию — текущий
	month := time.Now()
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := time.Parse(domain.MonthFormat, monthStr)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid month: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = parsed
	}

	var selected *time.Time
	if selectedStr := r.URL.Query().Get("selected"); selectedStr != "" {
		parsed, err := time.Parse(domain.DateFormat, selectedStr)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid selected date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelected)
			return
		}
		selected = &parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		UserID:   userID,
		Month:    month,
		Selected: selected,
	})
	if err != nil {
		h.logger.Error("GET /calendar - Failed to build calendar: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendar - Calendar built successfully: user_id=%d, month=%s, days=%d",
		userID, response.Month, len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
