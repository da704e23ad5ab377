package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/CSC-AppointmentService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	staffIDKey contextKey = "staffID"

	headerUserID  = "X-User-ID"
	headerStaffID = "X-Staff-ID"

	msgMissingUserID  = "отсутствует заголовок X-User-ID"
	msgInvalidUserID  = "некорректный заголовок X-User-ID"
	msgMissingStaffID = "отсутствует заголовок X-Staff-ID"
	msgInvalidStaffID = "некорректный заголовок X-Staff-ID"
)

// Auth извлекает ID пользователя из заголовка X-User-ID и кладет его
// в контекст запроса. Аутентификацию выполняет API gateway, сюда
// заголовок приходит уже проверенным.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffAuth извлекает ID сотрудника из заголовка X-Staff-ID.
// Используется на staff-only маршрутах (смена статуса, назначение
// слота courtesy-запросу).
func StaffAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerStaffID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidStaffID)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetStaffID возвращает ID сотрудника из контекста запроса
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey).(int64)
	return staffID, ok
}
