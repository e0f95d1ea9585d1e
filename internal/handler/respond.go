package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hr-attendance-api/internal/domain"
	"github.com/hr-attendance-api/internal/dto"
)

// newValidator возвращает валидатор, который в ошибках использует
// имена полей из json-тегов вместо имён полей структур.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessage переводит ошибки валидатора в сообщение для клиента.
// Сырая ошибка остаётся только в логе.
func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "invalid request"
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "email":
			parts = append(parts, fe.Field()+" must be a valid email address")
		case "datetime":
			parts = append(parts, fe.Field()+" must be in YYYY-MM-DD format")
		case "min", "max":
			parts = append(parts, fe.Field()+" has invalid length")
		default:
			parts = append(parts, fe.Field()+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// handleServiceError отображает бизнес-ошибки на HTTP статусы.
// Всё неопознанное логируется и уходит клиенту как 500 без деталей.
func handleServiceError(logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		respondError(logger, w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrAttendanceNotFound):
		respondError(logger, w, http.StatusNotFound, "attendance record not found", "")
	case errors.Is(err, domain.ErrDuplicateEmail):
		respondError(logger, w, http.StatusBadRequest, "employee with this email already exists", "")
	case errors.Is(err, domain.ErrInvalidDate):
		respondError(logger, w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", "")
	case errors.Is(err, domain.ErrInvalidTime):
		respondError(logger, w, http.StatusBadRequest, "invalid time, expected HH:MM", "")
	default:
		logger.Error("internal error", slog.Any("error", err))
		respondError(logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}
