package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hr-attendance-api/internal/domain"
	"github.com/hr-attendance-api/internal/dto"
	"github.com/hr-attendance-api/internal/service"
)

type AttendanceHandler struct {
	attService service.AttendanceService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewAttendanceHandler(attService service.AttendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attService: attService,
		validator:  newValidator(),
		logger:     logger,
	}
}

func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var req dto.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode request body", slog.Any("error", err))
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", "body must be valid JSON")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("validation failed", slog.Any("error", err))
		respondError(h.logger, w, http.StatusBadRequest, "validation error", validationMessage(err))
		return
	}

	att, err := h.attService.Mark(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toAttendanceResponse(att))
}

func (h *AttendanceHandler) History(w http.ResponseWriter, r *http.Request) {
	employeeID, err := extractID(r.URL.Path, "/api/attendance/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	records, err := h.attService.HistoryFor(r.Context(), employeeID)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	resp := make([]dto.AttendanceResponse, len(records))
	for i, att := range records {
		resp[i] = toAttendanceResponse(&att)
	}

	respondJSON(h.logger, w, http.StatusOK, resp)
}

func toAttendanceResponse(att *domain.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date,
		InTime:     att.InTime,
		OutTime:    att.OutTime,
		Status:     att.Status,
	}
}
