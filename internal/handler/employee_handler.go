package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hr-attendance-api/internal/domain"
	"github.com/hr-attendance-api/internal/dto"
	"github.com/hr-attendance-api/internal/service"
)

type EmployeeHandler struct {
	empService service.EmployeeService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		validator:  newValidator(),
		logger:     logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")

	employees, err := h.empService.List(r.Context(), department)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i, emp := range employees {
		resp[i] = toEmployeeResponse(&emp)
	}

	respondJSON(h.logger, w, http.StatusOK, resp)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r.URL.Path, "/api/employees/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
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

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r.URL.Path, "/api/employees/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	var req dto.UpdateEmployeeRequest
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

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r.URL.Path, "/api/employees/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DepartmentReport возвращает количество сотрудников по подразделениям
func (h *EmployeeHandler) DepartmentReport(w http.ResponseWriter, r *http.Request) {
	counts, err := h.empService.CountByDepartment(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, counts)
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:            emp.ID,
		Name:          emp.Name,
		Email:         emp.Email,
		Phone:         emp.Phone,
		Address:       emp.Address,
		Designation:   emp.Designation,
		Department:    emp.Department,
		DateOfJoining: emp.DateOfJoining.Format("2006-01-02"),
		CreatedAt:     emp.CreatedAt,
		UpdatedAt:     emp.UpdatedAt,
	}
}

// extractID выделяет числовой идентификатор из пути вида prefix/{id}[/...]
func extractID(path, prefix string) (int64, error) {
	path = strings.TrimPrefix(path, prefix)
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] == "" {
		return 0, errors.New("id is required")
	}

	return strconv.ParseInt(parts[0], 10, 64)
}
