package handler

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hr-attendance-api/internal/domain"
	"github.com/hr-attendance-api/internal/dto"
	"github.com/hr-attendance-api/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// WebHandler обслуживает серверные HTML-страницы
type WebHandler struct {
	empService service.EmployeeService
	attService service.AttendanceService
	validator  *validator.Validate
	templates  *template.Template
	logger     *slog.Logger
}

func NewWebHandler(
	empService service.EmployeeService,
	attService service.AttendanceService,
	logger *slog.Logger,
) *WebHandler {
	templates := template.Must(template.New("").Funcs(template.FuncMap{
		"orDash": func(value *string) string {
			if value == nil || *value == "" {
				return "—"
			}
			return *value
		},
		"strVal": func(value *string) string {
			if value == nil {
				return ""
			}
			return *value
		},
		"formatDate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
	}).ParseFS(templateFS, "templates/*.html"))

	return &WebHandler{
		empService: empService,
		attService: attService,
		validator:  newValidator(),
		templates:  templates,
		logger:     logger,
	}
}

// employeeFormData - значения полей формы сотрудника.
// На неуспешном POST форма перерисовывается с введёнными данными.
type employeeFormData struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	Designation   string
	Department    string
	DateOfJoining string
}

// Home отображает список сотрудников с фильтром по подразделению
func (h *WebHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.renderNotFound(w)
		return
	}

	department := r.URL.Query().Get("department")

	employees, err := h.empService.List(r.Context(), department)
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	departments, err := h.empService.ListDepartments(r.Context())
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	h.render(w, http.StatusOK, "home.html", map[string]any{
		"Employees":     employees,
		"Departments":   departments,
		"CurrentFilter": department,
	})
}

// EmployeeDetail отображает профиль сотрудника и историю посещаемости
func (h *WebHandler) EmployeeDetail(w http.ResponseWriter, r *http.Request, id int64) {
	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	records, err := h.attService.HistoryFor(r.Context(), id)
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	h.render(w, http.StatusOK, "employee_detail.html", map[string]any{
		"Employee":   emp,
		"Attendance": records,
		"Today":      time.Now().Format("2006-01-02"),
	})
}

// NewEmployee отображает и обрабатывает форму создания сотрудника
func (h *WebHandler) NewEmployee(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.renderEmployeeForm(w, "New Employee", "/employees/new", employeeFormData{}, "")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderEmployeeForm(w, "New Employee", "/employees/new", employeeFormData{}, "invalid form data")
		return
	}

	form := employeeFormFromRequest(r)
	req := dto.CreateEmployeeRequest{
		Name:        form.Name,
		Email:       form.Email,
		Designation: form.Designation,
		Department:  form.Department,
	}
	if form.Phone != "" {
		req.Phone = &form.Phone
	}
	if form.Address != "" {
		req.Address = &form.Address
	}
	if form.DateOfJoining != "" {
		req.DateOfJoining = &form.DateOfJoining
	}

	if err := h.validator.Struct(&req); err != nil {
		h.renderEmployeeForm(w, "New Employee", "/employees/new", form, formErrorMessage(err))
		return
	}

	if _, err := h.empService.Create(r.Context(), &req); err != nil {
		h.renderEmployeeForm(w, "New Employee", "/employees/new", form, formErrorMessage(err))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditEmployee отображает и обрабатывает форму редактирования сотрудника
func (h *WebHandler) EditEmployee(w http.ResponseWriter, r *http.Request, id int64) {
	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	action := "/employees/" + strconv.FormatInt(id, 10) + "/edit"

	if r.Method == http.MethodGet {
		form := employeeFormData{
			Name:          emp.Name,
			Email:         emp.Email,
			Designation:   emp.Designation,
			Department:    emp.Department,
			DateOfJoining: emp.DateOfJoining.Format("2006-01-02"),
		}
		if emp.Phone != nil {
			form.Phone = *emp.Phone
		}
		if emp.Address != nil {
			form.Address = *emp.Address
		}
		h.renderEmployeeForm(w, "Edit Employee", action, form, "")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderEmployeeForm(w, "Edit Employee", action, employeeFormData{}, "invalid form data")
		return
	}

	form := employeeFormFromRequest(r)
	req := dto.UpdateEmployeeRequest{
		Name:        &form.Name,
		Email:       &form.Email,
		Phone:       &form.Phone,
		Address:     &form.Address,
		Designation: &form.Designation,
		Department:  &form.Department,
	}

	if err := h.validator.Struct(&req); err != nil {
		h.renderEmployeeForm(w, "Edit Employee", action, form, formErrorMessage(err))
		return
	}

	if _, err := h.empService.Update(r.Context(), id, &req); err != nil {
		h.renderEmployeeForm(w, "Edit Employee", action, form, formErrorMessage(err))
		return
	}

	http.Redirect(w, r, "/employees/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// DeleteEmployee удаляет сотрудника вместе с историей посещаемости
func (h *WebHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.empService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// PunchAttendance отмечает приход/уход по текущему серверному времени
func (h *WebHandler) PunchAttendance(w http.ResponseWriter, r *http.Request, employeeID int64) {
	if _, err := h.attService.Punch(r.Context(), employeeID, time.Now()); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	http.Redirect(w, r, "/employees/"+strconv.FormatInt(employeeID, 10), http.StatusSeeOther)
}

// EditAttendance отображает и обрабатывает форму ручной корректировки отметки.
// Поля принимают HH:MM и HH:MM:SS.
func (h *WebHandler) EditAttendance(w http.ResponseWriter, r *http.Request, id int64) {
	record, err := h.attService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAttendanceNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, http.StatusOK, "attendance_form.html", map[string]any{
			"Record": record,
			"Error":  "",
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusOK, "attendance_form.html", map[string]any{
			"Record": record,
			"Error":  "invalid form data",
		})
		return
	}

	inTime := r.PostFormValue("in_time")
	outTime := r.PostFormValue("out_time")
	req := dto.UpdateAttendanceRequest{
		InTime:  &inTime,
		OutTime: &outTime,
	}

	if _, err := h.attService.UpdateByID(r.Context(), id, &req); err != nil {
		h.render(w, http.StatusOK, "attendance_form.html", map[string]any{
			"Record": record,
			"Error":  formErrorMessage(err),
		})
		return
	}

	http.Redirect(w, r, "/employees/"+strconv.FormatInt(record.EmployeeID, 10), http.StatusSeeOther)
}

// ReportsPage отображает численность сотрудников по подразделениям
func (h *WebHandler) ReportsPage(w http.ResponseWriter, r *http.Request) {
	counts, err := h.empService.CountByDepartment(r.Context())
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	var total int64
	for _, count := range counts {
		total += count
	}

	h.render(w, http.StatusOK, "reports.html", map[string]any{
		"Counts": counts,
		"Total":  total,
	})
}

// APIDocsPage отображает справку по JSON API
func (h *WebHandler) APIDocsPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "api_docs.html", nil)
}

func (h *WebHandler) renderEmployeeForm(w http.ResponseWriter, title, action string, form employeeFormData, errMsg string) {
	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusBadRequest
	}
	h.render(w, status, "employee_form.html", map[string]any{
		"Title":  title,
		"Action": action,
		"Form":   form,
		"Error":  errMsg,
	})
}

func (h *WebHandler) renderNotFound(w http.ResponseWriter) {
	h.render(w, http.StatusNotFound, "not_found.html", nil)
}

func (h *WebHandler) renderServerError(w http.ResponseWriter, err error) {
	h.logger.Error("internal error", slog.Any("error", err))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("<h1>Something went wrong</h1>"))
}

func (h *WebHandler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("failed to render template",
			slog.String("template", name),
			slog.Any("error", err),
		)
	}
}

func employeeFormFromRequest(r *http.Request) employeeFormData {
	return employeeFormData{
		Name:          r.PostFormValue("name"),
		Email:         r.PostFormValue("email"),
		Phone:         r.PostFormValue("phone"),
		Address:       r.PostFormValue("address"),
		Designation:   r.PostFormValue("designation"),
		Department:    r.PostFormValue("department"),
		DateOfJoining: r.PostFormValue("date_of_joining"),
	}
}

// formErrorMessage переводит ошибку в сообщение для встраивания в форму
func formErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return "An employee with this email already exists"
	case errors.Is(err, domain.ErrInvalidDate):
		return "Date must be in YYYY-MM-DD format"
	case errors.Is(err, domain.ErrInvalidTime):
		return "Time must be in HH:MM format"
	case errors.As(err, &validationErrs):
		return "Please fill in name, email, designation and department correctly"
	default:
		return "Something went wrong, please try again"
	}
}
