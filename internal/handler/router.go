package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/hr-attendance-api/internal/middleware"
)

// Router настраивает маршруты JSON API и веб-страниц
type Router struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	empHandler *EmployeeHandler
	attHandler *AttendanceHandler
	webHandler *WebHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	empHandler *EmployeeHandler,
	attHandler *AttendanceHandler,
	webHandler *WebHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:        http.NewServeMux(),
		logger:     logger,
		empHandler: empHandler,
		attHandler: attHandler,
		webHandler: webHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// JSON API
	api := middleware.JSONContentType(http.HandlerFunc(r.apiRouter))
	r.mux.Handle("/api/", api)
	r.mux.Handle("/report/departments", middleware.JSONContentType(http.HandlerFunc(r.empHandler.DepartmentReport)))

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Веб-страницы
	r.mux.HandleFunc("/employees/", r.webEmployeesRouter)
	r.mux.HandleFunc("/attendance/", r.webAttendanceRouter)
	r.mux.HandleFunc("/reports", r.webHandler.ReportsPage)
	r.mux.HandleFunc("/api-docs", r.webHandler.APIDocsPage)
	r.mux.HandleFunc("/", r.webHandler.Home)

	// Применяем middleware
	handler := middleware.Logger(r.logger)(r.mux)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// apiRouter обрабатывает все запросы к /api/
func (r *Router) apiRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/")

	switch {
	case path == "employees" || strings.HasPrefix(path, "employees/"):
		r.apiEmployeesRouter(w, req)
	case strings.HasPrefix(path, "attendance/"):
		r.apiAttendanceRouter(w, req)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

// apiEmployeesRouter обрабатывает запросы к /api/employees
func (r *Router) apiEmployeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/employees")
	path = strings.Trim(path, "/")

	// POST /api/employees - создание, GET - список
	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.empHandler.List(w, req)
		case http.MethodPost:
			r.empHandler.Create(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	parts := strings.Split(path, "/")

	if len(parts) == 1 && parts[0] != "" {
		// /api/employees/{id}
		switch req.Method {
		case http.MethodGet:
			r.empHandler.GetByID(w, req)
		case http.MethodPatch:
			r.empHandler.Update(w, req)
		case http.MethodDelete:
			r.empHandler.Delete(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// apiAttendanceRouter обрабатывает запросы к /api/attendance/
func (r *Router) apiAttendanceRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/attendance")
	path = strings.Trim(path, "/")

	// POST /api/attendance/mark - отметка посещаемости
	if path == "mark" {
		if req.Method == http.MethodPost {
			r.attHandler.Mark(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	// GET /api/attendance/{employee_id} - история сотрудника
	parts := strings.Split(path, "/")
	if len(parts) == 1 && parts[0] != "" {
		if req.Method == http.MethodGet {
			r.attHandler.History(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// webEmployeesRouter обрабатывает страницы /employees/
func (r *Router) webEmployeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/employees")
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")

	// /employees/new - форма создания
	if len(parts) == 1 && parts[0] == "new" {
		if req.Method == http.MethodGet || req.Method == http.MethodPost {
			r.webHandler.NewEmployee(w, req)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		r.webHandler.renderNotFound(w)
		return
	}

	if len(parts) == 1 {
		// /employees/{id} - страница сотрудника
		if req.Method == http.MethodGet {
			r.webHandler.EmployeeDetail(w, req, id)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if len(parts) == 2 {
		switch {
		case parts[1] == "edit" && (req.Method == http.MethodGet || req.Method == http.MethodPost):
			r.webHandler.EditEmployee(w, req, id)
			return
		case parts[1] == "delete" && req.Method == http.MethodPost:
			r.webHandler.DeleteEmployee(w, req, id)
			return
		}
	}

	r.webHandler.renderNotFound(w)
}

// webAttendanceRouter обрабатывает страницы /attendance/
func (r *Router) webAttendanceRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/attendance")
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")

	// POST /attendance/mark/{employee_id} - отметка по кнопке
	if len(parts) == 2 && parts[0] == "mark" {
		employeeID, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			r.webHandler.renderNotFound(w)
			return
		}
		if req.Method == http.MethodPost {
			r.webHandler.PunchAttendance(w, req, employeeID)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// /attendance/{id}/edit - форма корректировки
	if len(parts) == 2 && parts[1] == "edit" {
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			r.webHandler.renderNotFound(w)
			return
		}
		if req.Method == http.MethodGet || req.Method == http.MethodPost {
			r.webHandler.EditAttendance(w, req, id)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.webHandler.renderNotFound(w)
}
