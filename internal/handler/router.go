package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/employee-management-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	deptHandler *DepartmentHandler
	empHandler  *EmployeeHandler
}

// NewRouter создаёт новый роутер
func NewRouter(deptHandler *DepartmentHandler, empHandler *EmployeeHandler, logger *slog.Logger) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		logger:      logger,
		deptHandler: deptHandler,
		empHandler:  empHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Регистрируем обработчики: оба варианта, с завершающей косой чертой и без
	r.mux.HandleFunc("/departments", r.departmentsRouter)
	r.mux.HandleFunc("/departments/", r.departmentsRouter)
	r.mux.HandleFunc("/employees", r.employeesRouter)
	r.mux.HandleFunc("/employees/", r.employeesRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.CORS(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// departmentsRouter обрабатывает все запросы к /departments
func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/departments")
	path = strings.Trim(path, "/")

	switch {
	case path == "":
		// POST /departments - создание, GET /departments - постраничный список
		switch req.Method {
		case http.MethodPost:
			r.deptHandler.Create(w, req)
		case http.MethodGet:
			r.deptHandler.List(w, req)
		default:
			methodNotAllowed(w)
		}

	case path == "search":
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.deptHandler.Search(w, req)

	case path == "list":
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.deptHandler.ListAll(w, req)

	case !strings.Contains(path, "/"):
		// /departments/{id}
		switch req.Method {
		case http.MethodGet:
			r.deptHandler.GetByID(w, req)
		case http.MethodPut:
			r.deptHandler.Update(w, req)
		case http.MethodDelete:
			r.deptHandler.Delete(w, req)
		default:
			methodNotAllowed(w)
		}

	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

// employeesRouter обрабатывает все запросы к /employees
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/employees")
	path = strings.Trim(path, "/")
	parts := strings.Split(path, "/")

	switch {
	case path == "":
		// POST /employees - создание, GET /employees - постраничный список
		switch req.Method {
		case http.MethodPost:
			r.empHandler.Create(w, req)
		case http.MethodGet:
			r.empHandler.List(w, req)
		default:
			methodNotAllowed(w)
		}

	case path == "search":
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.empHandler.Search(w, req)

	case path == "filter":
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.empHandler.Filter(w, req)

	case path == "list":
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.empHandler.ListAll(w, req)

	case len(parts) == 2 && parts[0] == "department":
		// /employees/department/{departmentId}
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.empHandler.ListByDepartment(w, req)

	case len(parts) == 1:
		// /employees/{id}
		switch req.Method {
		case http.MethodGet:
			r.empHandler.GetByID(w, req)
		case http.MethodPut:
			r.empHandler.Update(w, req)
		case http.MethodDelete:
			r.empHandler.Delete(w, req)
		default:
			methodNotAllowed(w)
		}

	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}
