package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/repository"
	"github.com/employee-management-api/internal/service"
)

type EmployeeHandler struct {
	responder
	empService service.EmployeeService
	validator  *validator.Validate
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		responder:  responder{logger: logger},
		empService: empService,
		validator:  newValidator(),
	}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondValidationError(w, err)
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, emp)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, emp)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePageRequest(r, "firstName")

	result, err := h.empService.List(r.Context(), page)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func (h *EmployeeHandler) Search(w http.ResponseWriter, r *http.Request) {
	page := parsePageRequest(r, "")
	keyword := strings.TrimSpace(r.URL.Query().Get("search"))

	result, err := h.empService.Search(r.Context(), keyword, page)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Filter применяет только переданные предикаты; отсутствующий параметр
// не ограничивает выборку
func (h *EmployeeHandler) Filter(w http.ResponseWriter, r *http.Request) {
	page := parsePageRequest(r, "")
	query := r.URL.Query()

	var filter repository.EmployeeFilter
	if v := query.Get("departmentId"); v != "" {
		departmentID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
			return
		}
		filter.DepartmentID = &departmentID
	}
	if v := strings.TrimSpace(query.Get("position")); v != "" {
		filter.Position = &v
	}
	if v := strings.TrimSpace(query.Get("search")); v != "" {
		filter.Search = &v
	}

	result, err := h.empService.Filter(r.Context(), filter, page)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func (h *EmployeeHandler) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID, err := idFromPath(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	page := parsePageRequest(r, "")

	result, err := h.empService.ListByDepartment(r.Context(), departmentID, page)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func (h *EmployeeHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.ListAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondValidationError(w, err)
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
