package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/repository"
)

var phonePattern = regexp.MustCompile(`^[0-9+()\s-]*$`)

// newValidator создаёт валидатор с дополнительными правилами:
// notblank - строка содержит хотя бы один непробельный символ,
// phone - допустимые символы телефонного номера,
// gtzero - положительное десятичное значение (зарплата)
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("gtzero", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && value.GreaterThan(decimal.Zero)
	})

	return v
}

// responder содержит общие помощники записи HTTP ответов
type responder struct {
	logger *slog.Logger
}

func (h *responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *responder) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	h.respondJSON(w, status, resp)
}

// respondValidationError собирает все нарушения в один ответ
// с сообщением по каждому полю
func (h *responder) respondValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = validationMessage(fe)
	}

	h.respondJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Error:  "validation error",
		Fields: fields,
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must not exceed " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must contain only digits, spaces and -+() characters"
	case "gtzero":
		return "must be greater than 0"
	case "datetime":
		return "must be a date in format " + fe.Param()
	default:
		return "is invalid"
	}
}

// handleServiceError отображает бизнес-ошибки на коды состояния HTTP
func (h *responder) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDepartmentNotFound):
		h.respondError(w, http.StatusNotFound, domain.ErrDepartmentNotFound.Error(), "")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, domain.ErrEmployeeNotFound.Error(), "")
	case errors.Is(err, domain.ErrDuplicateDepartmentName):
		h.respondError(w, http.StatusConflict, domain.ErrDuplicateDepartmentName.Error(), "")
	case errors.Is(err, domain.ErrDuplicateEmployeeEmail):
		h.respondError(w, http.StatusConflict, domain.ErrDuplicateEmployeeEmail.Error(), "")
	case errors.Is(err, domain.ErrHireDateInFuture):
		h.respondError(w, http.StatusBadRequest, domain.ErrHireDateInFuture.Error(), "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

// idFromPath извлекает числовой идентификатор из последнего сегмента пути
func idFromPath(r *http.Request) (int64, error) {
	path := strings.Trim(r.URL.Path, "/")
	parts := strings.Split(path, "/")
	last := parts[len(parts)-1]
	if last == "" {
		return 0, errors.New("id is required")
	}
	return strconv.ParseInt(last, 10, 64)
}

// parsePageRequest разбирает параметры пагинации и сортировки.
// Некорректные значения молча заменяются значениями по умолчанию.
func parsePageRequest(r *http.Request, defaultSortBy string) repository.PageRequest {
	req := repository.PageRequest{
		Page:    0,
		Size:    10,
		SortBy:  defaultSortBy,
		SortDir: "asc",
	}

	query := r.URL.Query()
	if v := query.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page >= 0 {
			req.Page = page
		}
	}
	if v := query.Get("size"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			req.Size = size
		}
	}
	if v := query.Get("sortBy"); v != "" {
		req.SortBy = v
	}
	if v := query.Get("sortDir"); v != "" {
		req.SortDir = v
	}

	return req
}
