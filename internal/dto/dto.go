package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Зарплата на проводе - число JSON, а не строка
	decimal.MarshalJSONWithoutQuotes = true
}

// DepartmentRequest - запрос на создание или полное обновление отдела
type DepartmentRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description"`
	Location    string `json:"location" validate:"omitempty,max=100"`
}

// EmployeeRequest - запрос на создание или полное обновление сотрудника.
// Необязательные поля, отсутствующие в запросе на обновление, очищаются,
// а отсутствие departmentId открепляет сотрудника от отдела.
type EmployeeRequest struct {
	FirstName    string           `json:"firstName" validate:"required,notblank,min=2,max=50"`
	LastName     string           `json:"lastName" validate:"required,notblank,min=2,max=50"`
	Email        string           `json:"email" validate:"required,email"`
	Phone        string           `json:"phone" validate:"omitempty,phone"`
	Position     string           `json:"position" validate:"omitempty,max=100"`
	Salary       *decimal.Decimal `json:"salary" validate:"omitempty,gtzero"`
	HireDate     *string          `json:"hireDate" validate:"omitempty,datetime=2006-01-02"`
	DepartmentID *int64           `json:"departmentId" validate:"omitempty,min=1"`
}

// DepartmentResponse - ответ с данными отдела
type DepartmentResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Location      string    `json:"location,omitempty"`
	EmployeeCount int       `json:"employeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DepartmentSummary - краткие сведения об отделе внутри ответа сотрудника
type DepartmentSummary struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location,omitempty"`
	EmployeeCount int    `json:"employeeCount"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID         int64              `json:"id"`
	FirstName  string             `json:"firstName"`
	LastName   string             `json:"lastName"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone,omitempty"`
	Position   string             `json:"position,omitempty"`
	Salary     *decimal.Decimal   `json:"salary,omitempty"`
	HireDate   *string            `json:"hireDate,omitempty"`
	Department *DepartmentSummary `json:"department,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// PageResponse - конверт постраничного ответа
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// NewPageResponse собирает конверт из содержимого страницы и общего числа строк
func NewPageResponse[T any](content []T, page, size int, total int64) *PageResponse[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &PageResponse[T]{
		Content:       content,
		PageNumber:    page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          page >= totalPages-1,
	}
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
