package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrDuplicateDepartmentName = errors.New("department with this name already exists")
	ErrDuplicateEmployeeEmail  = errors.New("employee with this email already exists")
	ErrHireDateInFuture        = errors.New("hire date cannot be in the future")
)
