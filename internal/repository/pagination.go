package repository

import (
	"strings"

	"gorm.io/gorm"
)

// PageRequest описывает параметры постраничной выборки.
// Нумерация страниц начинается с нуля.
type PageRequest struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// Page - страница строк вместе с общим числом строк по условию
type Page[T any] struct {
	Items         []T
	TotalElements int64
}

// Белые списки сортируемых полей: имя поля на проводе -> имя колонки.
// Неизвестное поле откатывается к колонке по умолчанию.
var departmentSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"location":  "location",
	"createdAt": "created_at",
}

var employeeSortColumns = map[string]string{
	"id":        "id",
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"position":  "position",
	"hireDate":  "hire_date",
	"createdAt": "created_at",
}

func orderClause(columns map[string]string, req PageRequest, fallback string) string {
	column, ok := columns[req.SortBy]
	if !ok {
		column = fallback
	}

	direction := "ASC"
	if strings.EqualFold(req.SortDir, "desc") {
		direction = "DESC"
	}

	return column + " " + direction
}

// paginate выполняет подсчёт общего числа строк и выборку одной страницы
// по уже собранному условию
func paginate[T any](query *gorm.DB, req PageRequest, order string) (*Page[T], error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []T
	page := query
	if order != "" {
		page = page.Order(order)
	}
	if err := page.Offset(req.Page * req.Size).Limit(req.Size).Find(&items).Error; err != nil {
		return nil, err
	}

	return &Page[T]{Items: items, TotalElements: total}, nil
}
