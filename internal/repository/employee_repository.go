package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeFilter описывает необязательные предикаты выборки сотрудников.
// Отсутствующий предикат пропускается и не ограничивает выборку.
type EmployeeFilter struct {
	DepartmentID *int64
	Position     *string
	Search       *string
}

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	FindAll(ctx context.Context, req PageRequest) (*Page[domain.Employee], error)
	FindAllList(ctx context.Context) ([]domain.Employee, error)
	Search(ctx context.Context, keyword string, req PageRequest) (*Page[domain.Employee], error)
	Filter(ctx context.Context, filter EmployeeFilter, req PageRequest) (*Page[domain.Employee], error)
	FindByDepartmentID(ctx context.Context, departmentID int64, req PageRequest) (*Page[domain.Employee], error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string, excludeID *int64) (bool, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(emp).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Страховка на случай гонки: уникальный индекс по email срабатывает
		// даже если предварительная проверка в сервисе прошла
		return domain.ErrDuplicateEmployeeEmail
	}
	return err
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).
		Preload("Department.Employees").
		First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) FindAll(ctx context.Context, req PageRequest) (*Page[domain.Employee], error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Preload("Department.Employees")
	return paginate[domain.Employee](query, req, orderClause(employeeSortColumns, req, "first_name"))
}

func (r *employeeRepository) FindAllList(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Preload("Department.Employees").
		Order("first_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Search(ctx context.Context, keyword string, req PageRequest) (*Page[domain.Employee], error) {
	like := "%" + strings.ToLower(keyword) + "%"
	query := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Preload("Department.Employees").
		Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(position) LIKE ?",
			like, like, like, like,
		)
	return paginate[domain.Employee](query, req, "")
}

// Filter собирает конъюнкцию из переданных предикатов: точное совпадение отдела,
// сравнение должности без учёта регистра и поиск подстроки по имени и email
func (r *employeeRepository) Filter(ctx context.Context, filter EmployeeFilter, req PageRequest) (*Page[domain.Employee], error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Preload("Department.Employees")

	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}

	if filter.Position != nil {
		query = query.Where("LOWER(position) = LOWER(?)", *filter.Position)
	}

	if filter.Search != nil && *filter.Search != "" {
		like := "%" + strings.ToLower(*filter.Search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	return paginate[domain.Employee](query, req, "")
}

func (r *employeeRepository) FindByDepartmentID(ctx context.Context, departmentID int64, req PageRequest) (*Page[domain.Employee], error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Preload("Department.Employees").
		Where("department_id = ?", departmentID)
	return paginate[domain.Employee](query, req, "")
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(emp).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateEmployeeEmail
	}
	return err
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("email = ?", email)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}
