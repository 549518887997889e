package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DepartmentRepository определяет интерфейс для работы с отделами
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	GetByIDWithEmployees(ctx context.Context, id int64) (*domain.Department, error)
	FindAll(ctx context.Context, req PageRequest) (*Page[domain.Department], error)
	FindAllList(ctx context.Context) ([]domain.Department, error)
	Search(ctx context.Context, keyword string, req PageRequest) (*Page[domain.Department], error)
	Update(ctx context.Context, dept *domain.Department) error
	DeleteCascade(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(dept).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Страховка на случай гонки: уникальный индекс по имени срабатывает
		// даже если предварительная проверка в сервисе прошла
		return domain.ErrDuplicateDepartmentName
	}
	return err
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetByIDWithEmployees(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).Preload("Employees").First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) FindAll(ctx context.Context, req PageRequest) (*Page[domain.Department], error) {
	query := r.db.WithContext(ctx).Model(&domain.Department{}).Preload("Employees")
	return paginate[domain.Department](query, req, orderClause(departmentSortColumns, req, "name"))
}

func (r *departmentRepository) FindAllList(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	err := r.db.WithContext(ctx).
		Preload("Employees").
		Order("name ASC").
		Find(&departments).Error
	return departments, err
}

func (r *departmentRepository) Search(ctx context.Context, keyword string, req PageRequest) (*Page[domain.Department], error) {
	like := "%" + strings.ToLower(keyword) + "%"
	query := r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Preload("Employees").
		Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", like, like)
	return paginate[domain.Department](query, req, "")
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(dept).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateDepartmentName
	}
	return err
}

// DeleteCascade удаляет отдел вместе с его сотрудниками в одной транзакции.
// Каскад воспроизводится явно, а не через поведение внешнего ключа.
func (r *departmentRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("department_id = ?", id).Delete(&domain.Employee{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Department{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrDepartmentNotFound
		}
		return nil
	})
}

func (r *departmentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *departmentRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Department{}).Where("name = ?", name)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}
