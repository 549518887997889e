package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department представляет отдел компании
type Department struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_departments_name"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location" gorm:"type:varchar(100)"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника. Привязка к отделу необязательна:
// department_id равный NULL означает, что сотрудник не закреплён за отделом.
type Employee struct {
	ID           int64            `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName    string           `json:"first_name" gorm:"type:varchar(50);not null"`
	LastName     string           `json:"last_name" gorm:"type:varchar(50);not null"`
	Email        string           `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:idx_employees_email"`
	Phone        string           `json:"phone" gorm:"type:varchar(30)"`
	Position     string           `json:"position" gorm:"type:varchar(100)"`
	Salary       *decimal.Decimal `json:"salary" gorm:"type:numeric(12,2)"`
	HireDate     *time.Time       `json:"hire_date" gorm:"type:date"`
	DepartmentID *int64           `json:"department_id" gorm:"index"`
	CreatedAt    time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time        `json:"updated_at" gorm:"autoUpdateTime"`

	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}
