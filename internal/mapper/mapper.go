package mapper

import (
	"strings"
	"time"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
)

const hireDateLayout = "2006-01-02"

// ToDepartmentResponse преобразует отдел в форму ответа.
// employeeCount считается по загруженной связи на момент чтения.
func ToDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Description:   dept.Description,
		Location:      dept.Location,
		EmployeeCount: len(dept.Employees),
		CreatedAt:     dept.CreatedAt,
		UpdatedAt:     dept.UpdatedAt,
	}
}

// ToDepartmentSummary преобразует отдел в краткую форму для вложения в ответ сотрудника
func ToDepartmentSummary(dept *domain.Department) *dto.DepartmentSummary {
	if dept == nil {
		return nil
	}
	return &dto.DepartmentSummary{
		ID:            dept.ID,
		Name:          dept.Name,
		Location:      dept.Location,
		EmployeeCount: len(dept.Employees),
	}
}

// ToDepartmentEntity создаёт новый отдел из запроса.
// Генерируемые поля (id, отметки времени) заполняет слой хранения.
func ToDepartmentEntity(req *dto.DepartmentRequest) *domain.Department {
	return &domain.Department{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Location:    req.Location,
	}
}

// UpdateDepartmentEntity перезаписывает изменяемые поля отдела значениями из запроса
func UpdateDepartmentEntity(dept *domain.Department, req *dto.DepartmentRequest) {
	dept.Name = strings.TrimSpace(req.Name)
	dept.Description = req.Description
	dept.Location = req.Location
}

// ToEmployeeResponse преобразует сотрудника в форму ответа
func ToEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:         emp.ID,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Email:      emp.Email,
		Phone:      emp.Phone,
		Position:   emp.Position,
		Salary:     emp.Salary,
		Department: ToDepartmentSummary(emp.Department),
		CreatedAt:  emp.CreatedAt,
		UpdatedAt:  emp.UpdatedAt,
	}

	if emp.HireDate != nil {
		hireDate := emp.HireDate.Format(hireDateLayout)
		resp.HireDate = &hireDate
	}

	return resp
}

// ToEmployeeEntity создаёт нового сотрудника из запроса.
// Привязку к отделу назначает сервис, а не этот слой.
func ToEmployeeEntity(req *dto.EmployeeRequest) (*domain.Employee, error) {
	emp := &domain.Employee{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     req.Phone,
		Position:  req.Position,
		Salary:    req.Salary,
	}

	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return nil, err
	}
	emp.HireDate = hireDate

	return emp, nil
}

// UpdateEmployeeEntity перезаписывает все изменяемые скалярные поля сотрудника.
// Необязательные поля, отсутствующие в запросе, очищаются, а не остаются прежними.
func UpdateEmployeeEntity(emp *domain.Employee, req *dto.EmployeeRequest) error {
	emp.FirstName = strings.TrimSpace(req.FirstName)
	emp.LastName = strings.TrimSpace(req.LastName)
	emp.Email = strings.TrimSpace(req.Email)
	emp.Phone = req.Phone
	emp.Position = req.Position
	emp.Salary = req.Salary

	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return err
	}
	emp.HireDate = hireDate

	return nil
}

func parseHireDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	hireDate, err := time.Parse(hireDateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &hireDate, nil
}
