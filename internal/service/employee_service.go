package service

import (
	"context"
	"time"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/mapper"
	"github.com/employee-management-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error)
	List(ctx context.Context, page repository.PageRequest) (*dto.PageResponse[dto.EmployeeResponse], error)
	Search(ctx context.Context, keyword string, page repository.PageRequest) (*dto.PageResponse[dto.EmployeeResponse], error)
	Filter(ctx context.Context, filter repository.EmployeeFilter, page repository.PageRequest) (*dto.PageResponse[dto.EmployeeResponse], error)
	ListByDepartment(ctx context.Context, departmentID int64, page repository.PageRequest) (*dto.PageResponse[dto.EmployeeResponse], error)
	ListAll(ctx context.Context) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	deptRepo repository.DepartmentRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository, deptRepo repository.DepartmentRepository) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		deptRepo: deptRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	// Проверяем уникальность email
	exists, err := s.empRepo.ExistsByEmail(ctx, req.Email, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmployeeEmail
	}

	emp, err := mapper.ToEmployeeEntity(req)
	if err != nil {
		return nil, err
	}
	if err := validateHireDate(emp.HireDate); err != nil {
		return nil, err
	}

	// Привязка к отделу необязательна, но указанный отдел должен существовать
	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		emp.DepartmentID = req.DepartmentID
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	// Перечитываем со связью, чтобы собрать вложенную сводку отдела
	return s.GetByID(ctx, emp.ID)
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := mapper.ToEmployeeResponse(emp)
	return &resp, nil
}

func (s *employeeService) List(ctx context.Context, page repository.PageRequest) (*dto.PageResponse[dto.EmployeeResponse], error) {
	result, err := s.empRepo.FindAll(ctx, page)
	if err != nil {
		return nil, err
	}
	return employeePage(result, page), nil
}

func (s *employeeService) Search(ctx context.Context, keyword string, page repository.PageRequest) (*dto.PageResponse[dto.EmployeeResponse], error) {
	result, err := s.empRepo.Search(ctx, keyword, page)
	if err != nil {
		return nil, err
	}
	return employeePage(result, page), nil
}

func (s *employeeService) Filter(ctx context.Context, filter repository.EmployeeFilter, page repository.PageRequest) (*dto.PageResponse[dto.EmployeeResponse], error) {
	result, err := s.empRepo.Filter(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return employeePage(result, page), nil
}

func (s *employeeService) ListByDepartment(ctx context.Context, departmentID int64, page repository.PageRequest) (*dto.PageResponse[dto.EmployeeResponse], error) {
	exists, err := s.deptRepo.ExistsByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrDepartmentNotFound
	}

	result, err := s.empRepo.FindByDepartmentID(ctx, departmentID, page)
	if err != nil {
		return nil, err
	}
	return employeePage(result, page), nil
}

func (s *employeeService) ListAll(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.empRepo.FindAllList(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = mapper.ToEmployeeResponse(&employees[i])
	}
	return responses, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Уникальность проверяем только если email меняется:
	// обновление без смены email не конфликтует само с собой
	if req.Email != emp.Email {
		exists, err := s.empRepo.ExistsByEmail(ctx, req.Email, &id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateEmployeeEmail
		}
	}

	if err := mapper.UpdateEmployeeEntity(emp, req); err != nil {
		return nil, err
	}
	if err := validateHireDate(emp.HireDate); err != nil {
		return nil, err
	}

	// Полная замена привязки: отсутствие departmentId в запросе
	// открепляет сотрудника от отдела, а не оставляет прежнюю связь
	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		emp.DepartmentID = req.DepartmentID
	} else {
		emp.DepartmentID = nil
	}
	emp.Department = nil

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.empRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.empRepo.Delete(ctx, id)
}

// validateHireDate отклоняет дату найма из будущего.
// Дата парсится в полночь, поэтому сегодняшняя дата проходит проверку.
func validateHireDate(hireDate *time.Time) error {
	if hireDate != nil && hireDate.After(time.Now()) {
		return domain.ErrHireDateInFuture
	}
	return nil
}

func employeePage(result *repository.Page[domain.Employee], page repository.PageRequest) *dto.PageResponse[dto.EmployeeResponse] {
	responses := make([]dto.EmployeeResponse, len(result.Items))
	for i := range result.Items {
		responses[i] = mapper.ToEmployeeResponse(&result.Items[i])
	}
	return dto.NewPageResponse(responses, page.Page, page.Size, result.TotalElements)
}
