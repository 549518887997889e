package service

import (
	"context"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/mapper"
	"github.com/employee-management-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для отделов
type DepartmentService interface {
	Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error)
	List(ctx context.Context, page repository.PageRequest) (*dto.PageResponse[dto.DepartmentResponse], error)
	Search(ctx context.Context, keyword string, page repository.PageRequest) (*dto.PageResponse[dto.DepartmentResponse], error)
	ListAll(ctx context.Context) ([]dto.DepartmentResponse, error)
	Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{deptRepo: deptRepo}
}

func (s *departmentService) Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	name := strings.TrimSpace(req.Name)

	// Проверяем уникальность имени
	exists, err := s.deptRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateDepartmentName
	}

	dept := mapper.ToDepartmentEntity(req)
	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	resp := mapper.ToDepartmentResponse(dept)
	return &resp, nil
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	dept, err := s.deptRepo.GetByIDWithEmployees(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := mapper.ToDepartmentResponse(dept)
	return &resp, nil
}

func (s *departmentService) List(ctx context.Context, page repository.PageRequest) (*dto.PageResponse[dto.DepartmentResponse], error) {
	result, err := s.deptRepo.FindAll(ctx, page)
	if err != nil {
		return nil, err
	}
	return departmentPage(result, page), nil
}

func (s *departmentService) Search(ctx context.Context, keyword string, page repository.PageRequest) (*dto.PageResponse[dto.DepartmentResponse], error) {
	result, err := s.deptRepo.Search(ctx, keyword, page)
	if err != nil {
		return nil, err
	}
	return departmentPage(result, page), nil
}

func (s *departmentService) ListAll(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := s.deptRepo.FindAllList(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = mapper.ToDepartmentResponse(&departments[i])
	}
	return responses, nil
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Уникальность проверяем только если имя меняется:
	// обновление без смены имени не конфликтует само с собой
	name := strings.TrimSpace(req.Name)
	if name != dept.Name {
		exists, err := s.deptRepo.ExistsByName(ctx, name, &id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateDepartmentName
		}
	}

	mapper.UpdateDepartmentEntity(dept, req)
	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}

	// Перечитываем со связью, чтобы в ответе был актуальный employeeCount
	updated, err := s.deptRepo.GetByIDWithEmployees(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := mapper.ToDepartmentResponse(updated)
	return &resp, nil
}

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.deptRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.deptRepo.DeleteCascade(ctx, id)
}

func departmentPage(result *repository.Page[domain.Department], page repository.PageRequest) *dto.PageResponse[dto.DepartmentResponse] {
	responses := make([]dto.DepartmentResponse, len(result.Items))
	for i := range result.Items {
		responses[i] = mapper.ToDepartmentResponse(&result.Items[i])
	}
	return dto.NewPageResponse(responses, page.Page, page.Size, result.TotalElements)
}
