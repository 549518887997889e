package mapper_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/mapper"
)

func TestToDepartmentResponse_CountsLoadedEmployees(t *testing.T) {
	dept := &domain.Department{
		ID:        1,
		Name:      "Engineering",
		Location:  "Austin",
		Employees: []domain.Employee{{ID: 1}, {ID: 2}},
	}

	resp := mapper.ToDepartmentResponse(dept)
	assert.Equal(t, "Engineering", resp.Name)
	assert.Equal(t, 2, resp.EmployeeCount)
}

func TestToDepartmentSummary_NilDepartment(t *testing.T) {
	assert.Nil(t, mapper.ToDepartmentSummary(nil))
}

func TestToDepartmentEntity_TrimsName(t *testing.T) {
	dept := mapper.ToDepartmentEntity(&dto.DepartmentRequest{Name: "  Engineering  "})
	assert.Equal(t, "Engineering", dept.Name)
	assert.Zero(t, dept.ID)
}

func TestToEmployeeEntity_ParsesHireDate(t *testing.T) {
	hireDate := "2023-05-15"
	emp, err := mapper.ToEmployeeEntity(&dto.EmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@x.com",
		HireDate:  &hireDate,
	})
	require.NoError(t, err)
	require.NotNil(t, emp.HireDate)
	assert.Equal(t, time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC), *emp.HireDate)
}

func TestToEmployeeEntity_BadHireDate(t *testing.T) {
	hireDate := "15.05.2023"
	_, err := mapper.ToEmployeeEntity(&dto.EmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@x.com",
		HireDate:  &hireDate,
	})
	assert.Error(t, err)
}

func TestUpdateEmployeeEntity_FullReplaceClearsOptionalFields(t *testing.T) {
	salary := decimal.RequireFromString("95000.50")
	hireDate := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)
	deptID := int64(1)

	emp := &domain.Employee{
		ID:           7,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@x.com",
		Phone:        "+1 555 0100",
		Position:     "Engineer",
		Salary:       &salary,
		HireDate:     &hireDate,
		DepartmentID: &deptID,
	}

	// Запрос без необязательных полей: они очищаются, а не сохраняются.
	// Привязкой к отделу управляет сервис, этот слой её не трогает.
	err := mapper.UpdateEmployeeEntity(emp, &dto.EmployeeRequest{
		FirstName: "Ada",
		LastName:  "King",
		Email:     "ada@x.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "King", emp.LastName)
	assert.Empty(t, emp.Phone)
	assert.Empty(t, emp.Position)
	assert.Nil(t, emp.Salary)
	assert.Nil(t, emp.HireDate)
	assert.Equal(t, &deptID, emp.DepartmentID)
}

func TestToEmployeeResponse_NestedSummary(t *testing.T) {
	deptID := int64(3)
	emp := &domain.Employee{
		ID:           1,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@x.com",
		DepartmentID: &deptID,
		Department: &domain.Department{
			ID:        deptID,
			Name:      "Engineering",
			Location:  "Austin",
			Employees: []domain.Employee{{ID: 1}},
		},
	}

	resp := mapper.ToEmployeeResponse(emp)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "Engineering", resp.Department.Name)
	assert.Equal(t, 1, resp.Department.EmployeeCount)
}

func TestToEmployeeResponse_Unassigned(t *testing.T) {
	emp := &domain.Employee{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com"}

	resp := mapper.ToEmployeeResponse(emp)
	assert.Nil(t, resp.Department)
	assert.Nil(t, resp.HireDate)
}
