package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/repository"
	"github.com/employee-management-api/internal/service"
)

type testEnv struct {
	db          *gorm.DB
	deptService service.DepartmentService
	empService  service.EmployeeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Department{}, &domain.Employee{}))

	deptRepo := repository.NewDepartmentRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	return &testEnv{
		db:          db,
		deptService: service.NewDepartmentService(deptRepo),
		empService:  service.NewEmployeeService(empRepo, deptRepo),
	}
}

func (env *testEnv) createDepartment(t *testing.T, name, location string) *dto.DepartmentResponse {
	t.Helper()
	dept, err := env.deptService.Create(context.Background(), &dto.DepartmentRequest{Name: name, Location: location})
	require.NoError(t, err)
	return dept
}

func (env *testEnv) createEmployee(t *testing.T, req *dto.EmployeeRequest) *dto.EmployeeResponse {
	t.Helper()
	emp, err := env.empService.Create(context.Background(), req)
	require.NoError(t, err)
	return emp
}

func TestDepartmentService_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createDepartment(t, "Engineering", "Austin")
	assert.Equal(t, "Engineering", created.Name)
	assert.Zero(t, created.EmployeeCount)

	got, err := env.deptService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
}

func TestDepartmentService_CreateDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createDepartment(t, "Engineering", "Austin")

	_, err := env.deptService.Create(ctx, &dto.DepartmentRequest{Name: "Engineering"})
	assert.ErrorIs(t, err, domain.ErrDuplicateDepartmentName)

	var count int64
	require.NoError(t, env.db.Model(&domain.Department{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "failed create must not leave a row behind")
}

func TestDepartmentService_UpdateKeepsOwnName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createDepartment(t, "Engineering", "Austin")

	updated, err := env.deptService.Update(ctx, created.ID, &dto.DepartmentRequest{
		Name:     "Engineering",
		Location: "Dallas",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dallas", updated.Location)
}

func TestDepartmentService_UpdateToTakenName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createDepartment(t, "Engineering", "Austin")
	other := env.createDepartment(t, "Finance", "Boston")

	_, err := env.deptService.Update(ctx, other.ID, &dto.DepartmentRequest{Name: "Engineering"})
	assert.ErrorIs(t, err, domain.ErrDuplicateDepartmentName)
}

func TestDepartmentService_UpdateToFreeName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createDepartment(t, "Engineering", "Austin")

	updated, err := env.deptService.Update(ctx, created.ID, &dto.DepartmentRequest{Name: "Platform"})
	require.NoError(t, err)
	assert.Equal(t, "Platform", updated.Name)
}

func TestDepartmentService_UpdateClearsOptionalFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dept, err := env.deptService.Create(ctx, &dto.DepartmentRequest{
		Name:        "Engineering",
		Description: "builds things",
		Location:    "Austin",
	})
	require.NoError(t, err)

	// Полная замена: пропущенные необязательные поля очищаются
	updated, err := env.deptService.Update(ctx, dept.ID, &dto.DepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)
	assert.Empty(t, updated.Description)
	assert.Empty(t, updated.Location)
}

func TestDepartmentService_GetByID_EmployeeCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dept := env.createDepartment(t, "Engineering", "Austin")
	env.createEmployee(t, &dto.EmployeeRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", DepartmentID: &dept.ID,
	})
	env.createEmployee(t, &dto.EmployeeRequest{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@x.com", DepartmentID: &dept.ID,
	})

	got, err := env.deptService.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.EmployeeCount)
}

func TestDepartmentService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dept := env.createDepartment(t, "Engineering", "Austin")
	emp := env.createEmployee(t, &dto.EmployeeRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", DepartmentID: &dept.ID,
	})

	require.NoError(t, env.deptService.Delete(ctx, dept.ID))

	_, err := env.deptService.GetByID(ctx, dept.ID)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)

	_, err = env.empService.GetByID(ctx, emp.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestDepartmentService_DeleteNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.deptService.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestDepartmentService_ListPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createDepartment(t, "Engineering", "Austin")
	env.createDepartment(t, "Finance", "Boston")
	env.createDepartment(t, "Marketing", "Chicago")

	first, err := env.deptService.List(ctx, repository.PageRequest{Page: 0, Size: 2, SortBy: "name", SortDir: "asc"})
	require.NoError(t, err)
	assert.Len(t, first.Content, 2)
	assert.EqualValues(t, 3, first.TotalElements)
	assert.Equal(t, 2, first.TotalPages)
	assert.False(t, first.Last)

	second, err := env.deptService.List(ctx, repository.PageRequest{Page: 1, Size: 2, SortBy: "name", SortDir: "asc"})
	require.NoError(t, err)
	assert.Len(t, second.Content, 1)
	assert.True(t, second.Last)
}

func TestDepartmentService_ListAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createDepartment(t, "Engineering", "Austin")
	env.createDepartment(t, "Finance", "Boston")

	all, err := env.deptService.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
