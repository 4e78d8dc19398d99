package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sshraki/Attendance/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	byID   map[string]employee.Employee
	nextID int
}

func newFakeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[string]employee.Employee)}
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.byID[id]
	if !ok || !e.IsActive {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, e := range r.byID {
		if e.EmployeeCode == code && e.IsActive {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	for _, existing := range r.byID {
		if existing.EmployeeCode == e.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if existing.Email == e.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	r.nextID++
	e.ID = fmt.Sprintf("emp-%d", r.nextID)
	r.byID[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	if _, ok := r.byID[e.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	e, ok := r.byID[id]
	if !ok || !e.IsActive {
		return employee.ErrEmployeeNotFound
	}
	e.IsActive = false
	r.byID[id] = e
	return nil
}

func (r *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.byID {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) HasAdmin(ctx context.Context) (bool, error) { return false, nil }

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: "EMP001",
		Name:         "Jane Roe",
		Email:        "jane@example.com",
		Role:         "employee",
		Department:   "Engineering",
		Password:     "password123",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)

	result, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "EMP001", result.EmployeeCode)
	assert.True(t, result.IsActive)

	stored := repo.byID[result.ID]
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("password123")))
}

func TestEmployeeService_Create_WithoutPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)

	req := validCreateRequest()
	req.Password = ""
	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Nil(t, repo.byID[result.ID].PasswordHash)
}

func TestEmployeeService_Create_DuplicateCode(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.Email = "other@example.com"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestEmployeeService_Create_UnknownManager(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)

	missing := "emp-404"
	req := validCreateRequest()
	req.ManagerID = &missing
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrManagerNotFound)
}

func TestEmployeeService_Create_InvalidRole(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)

	req := validCreateRequest()
	req.Role = "superuser"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestEmployeeService_Update(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	result, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:         created.ID,
		Name:       "Jane Doe",
		Email:      "jane.doe@example.com",
		Role:       "manager",
		Department: "Engineering",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", result.Name)
	assert.Equal(t, "manager", result.Role)
}

func TestEmployeeService_Deactivate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	err = svc.Deactivate(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_List(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.EmployeeCode = "EMP002"
	second.Email = "second@example.com"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, first.ID))

	results, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "EMP002", results[0].EmployeeCode)
}
