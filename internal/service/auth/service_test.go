package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sshraki/Attendance/internal/config"
	"github.com/sshraki/Attendance/internal/domain/auth"
	"github.com/sshraki/Attendance/internal/domain/employee"
	"github.com/sshraki/Attendance/internal/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-jwt"
	testAccessExp = "1h"
)

type fakeEmployeeRepo struct {
	byCode map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	e, ok := r.byCode[code]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = "emp-" + e.EmployeeCode
	r.byCode[e.EmployeeCode] = e
	return e, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }
func (r *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error       { return nil }
func (r *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) HasAdmin(ctx context.Context) (bool, error) {
	for _, e := range r.byCode {
		if e.Role == employee.RoleAdmin && e.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func newTestService(repo *fakeEmployeeRepo) auth.AuthService {
	jwtSvc := jwt.NewJWTService(testSecret, testAccessExp)
	adminCfg := config.AdminConfig{EmployeeCode: "ADMIN001", Password: "admin-password"}
	return NewAuthService(repo, jwtSvc, adminCfg)
}

func seedEmployee(repo *fakeEmployeeRepo, code, password string, active bool) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	hash := string(hashed)
	repo.byCode[code] = employee.Employee{
		ID:           "emp-" + code,
		EmployeeCode: code,
		Name:         "Jane Roe",
		Email:        code + "@example.com",
		Role:         employee.RoleEmployee,
		PasswordHash: &hash,
		IsActive:     active,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &fakeEmployeeRepo{byCode: make(map[string]employee.Employee)}
	seedEmployee(repo, "EMP001", "password123", true)
	svc := newTestService(repo)

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "EMP001",
		Password:     "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.Greater(t, result.AccessTokenExpiresIn, int64(0))
	assert.Equal(t, "EMP001", result.Employee.EmployeeCode)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &fakeEmployeeRepo{byCode: make(map[string]employee.Employee)}
	seedEmployee(repo, "EMP001", "password123", true)
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "EMP001",
		Password:     "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmployee(t *testing.T) {
	repo := &fakeEmployeeRepo{byCode: make(map[string]employee.Employee)}
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "GHOST",
		Password:     "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := &fakeEmployeeRepo{byCode: make(map[string]employee.Employee)}
	seedEmployee(repo, "EMP001", "password123", false)
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "EMP001",
		Password:     "password123",
	})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestAuthService_Login_NoPasswordSet(t *testing.T) {
	repo := &fakeEmployeeRepo{byCode: map[string]employee.Employee{
		"EMP001": {ID: "emp-1", EmployeeCode: "EMP001", IsActive: true},
	}}
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "EMP001",
		Password:     "anything",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_EnsureDefaultAdmin_Seeds(t *testing.T) {
	repo := &fakeEmployeeRepo{byCode: make(map[string]employee.Employee)}
	svc := newTestService(repo)

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	admin, ok := repo.byCode["ADMIN001"]
	require.True(t, ok)
	assert.Equal(t, employee.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	require.NotNil(t, admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*admin.PasswordHash), []byte("admin-password")))
}

func TestAuthService_EnsureDefaultAdmin_Idempotent(t *testing.T) {
	repo := &fakeEmployeeRepo{byCode: make(map[string]employee.Employee)}
	svc := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultAdmin(ctx))
	first := repo.byCode["ADMIN001"]

	require.NoError(t, svc.EnsureDefaultAdmin(ctx))
	assert.Equal(t, first, repo.byCode["ADMIN001"])
}
