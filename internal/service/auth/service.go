package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sshraki/Attendance/internal/config"
	"github.com/sshraki/Attendance/internal/domain/auth"
	"github.com/sshraki/Attendance/internal/domain/employee"
	"github.com/sshraki/Attendance/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwtService jwt.Service
	adminCfg   config.AdminConfig
}

func NewAuthService(
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	adminCfg config.AdminConfig,
) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
		adminCfg:           adminCfg,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}
	if emp.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.EmployeeCode, emp.Name, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		Employee:             employee.ToResponse(emp),
	}, nil
}

// EnsureDefaultAdmin implements auth.AuthService.
func (s *AuthServiceImpl) EnsureDefaultAdmin(ctx context.Context) error {
	exists, err := s.EmployeeRepository.HasAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(s.adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	hash := string(hashed)
	admin := employee.Employee{
		EmployeeCode: s.adminCfg.EmployeeCode,
		Name:         "System Administrator",
		Email:        "admin@company.com",
		Role:         employee.RoleAdmin,
		Department:   "IT",
		PasswordHash: &hash,
		IsActive:     true,
	}

	if _, err := s.EmployeeRepository.Create(ctx, admin); err != nil {
		// A concurrent boot may have seeded the account already.
		if errors.Is(err, employee.ErrEmployeeCodeExists) || errors.Is(err, employee.ErrEmailExists) {
			return nil
		}
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	return nil
}
