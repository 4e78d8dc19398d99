package employee

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleManager  Role = "manager"  // Can decide approval requests
	RoleAdmin    Role = "admin"    // Full access
)

type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
	Email        string
	Role         Role
	Department   string
	ManagerID    *string
	PasswordHash *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	ManagerName *string
}

// CanApprove checks if the employee can decide approval requests.
func (e *Employee) CanApprove() bool {
	return e.Role == RoleManager || e.Role == RoleAdmin
}

// IsAdmin checks if the employee has full administrative access.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}
