package employee

import "context"

// EmployeeService defines business logic for employee directory management.
type EmployeeService interface {
	// Create registers a new employee, hashing the password when provided.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Update replaces the mutable fields of an employee.
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate soft deletes an employee.
	Deactivate(ctx context.Context, id string) error

	// Get retrieves an employee by internal id.
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// GetByEmployeeCode retrieves an active employee by public code.
	GetByEmployeeCode(ctx context.Context, employeeCode string) (EmployeeResponse, error)

	// List retrieves all active employees.
	List(ctx context.Context) ([]EmployeeResponse, error)
}
