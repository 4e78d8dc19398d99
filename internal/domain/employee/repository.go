package employee

import "context"

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	// GetByID retrieves an employee by internal id. Active employees only.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmployeeCode retrieves an active employee by the public employee
	// code. Used to validate existence before attendance operations.
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)

	// Create inserts a new employee.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// Update replaces the mutable fields of an existing employee.
	Update(ctx context.Context, emp Employee) error

	// Deactivate soft deletes an employee (clears the active flag).
	Deactivate(ctx context.Context, id string) error

	// ListActive retrieves all active employees ordered by name.
	ListActive(ctx context.Context) ([]Employee, error)

	// HasAdmin reports whether any active admin account exists.
	HasAdmin(ctx context.Context) (bool, error)
}
