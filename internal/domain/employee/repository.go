package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when no worker matches
	GetByID(ctx context.Context, id string) (Employee, error)

	// List returns workers in creation order
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
}
