package employee

import "context"

type EmployeeService interface {
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
}
