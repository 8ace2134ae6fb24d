package employee

import "time"

// Employee is the worker identity the attendance screens operate on.
type Employee struct {
	ID        string
	FullName  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
