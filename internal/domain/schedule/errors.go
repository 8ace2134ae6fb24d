package schedule

import "errors"

var (
	ErrShiftConfigNotFound = errors.New("shift configuration not found")
	ErrInvalidLocation     = errors.New("invalid location")
)
