package performance

import "errors"

var (
	ErrPerformanceNotFound = errors.New("performance metrics not found")
)
