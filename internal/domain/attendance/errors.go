package attendance

import "errors"

var (
	// ErrEmptyReport means the raw text yielded no punches; nothing to process.
	ErrEmptyReport = errors.New("no attendance records found in report")

	ErrInvalidDateToken    = errors.New("invalid date token")
	ErrUnsupportedLocation = errors.New("unsupported report location")
	ErrInvalidSpreadsheet  = errors.New("invalid spreadsheet file")
	ErrDayFlagNotFound     = errors.New("day flag not found")
)
