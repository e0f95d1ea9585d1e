package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateEmail     = errors.New("employee with this email already exists")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime        = errors.New("invalid time, expected HH:MM")
)
