package dto

import (
	"time"
)

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	Email         string  `json:"email" validate:"required,email,max=120"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
	Address       *string `json:"address" validate:"omitempty,max=200"`
	Designation   string  `json:"designation" validate:"required,min=1,max=100"`
	Department    string  `json:"department" validate:"required,min=1,max=100"`
	DateOfJoining *string `json:"date_of_joining" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest - запрос на частичное обновление сотрудника.
// Отсутствующее поле означает "не менять".
type UpdateEmployeeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email" validate:"omitempty,email,max=120"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	Address     *string `json:"address" validate:"omitempty,max=200"`
	Designation *string `json:"designation" validate:"omitempty,min=1,max=100"`
	Department  *string `json:"department" validate:"omitempty,min=1,max=100"`
}

// MarkAttendanceRequest - запрос на отметку посещаемости.
// Время принимается в формате HH:MM, хвост секунд (HH:MM:SS) отбрасывается.
type MarkAttendanceRequest struct {
	EmployeeID int64   `json:"employee_id" validate:"required,min=1"`
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	InTime     *string `json:"in_time"`
	OutTime    *string `json:"out_time"`
}

// UpdateAttendanceRequest - запрос на ручную корректировку отметки
type UpdateAttendanceRequest struct {
	InTime  *string `json:"in_time"`
	OutTime *string `json:"out_time"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	Address       *string   `json:"address"`
	Designation   string    `json:"designation"`
	Department    string    `json:"department"`
	DateOfJoining string    `json:"date_of_joining"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AttendanceResponse - ответ с данными отметки посещаемости
type AttendanceResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	InTime     *string `json:"in_time"`
	OutTime    *string `json:"out_time"`
	Status     string  `json:"status"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
