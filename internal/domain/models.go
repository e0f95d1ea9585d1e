package domain

import (
	"time"
)

// Employee представляет сотрудника
type Employee struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	Email         string    `json:"email" gorm:"type:varchar(120);not null;uniqueIndex:idx_employees_email"`
	Phone         *string   `json:"phone" gorm:"type:varchar(20)"`
	Address       *string   `json:"address" gorm:"type:varchar(200)"`
	Designation   string    `json:"designation" gorm:"type:varchar(100);not null"`
	Department    string    `json:"department" gorm:"type:varchar(100);not null;index"`
	DateOfJoining time.Time `json:"date_of_joining" gorm:"type:date;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	AttendanceRecords []Attendance `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Attendance представляет отметку посещаемости сотрудника за календарный день.
// Дата хранится строкой YYYY-MM-DD, время прихода и ухода - строками HH:MM.
type Attendance struct {
	ID         int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64   `json:"employee_id" gorm:"not null;index;uniqueIndex:idx_attendance_employee_date"`
	Date       string  `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_employee_date"`
	InTime     *string `json:"in_time" gorm:"type:varchar(5)"`
	OutTime    *string `json:"out_time" gorm:"type:varchar(5)"`
	Status     string  `json:"status" gorm:"type:varchar(20);default:Present"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Attendance) TableName() string {
	return "attendance"
}
