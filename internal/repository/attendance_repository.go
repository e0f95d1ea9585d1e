package repository

import (
	"context"

	"github.com/hr-attendance-api/internal/domain"
	"gorm.io/gorm"
)

// AttendanceRepository определяет интерфейс для работы с отметками посещаемости
type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	GetByID(ctx context.Context, id int64) (*domain.Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*domain.Attendance, error)
	ListByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Attendance, error)
	Update(ctx context.Context, att *domain.Attendance) error
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository создаёт новый экземпляр репозитория
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (*domain.Attendance, error) {
	var att domain.Attendance
	err := r.db.WithContext(ctx).First(&att, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*domain.Attendance, error) {
	var att domain.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&att).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &att, nil
}

// ListByEmployeeID возвращает историю посещаемости сотрудника,
// самые свежие даты первыми.
func (r *attendanceRepository) ListByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	var records []domain.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) Update(ctx context.Context, att *domain.Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}
