package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hr-attendance-api/internal/domain"
	"github.com/hr-attendance-api/internal/dto"
	"github.com/hr-attendance-api/internal/repository"
)

// StatusPresent - статус отметки по умолчанию.
// Поле свободное, никаких автоматических переходов статуса нет.
const StatusPresent = "Present"

// AttendanceService определяет интерфейс бизнес-логики для посещаемости
type AttendanceService interface {
	Mark(ctx context.Context, req *dto.MarkAttendanceRequest) (*domain.Attendance, error)
	Punch(ctx context.Context, employeeID int64, now time.Time) (*domain.Attendance, error)
	HistoryFor(ctx context.Context, employeeID int64) ([]domain.Attendance, error)
	GetByID(ctx context.Context, id int64) (*domain.Attendance, error)
	UpdateByID(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*domain.Attendance, error)
}

type attendanceService struct {
	attRepo repository.AttendanceRepository
	empRepo repository.EmployeeRepository
}

// NewAttendanceService создаёт новый экземпляр сервиса
func NewAttendanceService(attRepo repository.AttendanceRepository, empRepo repository.EmployeeRepository) AttendanceService {
	return &attendanceService{
		attRepo: attRepo,
		empRepo: empRepo,
	}
}

// Mark находит или создаёт отметку за (сотрудник, дата) и проставляет
// только присланные времена. Существующие значения не затираются пустыми.
func (s *attendanceService) Mark(ctx context.Context, req *dto.MarkAttendanceRequest) (*domain.Attendance, error) {
	// Проверяем существование сотрудника
	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	date := time.Now().Format("2006-01-02")
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		date = parsed.Format("2006-01-02")
	}

	att, err := s.attRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if errors.Is(err, domain.ErrAttendanceNotFound) {
		att = &domain.Attendance{
			EmployeeID: req.EmployeeID,
			Date:       date,
			Status:     StatusPresent,
		}
		if err := s.attRepo.Create(ctx, att); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	changed, err := applyTimes(att, req.InTime, req.OutTime)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := s.attRepo.Update(ctx, att); err != nil {
			return nil, err
		}
	}

	return att, nil
}

// Punch выполняет отметку по кнопке на момент now:
// нет записи за сегодня - фиксируем приход, запись с приходом без ухода -
// фиксируем уход, день закрыт - ничего не делаем.
// Состояние каждый раз вычисляется заново по наличию записи и её полям.
func (s *attendanceService) Punch(ctx context.Context, employeeID int64, now time.Time) (*domain.Attendance, error) {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	today := now.Format("2006-01-02")

	att, err := s.attRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if errors.Is(err, domain.ErrAttendanceNotFound) {
		inTime := now.Format("15:04")
		att = &domain.Attendance{
			EmployeeID: employeeID,
			Date:       today,
			InTime:     &inTime,
			Status:     StatusPresent,
		}
		if err := s.attRepo.Create(ctx, att); err != nil {
			return nil, err
		}
		return att, nil
	}
	if err != nil {
		return nil, err
	}

	if att.InTime != nil && att.OutTime == nil {
		outTime := now.Format("15:04")
		att.OutTime = &outTime
		if err := s.attRepo.Update(ctx, att); err != nil {
			return nil, err
		}
		return att, nil
	}

	// День уже закрыт - повторная отметка игнорируется
	return att, nil
}

func (s *attendanceService) HistoryFor(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	return s.attRepo.ListByEmployeeID(ctx, employeeID)
}

func (s *attendanceService) GetByID(ctx context.Context, id int64) (*domain.Attendance, error) {
	return s.attRepo.GetByID(ctx, id)
}

// UpdateByID корректирует времена существующей отметки по тем же правилам
// разбора, что и Mark.
func (s *attendanceService) UpdateByID(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*domain.Attendance, error) {
	att, err := s.attRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := applyTimes(att, req.InTime, req.OutTime)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := s.attRepo.Update(ctx, att); err != nil {
			return nil, err
		}
	}

	return att, nil
}

// applyTimes проставляет присланные времена на отметке.
// Пустая строка или отсутствующее поле оставляют значение как есть.
func applyTimes(att *domain.Attendance, inTime, outTime *string) (bool, error) {
	changed := false

	if inTime != nil && *inTime != "" {
		normalized, err := normalizeTime(*inTime)
		if err != nil {
			return false, err
		}
		att.InTime = &normalized
		changed = true
	}

	if outTime != nil && *outTime != "" {
		normalized, err := normalizeTime(*outTime)
		if err != nil {
			return false, err
		}
		att.OutTime = &normalized
		changed = true
	}

	return changed, nil
}

// normalizeTime приводит строку времени к формату HH:MM.
// Вход с секундами (HH:MM:SS) усекается до HH:MM перед разбором.
func normalizeTime(value string) (string, error) {
	parts := strings.Split(value, ":")
	if len(parts) == 3 {
		value = parts[0] + ":" + parts[1]
	}

	t, err := time.Parse("15:04", value)
	if err != nil {
		return "", domain.ErrInvalidTime
	}
	return t.Format("15:04"), nil
}
