package service

import (
	"context"
	"strings"
	"time"

	"github.com/hr-attendance-api/internal/domain"
	"github.com/hr-attendance-api/internal/dto"
	"github.com/hr-attendance-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, department string) ([]domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
	CountByDepartment(ctx context.Context) (map[string]int64, error)
	ListDepartments(ctx context.Context) ([]string, error)
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{empRepo: empRepo}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	email := strings.TrimSpace(req.Email)

	// Проверяем уникальность email до вставки
	exists, err := s.empRepo.ExistsByEmail(ctx, email, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	emp := &domain.Employee{
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Phone:       req.Phone,
		Address:     req.Address,
		Designation: strings.TrimSpace(req.Designation),
		Department:  strings.TrimSpace(req.Department),
	}

	// Парсим дату приёма на работу, по умолчанию - сегодня
	if req.DateOfJoining != nil && *req.DateOfJoining != "" {
		doj, err := parseDate(*req.DateOfJoining)
		if err != nil {
			return nil, err
		}
		emp.DateOfJoining = doj
	} else {
		emp.DateOfJoining = truncateToDate(time.Now())
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context, department string) ([]domain.Employee, error) {
	return s.empRepo.List(ctx, department)
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Меняем только присланные поля
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)

		exists, err := s.empRepo.ExistsByEmail(ctx, email, &id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateEmail
		}
		emp.Email = email
	}
	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.Designation != nil {
		emp.Designation = strings.TrimSpace(*req.Designation)
	}
	if req.Department != nil {
		emp.Department = strings.TrimSpace(*req.Department)
	}

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.empRepo.DeleteWithAttendance(ctx, id)
}

func (s *employeeService) CountByDepartment(ctx context.Context) (map[string]int64, error) {
	return s.empRepo.CountByDepartment(ctx)
}

func (s *employeeService) ListDepartments(ctx context.Context) ([]string, error) {
	return s.empRepo.ListDepartments(ctx)
}

// parseDate разбирает календарную дату в формате YYYY-MM-DD
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return t, nil
}

// truncateToDate отбрасывает время суток, оставляя календарную дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
