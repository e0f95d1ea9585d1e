package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/hr-attendance-api/internal/domain"
)

type mockEmployeeRepo struct {
	employees  map[int64]*domain.Employee
	nextID     int64
	attendance *mockAttendanceRepo
}

func newMockEmployeeRepo(attendance *mockAttendanceRepo) *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees:  make(map[int64]*domain.Employee),
		nextID:     1,
		attendance: attendance,
	}
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	emp.ID = m.nextID
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	m.nextID++
	clone := *emp
	m.employees[emp.ID] = &clone
	return nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if emp, ok := m.employees[id]; ok {
		clone := *emp
		return &clone, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) List(ctx context.Context, department string) ([]domain.Employee, error) {
	var result []domain.Employee
	for _, emp := range m.employees {
		if department == "" || emp.Department == department {
			result = append(result, *emp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	emp.UpdatedAt = time.Now()
	clone := *emp
	m.employees[emp.ID] = &clone
	return nil
}

func (m *mockEmployeeRepo) DeleteWithAttendance(ctx context.Context, id int64) error {
	if _, ok := m.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	if m.attendance != nil {
		m.attendance.deleteByEmployee(id)
	}
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepo) ExistsByEmail(ctx context.Context, email string, excludeID *int64) (bool, error) {
	for _, emp := range m.employees {
		if emp.Email == email {
			if excludeID == nil || emp.ID != *excludeID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (m *mockEmployeeRepo) CountByDepartment(ctx context.Context) (map[string]int64, error) {
	result := make(map[string]int64)
	for _, emp := range m.employees {
		result[emp.Department]++
	}
	return result, nil
}

func (m *mockEmployeeRepo) ListDepartments(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	for _, emp := range m.employees {
		if !seen[emp.Department] {
			seen[emp.Department] = true
			result = append(result, emp.Department)
		}
	}
	sort.Strings(result)
	return result, nil
}

type mockAttendanceRepo struct {
	records map[int64]*domain.Attendance
	nextID  int64
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{
		records: make(map[int64]*domain.Attendance),
		nextID:  1,
	}
}

func (m *mockAttendanceRepo) Create(ctx context.Context, att *domain.Attendance) error {
	att.ID = m.nextID
	m.nextID++
	clone := *att
	m.records[att.ID] = &clone
	return nil
}

func (m *mockAttendanceRepo) GetByID(ctx context.Context, id int64) (*domain.Attendance, error) {
	if att, ok := m.records[id]; ok {
		clone := *att
		return &clone, nil
	}
	return nil, domain.ErrAttendanceNotFound
}

func (m *mockAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*domain.Attendance, error) {
	for _, att := range m.records {
		if att.EmployeeID == employeeID && att.Date == date {
			clone := *att
			return &clone, nil
		}
	}
	return nil, domain.ErrAttendanceNotFound
}

func (m *mockAttendanceRepo) ListByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	var result []domain.Attendance
	for _, att := range m.records {
		if att.EmployeeID == employeeID {
			result = append(result, *att)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (m *mockAttendanceRepo) Update(ctx context.Context, att *domain.Attendance) error {
	clone := *att
	m.records[att.ID] = &clone
	return nil
}

func (m *mockAttendanceRepo) deleteByEmployee(employeeID int64) {
	for id, att := range m.records {
		if att.EmployeeID == employeeID {
			delete(m.records, id)
		}
	}
}
