package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hr-attendance-api/internal/domain"
	"github.com/hr-attendance-api/internal/dto"
	"github.com/hr-attendance-api/internal/service"
)

func setupEmployeeService() (service.EmployeeService, *mockEmployeeRepo, *mockAttendanceRepo) {
	attRepo := newMockAttendanceRepo()
	empRepo := newMockEmployeeRepo(attRepo)
	return service.NewEmployeeService(empRepo), empRepo, attRepo
}

func createRequest(name, email, department string) *dto.CreateEmployeeRequest {
	return &dto.CreateEmployeeRequest{
		Name:        name,
		Email:       email,
		Designation: "Engineer",
		Department:  department,
	}
}

func TestCreateEmployee_AssignsIDAndDefaultsJoiningDate(t *testing.T) {
	svc, _, _ := setupEmployeeService()

	emp, err := svc.Create(context.Background(), createRequest("Jane Doe", "jane@x.com", "Eng"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if emp.ID == 0 {
		t.Error("expected id to be assigned")
	}
	if emp.Email != "jane@x.com" {
		t.Errorf("expected email 'jane@x.com', got '%s'", emp.Email)
	}

	today := time.Now().Format("2006-01-02")
	if emp.DateOfJoining.Format("2006-01-02") != today {
		t.Errorf("expected joining date defaulted to %s, got %s", today, emp.DateOfJoining.Format("2006-01-02"))
	}
}

func TestCreateEmployee_ParsesJoiningDate(t *testing.T) {
	svc, _, _ := setupEmployeeService()

	req := createRequest("Jane Doe", "jane@x.com", "Eng")
	doj := "2023-06-15"
	req.DateOfJoining = &doj

	emp, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if emp.DateOfJoining.Format("2006-01-02") != "2023-06-15" {
		t.Errorf("expected joining date '2023-06-15', got '%s'", emp.DateOfJoining.Format("2006-01-02"))
	}
}

func TestCreateEmployee_InvalidJoiningDate(t *testing.T) {
	svc, empRepo, _ := setupEmployeeService()

	req := createRequest("Jane Doe", "jane@x.com", "Eng")
	doj := "15/06/2023"
	req.DateOfJoining = &doj

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if len(empRepo.employees) != 0 {
		t.Errorf("expected store unchanged, got %d employees", len(empRepo.employees))
	}
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	svc, empRepo, _ := setupEmployeeService()

	if _, err := svc.Create(context.Background(), createRequest("Jane Doe", "jane@x.com", "Eng")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), createRequest("John Doe", "jane@x.com", "Sales"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(empRepo.employees) != 1 {
		t.Errorf("expected store unchanged after failed create, got %d employees", len(empRepo.employees))
	}
}

func TestUpdateEmployee_OnlyPhoneChanges(t *testing.T) {
	svc, _, _ := setupEmployeeService()

	emp, _ := svc.Create(context.Background(), createRequest("Jane Doe", "jane@x.com", "Eng"))

	phone := "555-1111"
	updated, err := svc.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{Phone: &phone})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Phone == nil || *updated.Phone != "555-1111" {
		t.Errorf("expected phone '555-1111', got %v", updated.Phone)
	}
	if updated.Name != "Jane Doe" || updated.Email != "jane@x.com" || updated.Department != "Eng" {
		t.Errorf("expected other fields unchanged, got name=%s email=%s department=%s",
			updated.Name, updated.Email, updated.Department)
	}
}

func TestUpdateEmployee_DuplicateEmailOfOther(t *testing.T) {
	svc, _, _ := setupEmployeeService()

	svc.Create(context.Background(), createRequest("Jane Doe", "jane@x.com", "Eng"))
	other, _ := svc.Create(context.Background(), createRequest("John Doe", "john@x.com", "Sales"))

	email := "jane@x.com"
	_, err := svc.Update(context.Background(), other.ID, &dto.UpdateEmployeeRequest{Email: &email})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUpdateEmployee_KeepingOwnEmailIsAllowed(t *testing.T) {
	svc, _, _ := setupEmployeeService()

	emp, _ := svc.Create(context.Background(), createRequest("Jane Doe", "jane@x.com", "Eng"))

	email := "jane@x.com"
	updated, err := svc.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{Email: &email})
	if err != nil {
		t.Fatalf("expected update with own email to succeed, got %v", err)
	}
	if updated.Email != "jane@x.com" {
		t.Errorf("expected email unchanged, got '%s'", updated.Email)
	}
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	svc, _, _ := setupEmployeeService()

	name := "Nobody"
	_, err := svc.Update(context.Background(), 42, &dto.UpdateEmployeeRequest{Name: &name})
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestDeleteEmployee_CascadesAttendance(t *testing.T) {
	svc, _, attRepo := setupEmployeeService()

	emp, _ := svc.Create(context.Background(), createRequest("Jane Doe", "jane@x.com", "Eng"))

	for _, date := range []string{"2024-01-10", "2024-01-11", "2024-01-12"} {
		attRepo.Create(context.Background(), &domain.Attendance{
			EmployeeID: emp.ID,
			Date:       date,
			Status:     "Present",
		})
	}

	if err := svc.Delete(context.Background(), emp.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	for _, att := range attRepo.records {
		if att.EmployeeID == emp.ID {
			t.Errorf("expected no attendance left for employee %d, found record %d", emp.ID, att.ID)
		}
	}
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	svc, _, _ := setupEmployeeService()

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestCountByDepartment(t *testing.T) {
	svc, _, _ := setupEmployeeService()

	svc.Create(context.Background(), createRequest("A", "a@x.com", "Eng"))
	svc.Create(context.Background(), createRequest("B", "b@x.com", "Eng"))
	svc.Create(context.Background(), createRequest("C", "c@x.com", "Sales"))

	counts, err := svc.CountByDepartment(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}

	if len(counts) != 2 || counts["Eng"] != 2 || counts["Sales"] != 1 {
		t.Errorf("expected {Eng:2 Sales:1}, got %v", counts)
	}
}

func TestList_FilterByDepartment(t *testing.T) {
	svc, _, _ := setupEmployeeService()

	svc.Create(context.Background(), createRequest("A", "a@x.com", "Eng"))
	svc.Create(context.Background(), createRequest("B", "b@x.com", "Sales"))

	employees, err := svc.List(context.Background(), "Eng")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(employees) != 1 || employees[0].Department != "Eng" {
		t.Errorf("expected exactly one Eng employee, got %v", employees)
	}
}
