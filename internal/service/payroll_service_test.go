package service

import (
	"errors"
	"testing"
	"time"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/pkg/apperr"
)

func TestMarkAttendanceRecomputesSalary(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")
	employee := env.newEmployee(t, "worker", manager.ID, "500")

	today := model.Today()
	for i := 0; i < 3; i++ {
		day := today.AddDate(0, 0, -i)
		if day.Month() != today.Month() {
			t.Skip("month boundary, sample days span two salary months")
		}
		if _, err := env.payroll.MarkAttendance(manager.ID, employee.ID, day, model.AttendancePresent); err != nil {
			t.Fatalf("MarkAttendance: %v", err)
		}
	}

	dashboard, err := env.payroll.EmployeeDashboard(employee.ID)
	if err != nil {
		t.Fatalf("EmployeeDashboard: %v", err)
	}
	if dashboard.DaysWorked != 3 {
		t.Errorf("days worked = %d, want 3", dashboard.DaysWorked)
	}
	assertDecimal(t, "final salary", dashboard.FinalSalary, "1500")
}

func TestMarkAttendanceUpsertAndAbsent(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")
	employee := env.newEmployee(t, "worker", manager.ID, "500")
	today := model.Today()

	if _, err := env.payroll.MarkAttendance(manager.ID, employee.ID, today, model.AttendancePresent); err != nil {
		t.Fatalf("MarkAttendance: %v", err)
	}
	// Same day flipped to absent overwrites, no second row
	if _, err := env.payroll.MarkAttendance(manager.ID, employee.ID, today, model.AttendanceAbsent); err != nil {
		t.Fatalf("MarkAttendance flip: %v", err)
	}

	attendances, err := env.payroll.MonthlyAttendance(employee.ID, today.Year(), today.Month())
	if err != nil {
		t.Fatalf("MonthlyAttendance: %v", err)
	}
	if len(attendances) != 1 {
		t.Fatalf("attendance rows = %d, want 1", len(attendances))
	}
	if attendances[0].Status != model.AttendanceAbsent {
		t.Errorf("status = %s, want absent", attendances[0].Status)
	}

	dashboard, _ := env.payroll.EmployeeDashboard(employee.ID)
	if dashboard.DaysWorked != 0 {
		t.Errorf("days worked = %d, want 0 after flip to absent", dashboard.DaysWorked)
	}
	assertDecimal(t, "final salary", dashboard.FinalSalary, "0")
}

func TestMarkAttendanceGuards(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")
	otherManager := env.newManager(t, "mgr2")
	employee := env.newEmployee(t, "worker", manager.ID, "500")

	tomorrow := model.Today().AddDate(0, 0, 1)
	if _, err := env.payroll.MarkAttendance(manager.ID, employee.ID, tomorrow, model.AttendancePresent); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("future date: err = %v, want validation error", err)
	}

	if _, err := env.payroll.MarkAttendance(otherManager.ID, employee.ID, model.Today(), model.AttendancePresent); !errors.Is(err, apperr.ErrAuthorization) {
		t.Errorf("foreign manager: err = %v, want authorization error", err)
	}

	if _, err := env.payroll.MarkAttendance(manager.ID, employee.ID, model.Today(), model.AttendanceStatus("late")); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("bad status: err = %v, want validation error", err)
	}
}

func TestCreateDeduction(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")
	employee := env.newEmployee(t, "worker", manager.ID, "500")
	today := model.Today()
	month := today.Format("2006-01")

	if _, err := env.payroll.MarkAttendance(manager.ID, employee.ID, today, model.AttendancePresent); err != nil {
		t.Fatalf("MarkAttendance: %v", err)
	}
	if _, err := env.payroll.CreateDeduction(manager.ID, employee.ID, month, dec("150"), "advance repayment"); err != nil {
		t.Fatalf("CreateDeduction: %v", err)
	}

	dashboard, err := env.payroll.EmployeeDashboard(employee.ID)
	if err != nil {
		t.Fatalf("EmployeeDashboard: %v", err)
	}
	assertDecimal(t, "total deductions", dashboard.TotalDeductions, "150")
	// 1 day * 500 - 150
	assertDecimal(t, "final salary", dashboard.FinalSalary, "350")
	if len(dashboard.Deductions) != 1 || dashboard.Deductions[0].Reason != "advance repayment" {
		t.Errorf("deductions = %+v, want one advance repayment entry", dashboard.Deductions)
	}

	// Deduction notifies the employee; attendance did too
	feed, _ := env.notifications.List(employee.UserID)
	if len(feed) != 2 {
		t.Errorf("employee notifications = %d, want 2", len(feed))
	}
}

func TestCreateDeductionValidation(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")
	employee := env.newEmployee(t, "worker", manager.ID, "500")

	if _, err := env.payroll.CreateDeduction(manager.ID, employee.ID, "August 2026", dec("100"), "x"); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("bad month format: err = %v, want validation error", err)
	}
	if _, err := env.payroll.CreateDeduction(manager.ID, employee.ID, "2026-08", dec("0"), "x"); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("zero amount: err = %v, want validation error", err)
	}
	if _, err := env.payroll.CreateDeduction(manager.ID, employee.ID, "2026-08", dec("100"), ""); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("empty reason: err = %v, want validation error", err)
	}
}

func TestSalaryRecomputeIsLedgerDriven(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")
	employee := env.newEmployee(t, "worker", manager.ID, "400")
	today := model.Today()
	month := today.Format("2006-01")

	if _, err := env.payroll.MarkAttendance(manager.ID, employee.ID, today, model.AttendancePresent); err != nil {
		t.Fatalf("MarkAttendance: %v", err)
	}
	if _, err := env.payroll.CreateDeduction(manager.ID, employee.ID, month, dec("50"), "uniform"); err != nil {
		t.Fatalf("CreateDeduction: %v", err)
	}
	if _, err := env.payroll.CreateDeduction(manager.ID, employee.ID, month, dec("30"), "tools"); err != nil {
		t.Fatalf("CreateDeduction: %v", err)
	}

	dashboard, _ := env.payroll.EmployeeDashboard(employee.ID)
	assertDecimal(t, "total deductions", dashboard.TotalDeductions, "80")
	assertDecimal(t, "final salary", dashboard.FinalSalary, "320")
}

func TestMonthlyAttendanceWindow(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")
	employee := env.newEmployee(t, "worker", manager.ID, "500")

	// A row well outside the queried month must not show up
	past := time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
	if _, err := env.payroll.MarkAttendance(manager.ID, employee.ID, past, model.AttendancePresent); err != nil {
		t.Fatalf("MarkAttendance: %v", err)
	}
	if _, err := env.payroll.MarkAttendance(manager.ID, employee.ID, model.Today(), model.AttendancePresent); err != nil {
		t.Fatalf("MarkAttendance: %v", err)
	}

	january, err := env.payroll.MonthlyAttendance(employee.ID, 2020, time.January)
	if err != nil {
		t.Fatalf("MonthlyAttendance: %v", err)
	}
	if len(january) != 1 {
		t.Errorf("january rows = %d, want 1", len(january))
	}
}
