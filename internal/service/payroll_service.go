package service

import (
	"errors"
	"fmt"
	"time"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/repository"
	"go-dairy-ops/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayrollService maintains attendance and the derived monthly salary:
// final = base per day * days present - deductions. The salary row is
// recomputed whenever attendance or deductions change.
type PayrollService interface {
	MarkAttendance(managerID, employeeID uuid.UUID, date time.Time, status model.AttendanceStatus) (*model.Attendance, error)
	CreateDeduction(managerID, employeeID uuid.UUID, month string, amount decimal.Decimal, reason string) (*model.Deduction, error)
	MonthlyAttendance(employeeID uuid.UUID, year int, month time.Month) ([]model.Attendance, error)
	EmployeeDashboard(employeeID uuid.UUID) (*EmployeeDashboard, error)
}

// EmployeeDashboard is the employee's view of the current month
type EmployeeDashboard struct {
	EmployeeCode    string            `json:"employee_code"`
	EmployeeName    string            `json:"employee_name"`
	Month           string            `json:"month"`
	DaysWorked      int               `json:"days_worked"`
	BaseSalary      decimal.Decimal   `json:"base_salary"`
	TotalDeductions decimal.Decimal   `json:"total_deductions"`
	FinalSalary     decimal.Decimal   `json:"final_salary"`
	Deductions      []model.Deduction `json:"deductions"`
}

type payrollService struct {
	db             *gorm.DB
	attendanceRepo repository.AttendanceRepository
	salaryRepo     repository.SalaryRepository
	employeeRepo   repository.EmployeeRepository
	notifications  NotificationService
}

func NewPayrollService(
	db *gorm.DB,
	attendanceRepo repository.AttendanceRepository,
	salaryRepo repository.SalaryRepository,
	employeeRepo repository.EmployeeRepository,
	notifications NotificationService,
) PayrollService {
	return &payrollService{
		db:             db,
		attendanceRepo: attendanceRepo,
		salaryRepo:     salaryRepo,
		employeeRepo:   employeeRepo,
		notifications:  notifications,
	}
}

func monthKey(date time.Time) string {
	return date.Format("2006-01")
}

func (s *payrollService) MarkAttendance(managerID, employeeID uuid.UUID, date time.Time, status model.AttendanceStatus) (*model.Attendance, error) {
	if status != model.AttendancePresent && status != model.AttendanceAbsent {
		return nil, apperr.Validation("status must be present or absent")
	}
	if date.After(model.Today()) {
		return nil, apperr.Validation("cannot mark attendance for a future date")
	}

	employee, err := s.employeeRepo.FindByID(employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("employee not found")
	} else if err != nil {
		return nil, err
	}
	if employee.ManagerID != managerID {
		return nil, apperr.Authorization("employee is not assigned to you")
	}

	attendance, changed, err := s.attendanceRepo.Upsert(employeeID, date, status)
	if err != nil {
		return nil, err
	}

	if changed {
		if err := s.recomputeSalary(employee, monthKey(date)); err != nil {
			return nil, err
		}
		message := fmt.Sprintf("Your attendance for %s has been marked as %s.",
			model.FormatDate(date), status)
		if err := s.notifications.Notify(nil, employee.UserID, message); err != nil {
			return nil, err
		}
	}

	return attendance, nil
}

func (s *payrollService) CreateDeduction(managerID, employeeID uuid.UUID, month string, amount decimal.Decimal, reason string) (*model.Deduction, error) {
	if !amount.IsPositive() {
		return nil, apperr.Validation("amount must be greater than zero")
	}
	if reason == "" {
		return nil, apperr.Validation("reason is required")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, apperr.Validation("month must be in YYYY-MM format")
	}

	employee, err := s.employeeRepo.FindByID(employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("employee not found")
	} else if err != nil {
		return nil, err
	}
	if employee.ManagerID != managerID {
		return nil, apperr.Authorization("employee is not assigned to you")
	}

	salary, err := s.salaryRepo.GetOrCreate(employee, month)
	if err != nil {
		return nil, err
	}

	deduction := &model.Deduction{
		SalaryID: salary.ID,
		Amount:   amount,
		Reason:   reason,
	}
	if err := s.salaryRepo.CreateDeduction(deduction); err != nil {
		return nil, err
	}

	if err := s.recomputeSalary(employee, month); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("A deduction of %s has been applied to your %s salary. Reason: %s",
		amount.StringFixed(2), month, reason)
	if err := s.notifications.Notify(nil, employee.UserID, message); err != nil {
		return nil, err
	}

	return deduction, nil
}

func (s *payrollService) MonthlyAttendance(employeeID uuid.UUID, year int, month time.Month) ([]model.Attendance, error) {
	if _, err := s.employeeRepo.FindByID(employeeID); err != nil {
		return nil, apperr.NotFound("employee not found")
	}
	return s.attendanceRepo.ListByEmployeeMonth(employeeID, year, month)
}

func (s *payrollService) EmployeeDashboard(employeeID uuid.UUID) (*EmployeeDashboard, error) {
	employee, err := s.employeeRepo.FindByID(employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("employee not found")
	} else if err != nil {
		return nil, err
	}

	month := monthKey(model.Today())
	salary, err := s.salaryRepo.GetOrCreate(employee, month)
	if err != nil {
		return nil, err
	}
	deductions, err := s.salaryRepo.ListDeductions(salary.ID)
	if err != nil {
		return nil, err
	}

	return &EmployeeDashboard{
		EmployeeCode:    employee.Code,
		EmployeeName:    employee.Name,
		Month:           month,
		DaysWorked:      salary.DaysWorked,
		BaseSalary:      salary.BaseSalary,
		TotalDeductions: salary.TotalDeductions,
		FinalSalary:     salary.FinalSalary,
		Deductions:      deductions,
	}, nil
}

// recomputeSalary rebuilds the month's figures from the attendance and
// deduction ledgers, never from the previous salary row
func (s *payrollService) recomputeSalary(employee *model.Employee, month string) error {
	salary, err := s.salaryRepo.GetOrCreate(employee, month)
	if err != nil {
		return err
	}

	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return err
	}
	daysPresent, err := s.attendanceRepo.CountPresent(employee.ID, parsed.Year(), parsed.Month())
	if err != nil {
		return err
	}
	deductions, err := s.salaryRepo.SumDeductions(salary.ID)
	if err != nil {
		return err
	}

	salary.BaseSalary = employee.BaseSalary
	salary.DaysWorked = int(daysPresent)
	salary.TotalDeductions = deductions
	salary.FinalSalary = employee.BaseSalary.Mul(decimal.NewFromInt(daysPresent)).Sub(deductions)

	return s.salaryRepo.Save(salary)
}
