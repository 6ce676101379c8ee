package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Salary is an employee's running month tally: base salary per day worked
// minus deductions. Recomputed after every attendance or deduction change.
type Salary struct {
	BaseModel
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_salary_emp_month" json:"employee_id"`
	Employee        *Employee       `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Month           string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_salary_emp_month" json:"month"` // YYYY-MM
	BaseSalary      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_salary"`
	DaysWorked      int             `gorm:"default:0" json:"days_worked"`
	TotalDeductions decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total_deductions"`
	FinalSalary     decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"final_salary"`

	Deductions []Deduction `gorm:"foreignKey:SalaryID" json:"deductions,omitempty"`
}

func (Salary) TableName() string {
	return "salaries"
}

// Deduction is one payroll deduction against a monthly salary
type Deduction struct {
	BaseModel
	SalaryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"salary_id"`
	Amount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount" validate:"dgt0"`
	Reason   string          `gorm:"type:text;not null" json:"reason" validate:"required"`
}

func (Deduction) TableName() string {
	return "deductions"
}
