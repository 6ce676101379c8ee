package repository

import (
	"errors"

	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SalaryRepository interface {
	GetOrCreate(employee *model.Employee, month string) (*model.Salary, error)
	Save(salary *model.Salary) error
	CreateDeduction(deduction *model.Deduction) error
	SumDeductions(salaryID uuid.UUID) (decimal.Decimal, error)
	ListDeductions(salaryID uuid.UUID) ([]model.Deduction, error)
}

type salaryRepo struct {
	db *gorm.DB
}

func NewSalaryRepo(db *gorm.DB) SalaryRepository {
	return &salaryRepo{db}
}

func (r *salaryRepo) GetOrCreate(employee *model.Employee, month string) (*model.Salary, error) {
	var salary model.Salary
	err := r.db.Where("employee_id = ? AND month = ?", employee.ID, month).First(&salary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		salary = model.Salary{
			EmployeeID: employee.ID,
			Month:      month,
			BaseSalary: employee.BaseSalary,
		}
		if err := r.db.Create(&salary).Error; err != nil {
			return nil, err
		}
		return &salary, nil
	}
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

func (r *salaryRepo) Save(salary *model.Salary) error {
	return r.db.Save(salary).Error
}

func (r *salaryRepo) CreateDeduction(deduction *model.Deduction) error {
	return r.db.Create(deduction).Error
}

func (r *salaryRepo) SumDeductions(salaryID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.Deduction{}).
		Where("salary_id = ?", salaryID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *salaryRepo) ListDeductions(salaryID uuid.UUID) ([]model.Deduction, error) {
	var deductions []model.Deduction
	err := r.db.Where("salary_id = ?", salaryID).Order("created_at DESC").Find(&deductions).Error
	return deductions, err
}
