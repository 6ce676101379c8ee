package repository

import (
	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(tx *gorm.DB, employee *model.Employee) error
	FindByID(id uuid.UUID) (*model.Employee, error)
	FindByUserID(userID uuid.UUID) (*model.Employee, error)
	FindByCode(code string) (*model.Employee, error)
	FindActiveByManager(managerID uuid.UUID) ([]model.Employee, error)
	CountActiveByManager(managerID uuid.UUID) (int64, error)
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

// Create assigns the next EMPNNN code before inserting
func (r *employeeRepo) Create(tx *gorm.DB, employee *model.Employee) error {
	if tx == nil {
		tx = r.db
	}
	if employee.Code == "" {
		employee.Code = nextCode(tx, &model.Employee{}, "EMP", 3)
	}
	return tx.Create(employee).Error
}

func (r *employeeRepo) FindByID(id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.Preload("Manager").First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) FindByUserID(userID uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.First(&employee, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) FindByCode(code string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.First(&employee, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) FindActiveByManager(managerID uuid.UUID) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Where("manager_id = ? AND is_active = ?", managerID, true).Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) CountActiveByManager(managerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Employee{}).Where("manager_id = ? AND is_active = ?", managerID, true).Count(&count).Error
	return count, err
}
