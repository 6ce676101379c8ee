package service

import (
	"errors"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/repository"
	"go-dairy-ops/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MasterService is the admin's provisioning surface: locations and the three
// role profiles. Each profile creation makes the login user and the profile
// row in one transaction so a half-created account can never log in.
type MasterService interface {
	CreateLocation(name, address string) (*model.Location, error)
	ListLocations() ([]model.Location, error)

	CreateSeller(input CreateSellerInput) (*model.Seller, error)
	ListSellers() ([]model.Seller, error)
	SetSellerActive(sellerID uuid.UUID, active bool) (*model.Seller, error)

	CreateManager(input CreateManagerInput) (*model.Manager, error)
	ListManagers() ([]model.Manager, error)
	DeleteManager(managerID uuid.UUID) error

	CreateEmployee(input CreateEmployeeInput) (*model.Employee, error)
	ListEmployees(managerID uuid.UUID) ([]model.Employee, error)
}

type CreateSellerInput struct {
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Password    string    `json:"password" validate:"required,min=6"`
	PhoneNumber string    `json:"phone_number"`
	LocationID  uuid.UUID `json:"location_id" validate:"uuid_required"`
}

type CreateManagerInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phone_number"`
}

type CreateEmployeeInput struct {
	Name        string          `json:"name" validate:"required"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=6"`
	PhoneNumber string          `json:"phone_number"`
	BaseSalary  decimal.Decimal `json:"base_salary" validate:"dgt0"`
	ManagerID   uuid.UUID       `json:"manager_id" validate:"uuid_required"`
}

type masterService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
	sellerRepo   repository.SellerRepository
	managerRepo  repository.ManagerRepository
	employeeRepo repository.EmployeeRepository
}

func NewMasterService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	locationRepo repository.LocationRepository,
	sellerRepo repository.SellerRepository,
	managerRepo repository.ManagerRepository,
	employeeRepo repository.EmployeeRepository,
) MasterService {
	return &masterService{
		db:           db,
		userRepo:     userRepo,
		locationRepo: locationRepo,
		sellerRepo:   sellerRepo,
		managerRepo:  managerRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *masterService) CreateLocation(name, address string) (*model.Location, error) {
	if name == "" {
		return nil, apperr.Validation("location name is required")
	}
	location := &model.Location{Name: name, Address: address}
	if err := s.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *masterService) ListLocations() ([]model.Location, error) {
	return s.locationRepo.FindAll()
}

// newLoginUser builds the user row for a profile, rejecting duplicate emails
func (s *masterService) newLoginUser(name, email, password, phone, role string) (*model.User, error) {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, apperr.Conflict("email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{
		Email:       email,
		FullName:    name,
		PhoneNumber: phone,
		Role:        role,
		IsActive:    true,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *masterService) CreateSeller(input CreateSellerInput) (*model.Seller, error) {
	if _, err := s.locationRepo.FindByID(input.LocationID); err != nil {
		return nil, apperr.NotFound("location not found")
	}

	user, err := s.newLoginUser(input.Name, input.Email, input.Password, input.PhoneNumber, model.RoleSeller)
	if err != nil {
		return nil, err
	}

	seller := &model.Seller{
		Name:       input.Name,
		LocationID: input.LocationID,
		IsActive:   true,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		seller.UserID = user.ID
		return s.sellerRepo.Create(tx, seller)
	})
	if err != nil {
		return nil, err
	}

	seller.User = user
	return seller, nil
}

func (s *masterService) ListSellers() ([]model.Seller, error) {
	return s.sellerRepo.FindActive()
}

func (s *masterService) SetSellerActive(sellerID uuid.UUID, active bool) (*model.Seller, error) {
	seller, err := s.sellerRepo.FindByID(sellerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("seller not found")
	} else if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Seller{}).Where("id = ?", sellerID).Update("is_active", active).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("id = ?", seller.UserID).Update("is_active", active).Error
	})
	if err != nil {
		return nil, err
	}

	seller.IsActive = active
	return seller, nil
}

func (s *masterService) CreateManager(input CreateManagerInput) (*model.Manager, error) {
	user, err := s.newLoginUser(input.Name, input.Email, input.Password, input.PhoneNumber, model.RoleManager)
	if err != nil {
		return nil, err
	}

	manager := &model.Manager{Name: input.Name}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		manager.UserID = user.ID
		return s.managerRepo.Create(tx, manager)
	})
	if err != nil {
		return nil, err
	}

	manager.User = user
	return manager, nil
}

func (s *masterService) ListManagers() ([]model.Manager, error) {
	return s.managerRepo.FindAll()
}

// DeleteManager removes the profile and its login user. Day sheets and
// records the manager created stay in the ledgers.
func (s *masterService) DeleteManager(managerID uuid.UUID) error {
	manager, err := s.managerRepo.FindByID(managerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("manager not found")
	} else if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.managerRepo.Delete(tx, managerID); err != nil {
			return err
		}
		return tx.Delete(&model.User{}, "id = ?", manager.UserID).Error
	})
}

func (s *masterService) CreateEmployee(input CreateEmployeeInput) (*model.Employee, error) {
	if !input.BaseSalary.IsPositive() {
		return nil, apperr.Validation("base salary must be greater than zero")
	}
	if _, err := s.managerRepo.FindByID(input.ManagerID); err != nil {
		return nil, apperr.NotFound("manager not found")
	}

	user, err := s.newLoginUser(input.Name, input.Email, input.Password, input.PhoneNumber, model.RoleEmployee)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		Name:       input.Name,
		BaseSalary: input.BaseSalary,
		ManagerID:  input.ManagerID,
		IsActive:   true,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		employee.UserID = user.ID
		return s.employeeRepo.Create(tx, employee)
	})
	if err != nil {
		return nil, err
	}

	employee.User = user
	return employee, nil
}

func (s *masterService) ListEmployees(managerID uuid.UUID) ([]model.Employee, error) {
	return s.employeeRepo.FindActiveByManager(managerID)
}
