package service

import (
	"errors"
	"testing"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/pkg/apperr"

	"gorm.io/gorm"
)

func TestCreateSellerProvisionsLogin(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")

	seller, err := env.master.CreateSeller(CreateSellerInput{
		Name:       "alice",
		Email:      "alice@dairy.local",
		Password:   "secret123",
		LocationID: location.ID,
	})
	if err != nil {
		t.Fatalf("CreateSeller: %v", err)
	}

	user, err := env.userRepo.FindByEmail("alice@dairy.local")
	if err != nil {
		t.Fatalf("login user missing: %v", err)
	}
	if user.Role != model.RoleSeller {
		t.Errorf("role = %s, want SELLER", user.Role)
	}
	if !user.CheckPassword("secret123") {
		t.Error("password not set")
	}
	if seller.UserID != user.ID {
		t.Error("seller not linked to its user")
	}
}

func TestCreateSellerDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")

	input := CreateSellerInput{
		Name:       "alice",
		Email:      "alice@dairy.local",
		Password:   "secret123",
		LocationID: location.ID,
	}
	if _, err := env.master.CreateSeller(input); err != nil {
		t.Fatalf("CreateSeller: %v", err)
	}
	if _, err := env.master.CreateSeller(input); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate email: err = %v, want conflict", err)
	}
}

func TestManagerAndEmployeeCodes(t *testing.T) {
	env := newTestEnv(t)

	m1, err := env.master.CreateManager(CreateManagerInput{Name: "one", Email: "one@dairy.local", Password: "secret123"})
	if err != nil {
		t.Fatalf("CreateManager: %v", err)
	}
	m2, err := env.master.CreateManager(CreateManagerInput{Name: "two", Email: "two@dairy.local", Password: "secret123"})
	if err != nil {
		t.Fatalf("CreateManager: %v", err)
	}
	if m1.Code != "manager001" || m2.Code != "manager002" {
		t.Errorf("manager codes = %s, %s, want manager001, manager002", m1.Code, m2.Code)
	}

	e1, err := env.master.CreateEmployee(CreateEmployeeInput{
		Name: "w1", Email: "w1@dairy.local", Password: "secret123",
		BaseSalary: dec("500"), ManagerID: m1.ID,
	})
	if err != nil {
		t.Fatalf("CreateEmployee: %v", err)
	}
	e2, err := env.master.CreateEmployee(CreateEmployeeInput{
		Name: "w2", Email: "w2@dairy.local", Password: "secret123",
		BaseSalary: dec("600"), ManagerID: m2.ID,
	})
	if err != nil {
		t.Fatalf("CreateEmployee: %v", err)
	}
	if e1.Code != "EMP001" || e2.Code != "EMP002" {
		t.Errorf("employee codes = %s, %s, want EMP001, EMP002", e1.Code, e2.Code)
	}
}

func TestDeleteManagerRemovesLogin(t *testing.T) {
	env := newTestEnv(t)

	manager, err := env.master.CreateManager(CreateManagerInput{Name: "one", Email: "one@dairy.local", Password: "secret123"})
	if err != nil {
		t.Fatalf("CreateManager: %v", err)
	}

	if err := env.master.DeleteManager(manager.ID); err != nil {
		t.Fatalf("DeleteManager: %v", err)
	}

	if _, err := env.managerRepo.FindByID(manager.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("manager still findable: err = %v", err)
	}
	if _, err := env.userRepo.FindByEmail("one@dairy.local"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("login user still findable: err = %v", err)
	}
}

func TestSetSellerActiveTogglesLoginToo(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)

	if _, err := env.master.SetSellerActive(seller.ID, false); err != nil {
		t.Fatalf("SetSellerActive: %v", err)
	}

	stored, err := env.sellerRepo.FindByID(seller.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.IsActive {
		t.Error("seller still active")
	}
	user, _ := env.userRepo.FindByID(seller.UserID)
	if user.IsActive {
		t.Error("login user still active")
	}

	// Deactivated sellers drop out of the request fan-out pool
	active, err := env.sellerRepo.FindActive()
	if err != nil {
		t.Fatalf("FindActive: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active sellers = %d, want 0", len(active))
	}
}

func TestCreateEmployeeRequiresKnownManager(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")

	if _, err := env.master.CreateEmployee(CreateEmployeeInput{
		Name: "w1", Email: "w1@dairy.local", Password: "secret123",
		BaseSalary: dec("0"), ManagerID: manager.ID,
	}); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("zero salary: err = %v, want validation error", err)
	}
}
