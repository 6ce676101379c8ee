package service

import (
	"testing"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/repository"
	"go-dairy-ops/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack over an in-memory database
type testEnv struct {
	db *gorm.DB

	userRepo       repository.UserRepository
	locationRepo   repository.LocationRepository
	sellerRepo     repository.SellerRepository
	managerRepo    repository.ManagerRepository
	employeeRepo   repository.EmployeeRepository
	requestRepo    repository.MilkRequestRepository
	receiptRepo    repository.MilkReceiptRepository
	borrowLendRepo repository.BorrowLendRepository
	saleRepo       repository.SaleRepository
	dailyTotalRepo repository.DailyTotalRepository
	opsRepo        repository.OperationsRepository
	attendanceRepo repository.AttendanceRepository
	salaryRepo     repository.SalaryRepository

	notifications NotificationService
	auth          AuthService
	transfers     TransferService
	distributions DistributionService
	summaries     SummaryService
	sales         SalesService
	operations    OperationsService
	payroll       PayrollService
	master        MasterService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// A single connection keeps every session on the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{}, &model.Location{}, &model.Seller{}, &model.Manager{}, &model.Employee{},
		&model.MilkRequest{}, &model.MilkReceipt{}, &model.BorrowLendRecord{},
		&model.Sale{}, &model.DailyTotal{},
		&model.DailyOperation{}, &model.FeedRecord{}, &model.ExpenseRecord{}, &model.MedicineRecord{}, &model.MilkDistributionDay{},
		&model.Attendance{}, &model.Salary{}, &model.Deduction{},
		&model.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	env := &testEnv{
		db:             db,
		userRepo:       repository.NewUserRepo(db),
		locationRepo:   repository.NewLocationRepo(db),
		sellerRepo:     repository.NewSellerRepo(db),
		managerRepo:    repository.NewManagerRepo(db),
		employeeRepo:   repository.NewEmployeeRepo(db),
		requestRepo:    repository.NewMilkRequestRepo(db),
		receiptRepo:    repository.NewMilkReceiptRepo(db),
		borrowLendRepo: repository.NewBorrowLendRepo(db),
		saleRepo:       repository.NewSaleRepo(db),
		dailyTotalRepo: repository.NewDailyTotalRepo(db),
		opsRepo:        repository.NewOperationsRepo(db),
		attendanceRepo: repository.NewAttendanceRepo(db),
		salaryRepo:     repository.NewSalaryRepo(db),
	}

	env.notifications = NewNotificationService(repository.NewNotificationRepo(db), hub)
	env.auth = NewAuthService(env.userRepo, env.sellerRepo, env.managerRepo, env.employeeRepo)
	env.transfers = NewTransferService(db, env.requestRepo, env.receiptRepo, env.borrowLendRepo, env.sellerRepo, env.notifications)
	env.distributions = NewDistributionService(db, env.receiptRepo, env.sellerRepo, env.managerRepo, env.opsRepo, env.notifications)
	env.summaries = NewSummaryService(env.receiptRepo, env.saleRepo, env.dailyTotalRepo, env.borrowLendRepo, env.sellerRepo, env.locationRepo, env.employeeRepo, env.opsRepo)
	env.sales = NewSalesService(env.saleRepo, env.dailyTotalRepo, env.sellerRepo)
	env.operations = NewOperationsService(env.opsRepo, env.managerRepo)
	env.payroll = NewPayrollService(db, env.attendanceRepo, env.salaryRepo, env.employeeRepo, env.notifications)
	env.master = NewMasterService(db, env.userRepo, env.locationRepo, env.sellerRepo, env.managerRepo, env.employeeRepo)

	return env
}

func (e *testEnv) newLocation(t *testing.T, name string) *model.Location {
	t.Helper()
	location := &model.Location{Name: name, Address: name + " street"}
	if err := e.locationRepo.Create(location); err != nil {
		t.Fatalf("create location: %v", err)
	}
	return location
}

func (e *testEnv) newSeller(t *testing.T, name string, locationID uuid.UUID) *model.Seller {
	t.Helper()
	user := &model.User{
		Email:    name + "@test.local",
		FullName: name,
		Role:     model.RoleSeller,
		IsActive: true,
	}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := e.userRepo.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	seller := &model.Seller{Name: name, LocationID: locationID, UserID: user.ID, IsActive: true}
	if err := e.sellerRepo.Create(nil, seller); err != nil {
		t.Fatalf("create seller: %v", err)
	}
	return seller
}

func (e *testEnv) newManager(t *testing.T, name string) *model.Manager {
	t.Helper()
	user := &model.User{
		Email:    name + "@test.local",
		FullName: name,
		Role:     model.RoleManager,
		IsActive: true,
	}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := e.userRepo.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	manager := &model.Manager{Name: name, UserID: user.ID}
	if err := e.managerRepo.Create(nil, manager); err != nil {
		t.Fatalf("create manager: %v", err)
	}
	return manager
}

func (e *testEnv) newEmployee(t *testing.T, name string, managerID uuid.UUID, baseSalary string) *model.Employee {
	t.Helper()
	user := &model.User{
		Email:    name + "@test.local",
		FullName: name,
		Role:     model.RoleEmployee,
		IsActive: true,
	}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := e.userRepo.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	employee := &model.Employee{
		Name:       name,
		BaseSalary: dec(baseSalary),
		UserID:     user.ID,
		ManagerID:  managerID,
		IsActive:   true,
	}
	if err := e.employeeRepo.Create(nil, employee); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	return employee
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", name, got.String(), want)
	}
}
