package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-dairy-ops/internal/handler"
	"go-dairy-ops/internal/middleware"
	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/repository"
	"go-dairy-ops/internal/service"
	"go-dairy-ops/internal/ws"
	"go-dairy-ops/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{}, &model.Location{}, &model.Seller{}, &model.Manager{}, &model.Employee{},
		&model.MilkRequest{}, &model.MilkReceipt{}, &model.BorrowLendRecord{},
		&model.Sale{}, &model.DailyTotal{},
		&model.DailyOperation{}, &model.FeedRecord{}, &model.ExpenseRecord{}, &model.MedicineRecord{}, &model.MilkDistributionDay{},
		&model.Attendance{}, &model.Salary{}, &model.Deduction{},
		&model.Notification{},
	)

	// 3. Seed admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	sellerRepo := repository.NewSellerRepo(db)
	managerRepo := repository.NewManagerRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	requestRepo := repository.NewMilkRequestRepo(db)
	receiptRepo := repository.NewMilkReceiptRepo(db)
	borrowLendRepo := repository.NewBorrowLendRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	dailyTotalRepo := repository.NewDailyTotalRepo(db)
	opsRepo := repository.NewOperationsRepo(db)
	attendanceRepo := repository.NewAttendanceRepo(db)
	salaryRepo := repository.NewSalaryRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)

	notificationService := service.NewNotificationService(notificationRepo, wsHub)
	authService := service.NewAuthService(userRepo, sellerRepo, managerRepo, employeeRepo)
	transferService := service.NewTransferService(db, requestRepo, receiptRepo, borrowLendRepo, sellerRepo, notificationService)
	distributionService := service.NewDistributionService(db, receiptRepo, sellerRepo, managerRepo, opsRepo, notificationService)
	summaryService := service.NewSummaryService(receiptRepo, saleRepo, dailyTotalRepo, borrowLendRepo, sellerRepo, locationRepo, employeeRepo, opsRepo)
	salesService := service.NewSalesService(saleRepo, dailyTotalRepo, sellerRepo)
	operationsService := service.NewOperationsService(opsRepo, managerRepo)
	payrollService := service.NewPayrollService(db, attendanceRepo, salaryRepo, employeeRepo, notificationService)
	masterService := service.NewMasterService(db, userRepo, locationRepo, sellerRepo, managerRepo, employeeRepo)

	authHandler := handler.NewAuthHandler(authService)
	transferHandler := handler.NewTransferHandler(transferService)
	distributionHandler := handler.NewDistributionHandler(distributionService)
	summaryHandler := handler.NewSummaryHandler(summaryService)
	salesHandler := handler.NewSalesHandler(salesService)
	operationsHandler := handler.NewOperationsHandler(operationsService)
	payrollHandler := handler.NewPayrollHandler(payrollService)
	masterHandler := handler.NewMasterHandler(masterService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Dairy Ops v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(authService))

	auth.Post("/validate-token", middleware.RequireAuth(authService), authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(authService), authHandler.Heartbeat)
	auth.Post("/reset-password", middleware.RequireAuth(authService), middleware.RequireRole(model.RoleAdmin), authHandler.ResetPassword)

	// Inter-seller milk requests
	requests := protected.Group("/milk-requests")
	requests.Post("", middleware.RequireRole(model.RoleSeller), transferHandler.Create)
	requests.Get("/incoming", middleware.RequireRole(model.RoleSeller), transferHandler.ListIncoming)
	requests.Get("/mine", middleware.RequireRole(model.RoleSeller), transferHandler.ListMine)
	requests.Get("/borrow-lend", middleware.RequireRole(model.RoleSeller), transferHandler.BorrowLendHistory)
	requests.Post("/:id/accept", middleware.RequireRole(model.RoleSeller), transferHandler.Accept)
	requests.Post("/:id/received", middleware.RequireRole(model.RoleSeller), transferHandler.MarkReceived)
	requests.Post("/:id/reject", middleware.RequireRole(model.RoleSeller, model.RoleAdmin), transferHandler.Reject)

	// Manager-to-seller distributions
	distributions := protected.Group("/distributions")
	distributions.Post("", middleware.RequireRole(model.RoleManager), distributionHandler.Distribute)
	distributions.Get("/pending", middleware.RequireRole(model.RoleManager), distributionHandler.ListManagerPending)
	distributions.Get("/outstanding", middleware.RequireRole(model.RoleSeller), distributionHandler.ListOutstanding)
	distributions.Put("/:id/status", middleware.RequireRole(model.RoleSeller), distributionHandler.UpdateStatus)

	// Summaries and dashboards
	summary := protected.Group("/summary")
	summary.Get("/daily", middleware.RequireRole(model.RoleSeller), summaryHandler.DailySummary)
	summary.Get("/sellers/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager), summaryHandler.SellerSummary)
	summary.Get("/locations", middleware.RequireRole(model.RoleAdmin, model.RoleManager), summaryHandler.LocationStatistics)
	summary.Get("/manager-dashboard", middleware.RequireRole(model.RoleManager), summaryHandler.ManagerDashboard)
	summary.Get("/sales-trend", middleware.RequireRole(model.RoleAdmin, model.RoleManager), summaryHandler.SalesTrend)

	// Seller sales entry
	sales := protected.Group("/sales", middleware.RequireRole(model.RoleSeller))
	sales.Post("", salesHandler.RecordSale)
	sales.Post("/daily-totals", salesHandler.RecordDailyTotals)

	// Manager day sheet
	operations := protected.Group("/operations", middleware.RequireRole(model.RoleManager))
	operations.Post("/feed", operationsHandler.SaveFeed)
	operations.Post("/expenses", operationsHandler.SaveExpense)
	operations.Post("/medicine", operationsHandler.SaveMedicine)
	operations.Post("/leftover", operationsHandler.UpdateLeftover)
	operations.Get("/daily", operationsHandler.DailyData)

	// Payroll
	payroll := protected.Group("/payroll")
	payroll.Post("/attendance", middleware.RequireRole(model.RoleManager), payrollHandler.MarkAttendance)
	payroll.Post("/deductions", middleware.RequireRole(model.RoleManager), payrollHandler.CreateDeduction)
	payroll.Get("/attendance/:employeeId", middleware.RequireRole(model.RoleManager, model.RoleAdmin), payrollHandler.MonthlyAttendance)
	payroll.Get("/dashboard", middleware.RequireRole(model.RoleEmployee), payrollHandler.EmployeeDashboard)

	// Admin provisioning
	master := protected.Group("/master", middleware.RequireRole(model.RoleAdmin))
	master.Post("/locations", masterHandler.CreateLocation)
	master.Get("/locations", masterHandler.ListLocations)
	master.Post("/sellers", masterHandler.CreateSeller)
	master.Get("/sellers", masterHandler.ListSellers)
	master.Put("/sellers/:id/active", masterHandler.SetSellerActive)
	master.Post("/managers", masterHandler.CreateManager)
	master.Get("/managers", masterHandler.ListManagers)
	master.Delete("/managers/:id", masterHandler.DeleteManager)
	master.Post("/employees", masterHandler.CreateEmployee)
	master.Get("/employees", masterHandler.ListEmployees)

	// Notifications
	notifications := protected.Group("/notifications")
	notifications.Get("", notificationHandler.List)
	notifications.Put("/:id/read", notificationHandler.MarkRead)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin account if no admin exists yet
func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:    email,
		FullName: "Administrator",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("Warning: failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %s", email)
}
