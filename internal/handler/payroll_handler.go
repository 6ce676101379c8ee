package handler

import (
	"strconv"
	"time"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollHandler struct {
	service service.PayrollService
}

func NewPayrollHandler(s service.PayrollService) *PayrollHandler {
	return &PayrollHandler{service: s}
}

type AttendanceBody struct {
	EmployeeID uuid.UUID              `json:"employee_id"`
	Date       string                 `json:"date"`
	Status     model.AttendanceStatus `json:"status"`
}

// MarkAttendance upserts an employee's status for a day
// POST /api/v1/payroll/attendance
func (h *PayrollHandler) MarkAttendance(c *fiber.Ctx) error {
	managerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	var body AttendanceBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	date, err := model.ParseDate(body.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	attendance, err := h.service.MarkAttendance(managerID, body.EmployeeID, date, body.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Attendance marked", "data": attendance})
}

type DeductionBody struct {
	EmployeeID uuid.UUID       `json:"employee_id"`
	Month      string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
}

// CreateDeduction applies a deduction to an employee's monthly salary
// POST /api/v1/payroll/deductions
func (h *PayrollHandler) CreateDeduction(c *fiber.Ctx) error {
	managerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	var body DeductionBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	deduction, err := h.service.CreateDeduction(managerID, body.EmployeeID, body.Month, body.Amount, body.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Deduction recorded", "data": deduction})
}

// MonthlyAttendance lists an employee's attendance for a month
// GET /api/v1/payroll/attendance/:employeeId?year=2026&month=8
func (h *PayrollHandler) MonthlyAttendance(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employeeId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	now := model.Today()
	year, _ := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	monthNum, _ := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if monthNum < 1 || monthNum > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "month must be between 1 and 12"})
	}

	attendances, err := h.service.MonthlyAttendance(employeeID, year, time.Month(monthNum))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(attendances)
}

// EmployeeDashboard returns the calling employee's current month figures
// GET /api/v1/payroll/dashboard
func (h *PayrollHandler) EmployeeDashboard(c *fiber.Ctx) error {
	employeeID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	dashboard, err := h.service.EmployeeDashboard(employeeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dashboard)
}
