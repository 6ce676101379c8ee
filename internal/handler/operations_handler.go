package handler

import (
	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OperationsHandler struct {
	service service.OperationsService
}

func NewOperationsHandler(s service.OperationsService) *OperationsHandler {
	return &OperationsHandler{service: s}
}

// recordRef is the optional id for update-in-place saves
type recordRef struct {
	ID *uuid.UUID `json:"id"`
}

type FeedBody struct {
	recordRef
	Date     string          `json:"date"`
	FeedType string          `json:"feed_type"`
	Quantity decimal.Decimal `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

// SaveFeed creates or updates a feed record on the manager's day sheet
// POST /api/v1/operations/feed
func (h *OperationsHandler) SaveFeed(c *fiber.Ctx) error {
	managerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	var body FeedBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	date, err := model.ParseDate(body.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	record, err := h.service.SaveFeed(managerID, body.ID, date, body.FeedType, body.Quantity, body.Cost)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Feed record saved", "data": record})
}

type ExpenseBody struct {
	recordRef
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SaveExpense creates or updates an expense record
// POST /api/v1/operations/expenses
func (h *OperationsHandler) SaveExpense(c *fiber.Ctx) error {
	managerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	var body ExpenseBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	date, err := model.ParseDate(body.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	record, err := h.service.SaveExpense(managerID, body.ID, date, body.Category, body.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Expense record saved", "data": record})
}

type MedicineBody struct {
	recordRef
	Date         string          `json:"date"`
	MedicineName string          `json:"medicine_name"`
	Cost         decimal.Decimal `json:"cost"`
}

// SaveMedicine creates or updates a medicine record
// POST /api/v1/operations/medicine
func (h *OperationsHandler) SaveMedicine(c *fiber.Ctx) error {
	managerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	var body MedicineBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	date, err := model.ParseDate(body.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	record, err := h.service.SaveMedicine(managerID, body.ID, date, body.MedicineName, body.Cost)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Medicine record saved", "data": record})
}

type LeftoverBody struct {
	Date          string          `json:"date"`
	LeftoverMilk  decimal.Decimal `json:"leftover_milk"`
	LeftoverSales decimal.Decimal `json:"leftover_sales"`
}

// UpdateLeftover writes the day's leftover milk and leftover sales figures
// POST /api/v1/operations/leftover
func (h *OperationsHandler) UpdateLeftover(c *fiber.Ctx) error {
	managerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	var body LeftoverBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	date, err := model.ParseDate(body.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	day, err := h.service.UpdateLeftover(managerID, date, body.LeftoverMilk, body.LeftoverSales)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Leftover figures saved", "data": day})
}

// DailyData returns the manager's full day sheet
// GET /api/v1/operations/daily?date=YYYY-MM-DD
func (h *OperationsHandler) DailyData(c *fiber.Ctx) error {
	managerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}
	date, err := dateQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	data, err := h.service.GetDailyData(managerID, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(data)
}
