package handler

import (
	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

type RecordSaleBody struct {
	Quantity    decimal.Decimal `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Date        string          `json:"date"`
}

// RecordSale appends one sale line to the caller's day
// POST /api/v1/sales
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	sellerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	var body RecordSaleBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	date, err := model.ParseDate(body.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	sale, err := h.service.RecordSale(sellerID, body.Quantity, body.TotalAmount, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": sale.ToResponse()})
}

type DailyTotalsBody struct {
	CashSales   decimal.Decimal `json:"cash_sales"`
	OnlineSales decimal.Decimal `json:"online_sales"`
	Date        string          `json:"date"`
}

// RecordDailyTotals writes the day's cash and online figures
// POST /api/v1/sales/daily-totals
func (h *SalesHandler) RecordDailyTotals(c *fiber.Ctx) error {
	sellerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	var body DailyTotalsBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	date, err := model.ParseDate(body.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	total, err := h.service.RecordDailyTotals(sellerID, body.CashSales, body.OnlineSales, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Daily totals saved", "data": total})
}
