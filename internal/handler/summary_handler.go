package handler

import (
	"strconv"

	"go-dairy-ops/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SummaryHandler struct {
	service service.SummaryService
}

func NewSummaryHandler(s service.SummaryService) *SummaryHandler {
	return &SummaryHandler{service: s}
}

// DailySummary returns the caller's day sheet: milk in/out, remaining, sales
// GET /api/v1/summary/daily?date=YYYY-MM-DD
func (h *SummaryHandler) DailySummary(c *fiber.Ctx) error {
	sellerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}
	date, err := dateQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	summary, err := h.service.GetDailySummary(sellerID, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// SellerSummary lets admins and managers inspect any seller's day
// GET /api/v1/summary/sellers/:id?date=YYYY-MM-DD
func (h *SummaryHandler) SellerSummary(c *fiber.Ctx) error {
	sellerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid seller ID"})
	}
	date, err := dateQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	summary, err := h.service.GetDailySummary(sellerID, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// LocationStatistics returns today's per-location rollup
// GET /api/v1/summary/locations?date=YYYY-MM-DD
func (h *SummaryHandler) LocationStatistics(c *fiber.Ctx) error {
	date, err := dateQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	stats, err := h.service.GetLocationStatistics(date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// ManagerDashboard returns the manager's 7-day chart data and counters
// GET /api/v1/summary/manager-dashboard
func (h *SummaryHandler) ManagerDashboard(c *fiber.Ctx) error {
	managerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	dashboard, err := h.service.GetManagerDashboard(managerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dashboard)
}

// SalesTrend returns the revenue series across all sellers
// GET /api/v1/summary/sales-trend?days=30
func (h *SummaryHandler) SalesTrend(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days", "30"))

	trend, err := h.service.GetSalesTrend(days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(trend)
}
