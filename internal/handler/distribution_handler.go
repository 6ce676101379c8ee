package handler

import (
	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DistributionHandler struct {
	service service.DistributionService
}

func NewDistributionHandler(s service.DistributionService) *DistributionHandler {
	return &DistributionHandler{service: s}
}

type DistributeBody struct {
	SellerID   uuid.UUID       `json:"seller_id"`
	LocationID uuid.UUID       `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Date       string          `json:"date"`
}

// Distribute records a pending delivery to one seller, or splits across a
// location's active sellers when location_id is given instead
// POST /api/v1/distributions
func (h *DistributionHandler) Distribute(c *fiber.Ctx) error {
	managerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	var body DistributeBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	date, err := model.ParseDate(body.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	if body.LocationID != uuid.Nil {
		receipts, err := h.service.DistributeToLocation(managerID, body.LocationID, body.Quantity, date)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(201).JSON(fiber.Map{"message": "Milk distributed to location", "data": receipts})
	}

	if body.SellerID == uuid.Nil {
		return c.Status(400).JSON(fiber.Map{"error": "seller_id or location_id is required"})
	}

	receipt, err := h.service.RecordDistribution(managerID, body.SellerID, body.Quantity, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Milk distribution recorded", "data": receipt})
}

type UpdateStatusBody struct {
	Status model.ReceiptStatus `json:"status"`
}

// UpdateStatus lets the receiving seller acknowledge or dispute a delivery
// PUT /api/v1/distributions/:id/status
func (h *DistributionHandler) UpdateStatus(c *fiber.Ctx) error {
	sellerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}
	receiptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid receipt ID"})
	}

	var body UpdateStatusBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	receipt, err := h.service.UpdateStatus(receiptID, body.Status, sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Receipt status updated", "data": receipt.ToResponse()})
}

// ListOutstanding returns the caller's unacknowledged deliveries
// GET /api/v1/distributions/outstanding
func (h *DistributionHandler) ListOutstanding(c *fiber.Ctx) error {
	sellerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	receipts, err := h.service.ListOutstanding(sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(receipts)
}

// ListManagerPending returns the manager's deliveries still awaiting
// acknowledgement
// GET /api/v1/distributions/pending
func (h *DistributionHandler) ListManagerPending(c *fiber.Ctx) error {
	managerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	receipts, err := h.service.ListManagerPending(managerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(receipts)
}
