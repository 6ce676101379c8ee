package handler

import (
	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransferHandler struct {
	service service.TransferService
}

func NewTransferHandler(s service.TransferService) *TransferHandler {
	return &TransferHandler{service: s}
}

type CreateRequestBody struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// Create opens a new milk request visible to all other active sellers
// POST /api/v1/milk-requests
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	sellerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	var body CreateRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	request, err := h.service.Create(sellerID, body.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Milk request created", "data": request})
}

// Accept puts the request on hold under the calling seller
// POST /api/v1/milk-requests/:id/accept
func (h *TransferHandler) Accept(c *fiber.Ctx) error {
	sellerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	request, err := h.service.Accept(requestID, sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Request accepted", "data": request})
}

// MarkReceived confirms physical delivery and applies the quantity to the
// requester's daily totals
// POST /api/v1/milk-requests/:id/received
func (h *TransferHandler) MarkReceived(c *fiber.Ctx) error {
	sellerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	request, err := h.service.MarkReceived(requestID, sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Receipt confirmed", "data": request})
}

// Reject withdraws a still-pending request
// POST /api/v1/milk-requests/:id/reject
func (h *TransferHandler) Reject(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	isAdmin := getRole(c) == model.RoleAdmin
	var sellerID uuid.UUID
	if !isAdmin {
		sellerID, err = getProfileID(c)
		if err != nil {
			return respondError(c, err)
		}
	}

	request, err := h.service.Reject(requestID, sellerID, isAdmin)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Request rejected", "data": request})
}

// ListIncoming returns other sellers' open requests the caller could accept
// GET /api/v1/milk-requests/incoming
func (h *TransferHandler) ListIncoming(c *fiber.Ctx) error {
	sellerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	requests, err := h.service.ListIncoming(sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

// ListMine returns the caller's own requests, newest first
// GET /api/v1/milk-requests/mine
func (h *TransferHandler) ListMine(c *fiber.Ctx) error {
	sellerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	requests, err := h.service.ListMine(sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

// BorrowLendHistory returns the caller's borrow/lend ledger
// GET /api/v1/milk-requests/borrow-lend
func (h *TransferHandler) BorrowLendHistory(c *fiber.Ctx) error {
	sellerID, err := getProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	entries, err := h.service.BorrowLendHistory(sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}
