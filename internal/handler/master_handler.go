package handler

import (
	"go-dairy-ops/internal/service"
	"go-dairy-ops/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MasterHandler exposes the admin provisioning endpoints
type MasterHandler struct {
	service service.MasterService
}

func NewMasterHandler(s service.MasterService) *MasterHandler {
	return &MasterHandler{service: s}
}

type CreateLocationBody struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// POST /api/v1/master/locations
func (h *MasterHandler) CreateLocation(c *fiber.Ctx) error {
	var body CreateLocationBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	location, err := h.service.CreateLocation(body.Name, body.Address)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Location created", "data": location})
}

// GET /api/v1/master/locations
func (h *MasterHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.service.ListLocations()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(locations)
}

// POST /api/v1/master/sellers
func (h *MasterHandler) CreateSeller(c *fiber.Ctx) error {
	var input service.CreateSellerInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(input); errs != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": errs})
	}

	seller, err := h.service.CreateSeller(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Seller created", "data": seller})
}

// GET /api/v1/master/sellers
func (h *MasterHandler) ListSellers(c *fiber.Ctx) error {
	sellers, err := h.service.ListSellers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sellers)
}

type SellerActiveBody struct {
	IsActive bool `json:"is_active"`
}

// PUT /api/v1/master/sellers/:id/active
func (h *MasterHandler) SetSellerActive(c *fiber.Ctx) error {
	sellerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid seller ID"})
	}

	var body SellerActiveBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	seller, err := h.service.SetSellerActive(sellerID, body.IsActive)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Seller updated", "data": seller})
}

// POST /api/v1/master/managers
func (h *MasterHandler) CreateManager(c *fiber.Ctx) error {
	var input service.CreateManagerInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(input); errs != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": errs})
	}

	manager, err := h.service.CreateManager(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Manager created", "data": manager})
}

// GET /api/v1/master/managers
func (h *MasterHandler) ListManagers(c *fiber.Ctx) error {
	managers, err := h.service.ListManagers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(managers)
}

// DELETE /api/v1/master/managers/:id
func (h *MasterHandler) DeleteManager(c *fiber.Ctx) error {
	managerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid manager ID"})
	}

	if err := h.service.DeleteManager(managerID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Manager deleted"})
}

// POST /api/v1/master/employees
func (h *MasterHandler) CreateEmployee(c *fiber.Ctx) error {
	var input service.CreateEmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(input); errs != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": errs})
	}

	employee, err := h.service.CreateEmployee(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Employee created", "data": employee})
}

// GET /api/v1/master/employees?manager_id=...
func (h *MasterHandler) ListEmployees(c *fiber.Ctx) error {
	managerID, err := uuid.Parse(c.Query("manager_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "manager_id query param is required"})
	}

	employees, err := h.service.ListEmployees(managerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employees)
}
