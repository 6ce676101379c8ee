package handler

import (
	"time"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers to pull auth context set by RequireAuth

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, apperr.Authorization("not authenticated")
	}
	return uuid.Parse(raw)
}

// getProfileID resolves the caller's role profile id (seller/manager/employee)
func getProfileID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("profile_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, apperr.Authorization("no role profile for this account")
	}
	return uuid.Parse(raw)
}

func getRole(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}

// dateQuery parses the ?date= query param, defaulting to today
func dateQuery(c *fiber.Ctx) (time.Time, error) {
	date, err := model.ParseDate(c.Query("date"))
	if err != nil {
		return time.Time{}, apperr.Validation("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

// respondError maps a service error onto its HTTP status
func respondError(c *fiber.Ctx, err error) error {
	code := apperr.StatusCode(err)
	if code == 500 {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
