package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-stockflow/internal/apperr"
	"go-stockflow/internal/model"
	"go-stockflow/internal/policy"
)

// actorFrom builds the acting identity from the context locals set by RequireAuth
func actorFrom(c *fiber.Ctx) policy.Actor {
	actor := policy.Actor{Role: model.RoleStaff}
	if id, ok := c.Locals("user_id").(string); ok {
		if parsed, err := uuid.Parse(id); err == nil {
			actor.ID = parsed
		}
	}
	if name, ok := c.Locals("user_name").(string); ok {
		actor.Name = name
	}
	if role, ok := c.Locals("user_role").(string); ok {
		actor.Role = model.Role(role)
	}
	return actor
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// errStatus maps the error taxonomy to HTTP status codes
func errStatus(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindForbidden:
		return fiber.StatusForbidden
	case apperr.KindValidation, apperr.KindInvalidState:
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// fail renders an error in the response shape the frontend expects
func fail(c *fiber.Ctx, err error) error {
	status := errStatus(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "Internal Server Error"
	}
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}
