package handler

import (
	"go-stockflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RequestHandler struct {
	service service.RequestService
}

func NewRequestHandler(s service.RequestService) *RequestHandler {
	return &RequestHandler{service: s}
}

// GetRequests lists all requests for admins, own requests for staff
// GET /api/v1/requests
func (h *RequestHandler) GetRequests(c *fiber.Ctx) error {
	requests, err := h.service.ListRequests(actorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(requests), "data": requests})
}

// GET /api/v1/requests/:id
func (h *RequestHandler) GetRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request ID"})
	}

	request, err := h.service.GetRequest(actorFrom(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": request})
}

// POST /api/v1/requests
func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	var input service.CreateRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	request, err := h.service.CreateRequest(actorFrom(c), input)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": request})
}

// PUT /api/v1/requests/:id
func (h *RequestHandler) UpdateRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request ID"})
	}

	var input service.UpdateRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	request, err := h.service.UpdateRequest(actorFrom(c), id, input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": request})
}

// POST /api/v1/requests/:id/cancel
func (h *RequestHandler) CancelRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request ID"})
	}

	request, err := h.service.CancelRequest(actorFrom(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": request})
}

// POST /api/v1/requests/:id/approve
func (h *RequestHandler) ApproveRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request ID"})
	}

	request, err := h.service.ApproveRequest(actorFrom(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": request})
}

// RejectRequestBody carries the mandatory rejection reason
type RejectRequestBody struct {
	RejectionReason string `json:"rejection_reason"`
}

// POST /api/v1/requests/:id/reject
func (h *RequestHandler) RejectRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request ID"})
	}

	var body RejectRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	request, err := h.service.RejectRequest(actorFrom(c), id, body.RejectionReason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": request})
}

// DELETE /api/v1/requests/:id
func (h *RequestHandler) DeleteRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request ID"})
	}

	if err := h.service.DeleteRequest(actorFrom(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{}, "message": "Request deleted successfully"})
}
