package handlers

import (
	"FoodGuard-Backend/domain"
	"FoodGuard-Backend/internal/api/presenters"
	"FoodGuard-Backend/pkg/health"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	HealthHandler interface {
		EvaluateFood(c *fiber.Ctx) error
		EvaluateInventory(c *fiber.Ctx) error
		CheckProduct(c *fiber.Ctx) error
		GetAlternatives(c *fiber.Ctx) error
	}

	healthHandler struct {
		healthService health.HealthService
		validator     *validator.Validate
	}
)

func NewHealthHandler(healthService health.HealthService, validator *validator.Validate) HealthHandler {
	return &healthHandler{
		healthService: healthService,
		validator:     validator,
	}
}

func (h *healthHandler) EvaluateFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.healthService.EvaluateFood(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedEvaluateFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEvaluateFood)
}

func (h *healthHandler) EvaluateInventory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.healthService.EvaluateInventory(c.UserContext(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedEvaluateInventory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEvaluateInventory)
}

func (h *healthHandler) CheckProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CheckProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckProduct, err)
	}

	res, err := h.healthService.CheckProduct(c.UserContext(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCheckProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckProduct)
}

func (h *healthHandler) GetAlternatives(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.healthService.GetAlternatives(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetAlternatives, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAlternatives)
}
