package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/service"
	"github.com/harborlight/orphanage-api/internal/utils"
)

// ExpenseHandler exposes expense endpoints.
type ExpenseHandler struct {
	service service.ExpenseService
	logger  zerolog.Logger
}

// NewExpenseHandler builds an expense handler instance.
func NewExpenseHandler(svc service.ExpenseService, logger zerolog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: svc,
		logger:  logger.With().Str("component", "expense_handler").Logger(),
	}
}

// Register wires the routes below /api/v1/expenses.
func (h *ExpenseHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *ExpenseHandler) list(c *fiber.Ctx) error {
	expenses, err := h.service.List(c.UserContext())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "expenses retrieved", expenses)
}

func (h *ExpenseHandler) create(c *fiber.Ctx) error {
	var payload dto.ExpenseCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	expense, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "expense recorded", expense)
}

func (h *ExpenseHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrStaffNotFound):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
