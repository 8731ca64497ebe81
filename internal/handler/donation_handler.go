package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/service"
	"github.com/harborlight/orphanage-api/internal/utils"
)

// DonationHandler exposes donation endpoints.
type DonationHandler struct {
	service service.DonationService
	logger  zerolog.Logger
}

// NewDonationHandler builds a donation handler instance.
func NewDonationHandler(svc service.DonationService, logger zerolog.Logger) *DonationHandler {
	return &DonationHandler{
		service: svc,
		logger:  logger.With().Str("component", "donation_handler").Logger(),
	}
}

// Register wires the routes below /api/v1/donations.
func (h *DonationHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *DonationHandler) list(c *fiber.Ctx) error {
	donations, err := h.service.List(c.UserContext())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "donations retrieved", donations)
}

func (h *DonationHandler) create(c *fiber.Ctx) error {
	var payload dto.DonationCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	donation, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "donation recorded", donation)
}

func (h *DonationHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrDonorNotFound):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
