package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/service"
	"github.com/harborlight/orphanage-api/internal/utils"
)

// DonorHandler exposes donor record endpoints.
type DonorHandler struct {
	service   service.DonorService
	donations service.DonationService
	logger    zerolog.Logger
}

// NewDonorHandler builds a donor handler instance.
func NewDonorHandler(svc service.DonorService, donations service.DonationService, logger zerolog.Logger) *DonorHandler {
	return &DonorHandler{
		service:   svc,
		donations: donations,
		logger:    logger.With().Str("component", "donor_handler").Logger(),
	}
}

// Register wires the routes below /api/v1/donors.
func (h *DonorHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Get("/:id/donations", h.listDonations)
}

func (h *DonorHandler) list(c *fiber.Ctx) error {
	donors, err := h.service.List(c.UserContext())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "donors retrieved", donors)
}

func (h *DonorHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	donor, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "donor retrieved", donor)
}

func (h *DonorHandler) listDonations(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	donations, err := h.donations.ListByDonor(c.UserContext(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "donations retrieved", donations)
}

func (h *DonorHandler) create(c *fiber.Ctx) error {
	var payload dto.DonorCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	donor, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "donor registered", donor)
}

func (h *DonorHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrDonorNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
