package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/service"
	"github.com/harborlight/orphanage-api/internal/utils"
)

// ActivityHandler exposes activity lifecycle endpoints.
type ActivityHandler struct {
	service service.ActivityService
	audit   service.AuditRecorder
	logger  zerolog.Logger
}

// NewActivityHandler builds an activity handler instance.
func NewActivityHandler(svc service.ActivityService, audit service.AuditRecorder, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: svc,
		audit:   audit,
		logger:  logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register wires the routes below /api/v1/activities.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Patch("/:id/status", h.updateStatus)
}

func (h *ActivityHandler) list(c *fiber.Ctx) error {
	activities, err := h.service.List(c.UserContext())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "activities retrieved", activities)
}

func (h *ActivityHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	activity, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "activity retrieved", activity)
}

func (h *ActivityHandler) create(c *fiber.Ctx) error {
	var payload dto.ActivityCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	activity, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	h.recordAudit(c, "create", activity.ID)

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "activity created", activity)
}

func (h *ActivityHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ActivityUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	activity, err := h.service.Update(c.UserContext(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	h.recordAudit(c, "update", activity.ID)

	return utils.SendSuccess(c, "activity updated", activity)
}

func (h *ActivityHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ActivityStatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	activity, err := h.service.UpdateStatus(c.UserContext(), id, payload.Status)
	if err != nil {
		return h.handleError(c, err)
	}

	h.recordAudit(c, "update_status", activity.ID)

	return utils.SendSuccess(c, "activity status updated", activity)
}

func (h *ActivityHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrStaffNotFound):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidField):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// recordAudit is best effort: a failed audit write never fails the request.
func (h *ActivityHandler) recordAudit(c *fiber.Ctx, action string, activityID uint) {
	if h.audit == nil {
		return
	}

	entityID := activityID
	entry := service.AuditEntry{
		Action:     action,
		EntityType: "activity",
		EntityID:   &entityID,
	}
	if err := h.audit.Record(c.UserContext(), auditActorFromContext(c), entry); err != nil {
		h.logger.Warn().Err(err).Msg("failed to record audit entry")
	}
}
