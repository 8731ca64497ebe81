package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/service"
	"github.com/harborlight/orphanage-api/internal/utils"
)

// ParticipationHandler exposes enrollment endpoints.
type ParticipationHandler struct {
	service service.ParticipationService
	audit   service.AuditRecorder
	logger  zerolog.Logger
}

// NewParticipationHandler builds a participation handler instance.
func NewParticipationHandler(svc service.ParticipationService, audit service.AuditRecorder, logger zerolog.Logger) *ParticipationHandler {
	return &ParticipationHandler{
		service: svc,
		audit:   audit,
		logger:  logger.With().Str("component", "participation_handler").Logger(),
	}
}

// Register wires the participation routes. Reads by activity and child
// live under their parent resources; writes live under /participations.
func (h *ParticipationHandler) Register(router fiber.Router, activities fiber.Router, children fiber.Router) {
	router.Post("", h.enroll)
	router.Patch("/:id/status", h.updateStatus)
	router.Delete("/:id", h.remove)

	activities.Get("/:id/participants", h.listByActivity)
	children.Get("/:id/participations", h.listByChild)
}

func (h *ParticipationHandler) enroll(c *fiber.Ctx) error {
	var payload dto.EnrollmentRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	participation, err := h.service.Enroll(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	h.recordAudit(c, "enroll", participation.ID)

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "child enrolled", participation)
}

func (h *ParticipationHandler) listByActivity(c *fiber.Ctx) error {
	activityID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	participations, err := h.service.GetByActivity(c.UserContext(), activityID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "participations retrieved", participations)
}

func (h *ParticipationHandler) listByChild(c *fiber.Ctx) error {
	childID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	participations, err := h.service.GetByChild(c.UserContext(), childID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "participations retrieved", participations)
}

func (h *ParticipationHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ParticipationStatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	participation, err := h.service.UpdateStatus(c.UserContext(), id, payload.Status)
	if err != nil {
		return h.handleError(c, err)
	}

	h.recordAudit(c, "update_status", participation.ID)

	return utils.SendSuccess(c, "participation status updated", participation)
}

func (h *ParticipationHandler) remove(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	deleted, err := h.service.Remove(c.UserContext(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	if deleted {
		h.recordAudit(c, "remove", id)
	}

	return utils.SendSuccess(c, "participation removal processed", dto.RemovalResponse{Success: deleted})
}

func (h *ParticipationHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrChildNotFound):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrParticipationNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateEnrollment):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrCapacityExceeded):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidField):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func (h *ParticipationHandler) recordAudit(c *fiber.Ctx, action string, participationID uint) {
	if h.audit == nil {
		return
	}

	entityID := participationID
	entry := service.AuditEntry{
		Action:     action,
		EntityType: "participation",
		EntityID:   &entityID,
	}
	if err := h.audit.Record(c.UserContext(), auditActorFromContext(c), entry); err != nil {
		h.logger.Warn().Err(err).Msg("failed to record audit entry")
	}
}
