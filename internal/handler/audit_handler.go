package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/service"
	"github.com/harborlight/orphanage-api/internal/utils"
)

// AuditHandler exposes the audit trail listing endpoint.
type AuditHandler struct {
	service service.AuditService
	logger  zerolog.Logger
}

// NewAuditHandler builds an audit handler instance.
func NewAuditHandler(svc service.AuditService, logger zerolog.Logger) *AuditHandler {
	return &AuditHandler{
		service: svc,
		logger:  logger.With().Str("component", "audit_handler").Logger(),
	}
}

// Register wires the routes below /api/v1/audit.
func (h *AuditHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *AuditHandler) list(c *fiber.Ctx) error {
	var req dto.AuditListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid query parameters")
	}

	response, err := h.service.List(c.UserContext(), req)
	if err != nil {
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "audit entries retrieved", response)
}
