package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/harborlight/orphanage-api/internal/utils"
)

// RequireRoles restricts a route group to the listed roles. It expects
// JWTProtected to have populated the user_role local.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[strings.ToUpper(strings.TrimSpace(role))] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		value := c.Locals("user_role")
		role, ok := value.(string)
		if !ok || role == "" {
			return utils.SendError(c, fiber.StatusForbidden, "role missing from token")
		}

		if _, ok := allowed[strings.ToUpper(role)]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}

		return c.Next()
	}
}
