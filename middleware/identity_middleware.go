package middleware

import (
	"github.com/gofiber/fiber/v2"

	"job-tracker-backend/config"
)

const (
	headerUserID = "X-User-Id"
	headerOrgID  = "X-Org-Id"
)

// Identity определяет владельца запроса.
// Идентификаторы приходят в заголовках; при их отсутствии подставляются
// значения из конфигурации — вместо констант, зашитых в код.
func Identity() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := ctx.Get(headerUserID)
		if userID == "" {
			userID = config.Conf.Identity.DefaultUserID
		}
		orgID := ctx.Get(headerOrgID)
		if orgID == "" {
			orgID = config.Conf.Identity.DefaultOrgID
		}
		ctx.Locals("user_id", userID)
		ctx.Locals("org_id", orgID)
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	if userID, ok := ctx.Locals("user_id").(string); ok {
		return userID
	}
	return ""
}

func GetOrgID(ctx *fiber.Ctx) string {
	if orgID, ok := ctx.Locals("org_id").(string); ok {
		return orgID
	}
	return ""
}
