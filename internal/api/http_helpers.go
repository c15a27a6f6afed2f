package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func redirectOrJSON(c *fiber.Ctx, path string) error {
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}

// flashRedirect answers a form post: JSON clients get the status and message
// straight away, page clients get the payload via the flash cookie and a 303
// back to path.
func (handler *Handler) flashRedirect(c *fiber.Ctx, path string, payload FlashPayload) error {
	if acceptsJSON(c) {
		if message := firstFlashError(payload); message != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
		}
		return c.JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, payload)
	return c.Redirect(path, fiber.StatusSeeOther)
}

func (handler *Handler) flashRedirectStatus(c *fiber.Ctx, path string, payload FlashPayload, jsonStatus int, jsonError string) error {
	if acceptsJSON(c) {
		return c.Status(jsonStatus).JSON(fiber.Map{"error": jsonError})
	}
	handler.setFlashCookie(c, payload)
	return c.Redirect(path, fiber.StatusSeeOther)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

func firstFlashError(payload FlashPayload) string {
	for _, message := range []string{payload.AuthError, payload.PartnerError, payload.MoodError} {
		if message != "" {
			return message
		}
	}
	return ""
}
