package api

import "github.com/gofiber/fiber/v2"

// AuthRequired is the only access-control gate: it resolves the session user
// or bounces the request to /login. Per-resource checks beyond "row belongs
// to the session user" live in the services.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if acceptsJSON(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}
