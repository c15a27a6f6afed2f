package api

import (
	"github.com/an0ushkaaa/twodo/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName  = "twodo_auth"
	flashCookieName = "twodo_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
