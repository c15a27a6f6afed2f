package api

import (
	"github.com/an0ushkaaa/twodo/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) redirectAuthenticatedUserIfPresent(c *fiber.Ctx) (bool, error) {
	if _, err := handler.authenticateRequest(c); err == nil {
		if redirectErr := c.Redirect("/dashboard", fiber.StatusSeeOther); redirectErr != nil {
			return false, redirectErr
		}
		return true, nil
	}
	return false, nil
}

func (handler *Handler) currentUserOrRedirectToLogin(c *fiber.Ctx) (*models.User, bool, error) {
	user, ok := currentUser(c)
	if !ok {
		if redirectErr := c.Redirect("/login", fiber.StatusSeeOther); redirectErr != nil {
			return nil, false, redirectErr
		}
		return nil, true, nil
	}
	return user, false, nil
}

func (handler *Handler) optionalAuthenticatedUser(c *fiber.Ctx) *models.User {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return nil
	}
	return user
}
