package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Root(c *fiber.Ctx) error {
	if user := handler.optionalAuthenticatedUser(c); user != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	redirected, err := handler.redirectAuthenticatedUserIfPresent(c)
	if err != nil {
		return err
	}
	if redirected {
		return nil
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title":         "Twodo | Log in",
		"AuthError":     flash.AuthError,
		"AuthSuccess":   flash.AuthSuccess,
		"LoginUsername": flash.LoginUsername,
	})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	redirected, err := handler.redirectAuthenticatedUserIfPresent(c)
	if err != nil {
		return err
	}
	if redirected {
		return nil
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "register", fiber.Map{
		"Title":               "Twodo | Register",
		"AuthError":           flash.AuthError,
		"RegisterUsername":    flash.RegisterUsername,
		"RegisterDisplayName": flash.RegisterDisplayName,
	})
}
