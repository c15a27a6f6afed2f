package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.Root)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/register", handler.ShowRegisterPage)
	app.Post("/register", handler.Register)
	app.Get("/logout", handler.Logout)

	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/link-partner", handler.AuthRequired, handler.ShowLinkPartnerPage)
	app.Post("/link-partner", handler.AuthRequired, handler.LinkPartner)
	app.Post("/todo/add", handler.AuthRequired, handler.AddTodo)
	app.Get("/todo/toggle/:id", handler.AuthRequired, handler.ToggleTodo)
	app.Get("/todo/delete/:id", handler.AuthRequired, handler.DeleteTodo)
	app.Post("/mood/log", handler.AuthRequired, handler.LogMood)
	app.Get("/notes", handler.AuthRequired, handler.ShowNotesPage)
	app.Post("/notes/send", handler.AuthRequired, handler.SendNote)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
