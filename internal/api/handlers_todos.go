package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AddTodo(c *fiber.Ctx) error {
	user, redirected, err := handler.currentUserOrRedirectToLogin(c)
	if err != nil || redirected {
		return err
	}

	input := todoInput{}
	if err := c.BodyParser(&input); err != nil {
		return redirectOrJSON(c, "/dashboard")
	}

	if _, err := handler.todoService.AddTodo(user.ID, input.Text); err != nil {
		return apiErrorOrFlash(c, handler, "/dashboard", "failed to add todo")
	}
	return redirectOrJSON(c, "/dashboard")
}

// ToggleTodo and DeleteTodo no-op silently for unknown ids and for items
// owned by someone else; the response never reveals which case it was.
func (handler *Handler) ToggleTodo(c *fiber.Ctx) error {
	user, redirected, err := handler.currentUserOrRedirectToLogin(c)
	if err != nil || redirected {
		return err
	}

	todoID, ok := parseTodoID(c)
	if !ok {
		return redirectOrJSON(c, "/dashboard")
	}

	if err := handler.todoService.ToggleTodo(user.ID, todoID); err != nil {
		return apiErrorOrFlash(c, handler, "/dashboard", "failed to toggle todo")
	}
	return redirectOrJSON(c, "/dashboard")
}

func (handler *Handler) DeleteTodo(c *fiber.Ctx) error {
	user, redirected, err := handler.currentUserOrRedirectToLogin(c)
	if err != nil || redirected {
		return err
	}

	todoID, ok := parseTodoID(c)
	if !ok {
		return redirectOrJSON(c, "/dashboard")
	}

	if err := handler.todoService.DeleteTodo(user.ID, todoID); err != nil {
		return apiErrorOrFlash(c, handler, "/dashboard", "failed to delete todo")
	}
	return redirectOrJSON(c, "/dashboard")
}

func parseTodoID(c *fiber.Ctx) (uint, bool) {
	raw := c.Params("id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, false
	}
	return uint(parsed), true
}
