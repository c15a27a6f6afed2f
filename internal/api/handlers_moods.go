package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) LogMood(c *fiber.Ctx) error {
	user, redirected, err := handler.currentUserOrRedirectToLogin(c)
	if err != nil || redirected {
		return err
	}

	input := moodInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.flashRedirect(c, "/dashboard", FlashPayload{MoodError: "Mood score must be a whole number."})
	}

	// Any signed integer is accepted; there is no declared score range.
	score, err := strconv.Atoi(strings.TrimSpace(input.Score))
	if err != nil {
		return handler.flashRedirect(c, "/dashboard", FlashPayload{MoodError: "Mood score must be a whole number."})
	}

	if err := handler.moodService.LogMood(user.ID, score, input.Note); err != nil {
		return apiErrorOrFlash(c, handler, "/dashboard", "failed to log mood")
	}
	return handler.flashRedirect(c, "/dashboard", FlashPayload{MoodSuccess: "Mood logged!"})
}
