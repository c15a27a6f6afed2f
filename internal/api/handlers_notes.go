package api

import "github.com/gofiber/fiber/v2"

// ShowNotesPage lists the user's notes. Viewing is the acknowledgment:
// every note addressed to the user flips to read before the page renders.
func (handler *Handler) ShowNotesPage(c *fiber.Ctx) error {
	user, redirected, err := handler.currentUserOrRedirectToLogin(c)
	if err != nil || redirected {
		return err
	}

	notes, err := handler.noteService.ListNotes(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notes")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"notes": notes})
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "notes", fiber.Map{
		"Title":       "Twodo | Notes",
		"Notes":       notes,
		"NoteSuccess": flash.NoteSuccess,
		"HasPartner":  user.PartnerID != nil,
	})
}

func (handler *Handler) SendNote(c *fiber.Ctx) error {
	user, redirected, err := handler.currentUserOrRedirectToLogin(c)
	if err != nil || redirected {
		return err
	}

	input := noteInput{}
	if err := c.BodyParser(&input); err != nil {
		return redirectOrJSON(c, "/notes")
	}

	sent, err := handler.noteService.SendNote(*user, input.Message)
	if err != nil {
		return apiErrorOrFlash(c, handler, "/notes", "failed to send note")
	}
	if !sent {
		// Empty message or no linked partner: nothing happened.
		return redirectOrJSON(c, "/notes")
	}
	return handler.flashRedirect(c, "/notes", FlashPayload{NoteSuccess: "Note sent!"})
}
