package api

import (
	"errors"

	"github.com/an0ushkaaa/twodo/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowLinkPartnerPage(c *fiber.Ctx) error {
	user, redirected, err := handler.currentUserOrRedirectToLogin(c)
	if err != nil || redirected {
		return err
	}

	data := fiber.Map{"Title": "Twodo | Link partner"}
	flash := handler.popFlashCookie(c)
	data["PartnerError"] = flash.PartnerError
	data["PartnerSuccess"] = flash.PartnerSuccess

	if user.PartnerID != nil {
		if partner, err := handler.authService.FindByID(*user.PartnerID); err == nil {
			data["Partner"] = partner
		}
	}
	return handler.render(c, "link_partner", data)
}

func (handler *Handler) LinkPartner(c *fiber.Ctx) error {
	user, redirected, err := handler.currentUserOrRedirectToLogin(c)
	if err != nil || redirected {
		return err
	}

	input := linkPartnerInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.flashRedirect(c, "/link-partner", FlashPayload{PartnerError: "No user with that username."})
	}

	partner, err := handler.partnerService.LinkPartner(*user, input.PartnerUsername)
	if err != nil {
		// Both failure modes are user-visible, non-fatal, and change no state.
		switch {
		case errors.Is(err, services.ErrSelfLink):
			return handler.flashRedirect(c, "/link-partner", FlashPayload{PartnerError: "You can't link with yourself."})
		case errors.Is(err, services.ErrPartnerNotFound):
			return handler.flashRedirect(c, "/link-partner", FlashPayload{PartnerError: "No user with that username."})
		default:
			return apiErrorOrFlash(c, handler, "/link-partner", "failed to link partner")
		}
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true, "partner_id": partner.ID})
	}
	return handler.flashRedirect(c, "/dashboard", FlashPayload{
		PartnerSuccess: "Linked with " + partner.DisplayName + "!",
	})
}
