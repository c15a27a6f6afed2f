package api

import (
	"github.com/an0ushkaaa/twodo/internal/models"
	"github.com/gofiber/fiber/v2"
)

// userView is the JSON shape for an account. Credential material stays out
// of every response body.
type userView struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	PartnerID   *uint  `json:"partner_id"`
}

func newUserView(user *models.User) *userView {
	if user == nil {
		return nil
	}
	return &userView{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		PartnerID:   user.PartnerID,
	}
}

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, redirected, err := handler.currentUserOrRedirectToLogin(c)
	if err != nil || redirected {
		return err
	}

	data, err := handler.dashboardService.Build(*user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{
			"user":          newUserView(user),
			"partner":       newUserView(data.Partner),
			"todos":         data.Todos,
			"partner_todos": data.PartnerTodos,
		})
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "dashboard", fiber.Map{
		"Title":          "Twodo | Dashboard",
		"Partner":        data.Partner,
		"Todos":          data.Todos,
		"PartnerTodos":   data.PartnerTodos,
		"PartnerSuccess": flash.PartnerSuccess,
		"MoodError":      flash.MoodError,
		"MoodSuccess":    flash.MoodSuccess,
	})
}
