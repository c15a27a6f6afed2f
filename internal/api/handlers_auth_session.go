package api

import (
	"errors"
	"time"

	"github.com/an0ushkaaa/twodo/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	loginAttemptsLimit  = 10
	loginAttemptsWindow = 15 * time.Minute
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registrationInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.flashRedirect(c, "/register", FlashPayload{AuthError: "Please fill in all fields."})
	}

	user, err := handler.authService.RegisterUser(input.Username, input.DisplayName, input.Password)
	if err != nil {
		sticky := FlashPayload{
			RegisterUsername:    input.Username,
			RegisterDisplayName: input.DisplayName,
		}
		switch {
		case errors.Is(err, services.ErrAuthCredentialsInvalid):
			sticky.AuthError = "Please fill in all fields."
			return handler.flashRedirect(c, "/register", sticky)
		case errors.Is(err, services.ErrUsernameTaken):
			sticky.AuthError = "That username is already taken."
			return handler.flashRedirectStatus(c, "/register", sticky, fiber.StatusConflict, "username already taken")
		default:
			return apiErrorOrFlash(c, handler, "/register", "failed to create account")
		}
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": user.ID})
	}
	return handler.flashRedirect(c, "/login", FlashPayload{
		AuthSuccess:   "Account created! Please log in.",
		LoginUsername: user.Username,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondLoginFailure(c, input)
	}

	now := time.Now().In(handler.location)
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return handler.respondLoginFailure(c, input)
	}

	user, err := handler.authService.Authenticate(input.Username, input.Password)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return handler.respondLoginFailure(c, input)
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiErrorOrFlash(c, handler, "/login", "failed to create session")
	}
	return redirectOrJSON(c, "/dashboard")
}

// respondLoginFailure is the single failure path for login: the same generic
// message regardless of whether the username or the password was wrong.
func (handler *Handler) respondLoginFailure(c *fiber.Ctx, input credentialsInput) error {
	payload := FlashPayload{
		AuthError:     "Invalid username or password.",
		LoginUsername: input.Username,
	}
	return handler.flashRedirectStatus(c, "/login", payload, fiber.StatusUnauthorized, "invalid credentials")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return redirectOrJSON(c, "/login")
}

func apiErrorOrFlash(c *fiber.Ctx, handler *Handler, path string, message string) error {
	if acceptsJSON(c) {
		return apiError(c, fiber.StatusInternalServerError, message)
	}
	return handler.flashRedirect(c, path, FlashPayload{AuthError: "Something went wrong. Please try again."})
}
