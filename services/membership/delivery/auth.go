package delivery

import (
	"errors"

	"gameden/config"
	"gameden/domain"
	"gameden/middleware"

	"github.com/gofiber/fiber/v2"
)

type authHandler struct {
	auc domain.AuthUseCase
}

func NewAuthHandler(app *fiber.App, uc domain.AuthUseCase) {
	handler := &authHandler{
		auc: uc,
	}

	group := app.Group("/auth")

	group.Post("/login", handler.Login)
	group.Get("/session", middleware.AuthRequired(), handler.Session)
	group.Post("/logout", middleware.AuthRequired(), handler.Logout)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest

	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid request body",
			"success": false,
		})
	}

	resp, err := h.auc.LoginUC(c.Context(), &req)
	if err != nil {
		// Unconfirmed accounts get actionable guidance, everything else
		// stays deliberately generic.
		switch {
		case errors.Is(err, domain.ErrEmailNotConfirmed):
			config.PrintLogInfo(&req.Email, fiber.StatusUnauthorized, "Login")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "email_not_confirmed",
				"success": false,
				"message": "Please check your email and click the confirmation link before signing in.",
			})
		case errors.Is(err, domain.ErrInvalidCredentials):
			config.PrintLogInfo(&req.Email, fiber.StatusUnauthorized, "Login")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "invalid_credentials",
				"success": false,
				"message": "Invalid email or password. Please check your credentials and try again.",
			})
		default:
			config.PrintLogInfo(&req.Email, fiber.StatusInternalServerError, "Login")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   err.Error(),
				"success": false,
				"message": "Login failed. Please try again.",
			})
		}
	}

	config.PrintLogInfo(&req.Email, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Signed in successfully",
		"data":    resp,
	})
}

func (h *authHandler) Session(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "Session")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    claims,
	})
}

// Logout acknowledges session end; the JWT simply ages out client side.
func (h *authHandler) Logout(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "Logout")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Signed out successfully",
	})
}
