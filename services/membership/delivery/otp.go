package delivery

import (
	"errors"

	"gameden/config"
	"gameden/domain"
	"gameden/middleware"

	"github.com/gofiber/fiber/v2"
)

type otpHandler struct {
	ouc domain.OTPUseCase
}

func NewOTPHandler(app *fiber.App, uc domain.OTPUseCase) {
	handler := &otpHandler{
		ouc: uc,
	}

	group := app.Group("/otp", middleware.AuthRequired())

	group.Post("/issue", handler.IssueOTP)
	group.Post("/verify", handler.VerifyOTP)
}

type issueOTPPayload struct {
	Phone string `json:"phone"`
}

type verifyOTPPayload struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// IssueOTP hands the code and the wa.me link back to staff, who relay
// the code manually over WhatsApp.
func (h *otpHandler) IssueOTP(c *fiber.Ctx) error {
	var payload issueOTPPayload

	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "IssueOTP")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to issue verification code",
		})
	}

	challenge, link, err := h.ouc.IssueUC(c.Context(), payload.Phone)
	if err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "IssueOTP")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to issue verification code",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusOK, "IssueOTP")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Verification code issued",
		"data":    challenge,
		"whatsapp": fiber.Map{
			"link": link,
		},
	})
}

func (h *otpHandler) VerifyOTP(c *fiber.Ctx) error {
	var payload verifyOTPPayload

	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "VerifyOTP")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Verification failed",
		})
	}

	if err := h.ouc.VerifyUC(c.Context(), payload.Phone, payload.Code); err != nil {
		status := fiber.StatusBadRequest
		message := "Verification failed. Please try again."
		switch {
		case errors.Is(err, domain.ErrOTPExpired):
			message = "Verification code has expired. Please generate a new one."
		case errors.Is(err, domain.ErrOTPMismatch):
			message = "Invalid verification code. Please check and try again."
		case errors.Is(err, domain.ErrOTPNotIssued):
			status = fiber.StatusNotFound
			message = "No verification code issued for this phone."
		}
		config.PrintLogInfo(claimsEmail(c), status, "VerifyOTP")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": message,
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusOK, "VerifyOTP")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Phone number verified successfully",
	})
}
