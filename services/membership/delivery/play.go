package delivery

import (
	"time"

	"gameden/config"
	"gameden/domain"
	"gameden/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type playHandler struct {
	puc domain.PlayUseCase
}

func NewPlayHandler(app *fiber.App, uc domain.PlayUseCase) {
	handler := &playHandler{
		puc: uc,
	}

	group := app.Group("/play", middleware.AuthRequired())

	group.Post("/insert", handler.InsertPlay)
	group.Get("/history/:member_id", handler.GetPlayHistory)
}

type insertPlayPayload struct {
	MemberID string     `json:"member_id"`
	PlayDate *time.Time `json:"play_date"`
}

func (h *playHandler) InsertPlay(c *fiber.Ctx) error {
	var payload insertPlayPayload

	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "InsertPlay")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to add play record",
		})
	}

	memberID, err := uuid.Parse(payload.MemberID)
	if err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "InsertPlay")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid member id",
			"success": false,
		})
	}

	play, err := h.puc.RecordPlayUC(c.Context(), memberID, payload.PlayDate)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(claimsEmail(c), status, "InsertPlay")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to add play record",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusCreated, "InsertPlay")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Play record added successfully",
		"data":    play,
	})
}

func (h *playHandler) GetPlayHistory(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "GetPlayHistory")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid member id",
			"success": false,
		})
	}

	plays, err := h.puc.GetPlayHistoryUC(c.Context(), memberID)
	if err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusInternalServerError, "GetPlayHistory")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to get play history",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusOK, "GetPlayHistory")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Play history retrieved successfully",
		"data":    plays,
	})
}
