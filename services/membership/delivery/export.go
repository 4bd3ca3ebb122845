package delivery

import (
	"fmt"

	"gameden/config"
	"gameden/domain"
	"gameden/middleware"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type exportHandler struct {
	euc domain.ExportUseCase
}

func NewExportHandler(app *fiber.App, uc domain.ExportUseCase) {
	handler := &exportHandler{
		euc: uc,
	}

	group := app.Group("/export", middleware.AuthRequired())

	group.Get("/members", handler.ExportMembers)
}

func (h *exportHandler) ExportMembers(c *fiber.Ctx) error {
	result, err := h.euc.ExportMembersUC(c.Context())
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(claimsEmail(c), status, "ExportMembers")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to export members",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusOK, "ExportMembers")
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	return c.Status(fiber.StatusOK).Send(result.Content)
}
