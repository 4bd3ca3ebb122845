package delivery

import (
	"errors"

	"gameden/config"
	"gameden/domain"
	"gameden/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type memberHandler struct {
	muc domain.MemberUseCase
}

func NewMemberHandler(app *fiber.App, uc domain.MemberUseCase) {
	handler := &memberHandler{
		muc: uc,
	}

	group := app.Group("/member", middleware.AuthRequired())

	group.Post("/insert", handler.InsertMember)
	group.Get("/get_all", handler.GetAllMembers)
	group.Get("/get/:id", handler.GetMemberByID)
	group.Put("/modify/:id", handler.ModifyMember)
	group.Delete("/rm/:id", handler.DeleteMember)
	group.Post("/reset_validity/:id", handler.ResetValidity)
	group.Get("/card/generate", handler.GenerateCardNumber)
	group.Get("/card/check/:number", handler.CheckCardNumber)
}

// errStatus maps domain failures onto HTTP statuses; anything unknown is
// a server error.
func errStatus(err error) int {
	var validationErrs govalidator.Errors
	switch {
	case errors.Is(err, domain.ErrMemberNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateCardNumber):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrPlayDateInFuture):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNothingToExport):
		return fiber.StatusNotFound
	case errors.As(err, &validationErrs):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func claimsEmail(c *fiber.Ctx) *string {
	if claims, ok := c.Locals("user").(*domain.Claims); ok {
		return &claims.Email
	}
	return nil
}

func (h *memberHandler) InsertMember(c *fiber.Ctx) error {
	var member domain.Member

	if err := c.BodyParser(&member); err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "InsertMember")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to create member",
		})
	}

	notice, err := h.muc.CreateMemberUC(c.Context(), &member)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(claimsEmail(c), status, "InsertMember")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to create member",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusCreated, "InsertMember")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Member created successfully",
		"data":     member,
		"whatsapp": notice,
	})
}

func (h *memberHandler) GetAllMembers(c *fiber.Ctx) error {
	search := c.Query("search")
	sortField := c.Query("sort", "created_at")
	sortDir := c.Query("dir", "desc")

	members, err := h.muc.GetAllMembersUC(c.Context(), search, sortField, sortDir)
	if err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusInternalServerError, "GetAllMembers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to get all members",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusOK, "GetAllMembers")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Members retrieved successfully",
		"data":    members,
	})
}

func (h *memberHandler) GetMemberByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "GetMemberByID")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid member id",
			"success": false,
		})
	}

	member, err := h.muc.GetMemberByIDUC(c.Context(), id)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(claimsEmail(c), status, "GetMemberByID")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to get member",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusOK, "GetMemberByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member retrieved successfully",
		"data":    member,
	})
}

func (h *memberHandler) ModifyMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "ModifyMember")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid member id",
			"success": false,
		})
	}

	var member domain.Member
	if err := c.BodyParser(&member); err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "ModifyMember")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to modify member",
		})
	}
	member.ID = id

	if err := h.muc.UpdateMemberUC(c.Context(), &member); err != nil {
		status := errStatus(err)
		config.PrintLogInfo(claimsEmail(c), status, "ModifyMember")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to modify member",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusOK, "ModifyMember")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member modified successfully",
		"data":    member,
	})
}

func (h *memberHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "DeleteMember")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid member id",
			"success": false,
		})
	}

	if err := h.muc.DeleteMemberUC(c.Context(), id); err != nil {
		status := errStatus(err)
		config.PrintLogInfo(claimsEmail(c), status, "DeleteMember")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to delete member",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusOK, "DeleteMember")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member deleted successfully",
	})
}

func (h *memberHandler) ResetValidity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "ResetValidity")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid member id",
			"success": false,
		})
	}

	member, notice, err := h.muc.ResetValidityUC(c.Context(), id)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(claimsEmail(c), status, "ResetValidity")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to reset validity",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusOK, "ResetValidity")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"message":  "Validity reset successfully",
		"data":     member,
		"whatsapp": notice,
	})
}

func (h *memberHandler) GenerateCardNumber(c *fiber.Ctx) error {
	cardNumber, err := h.muc.GenerateCardNumberUC(c.Context())
	if err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusInternalServerError, "GenerateCardNumber")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to generate card number",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusOK, "GenerateCardNumber")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Card number generated successfully",
		"data": fiber.Map{
			"card_number": cardNumber,
		},
	})
}

func (h *memberHandler) CheckCardNumber(c *fiber.Ctx) error {
	cardNumber := c.Params("number")

	var excludeID *uuid.UUID
	if raw := c.Query("exclude"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			config.PrintLogInfo(claimsEmail(c), fiber.StatusBadRequest, "CheckCardNumber")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "invalid exclude id",
				"success": false,
			})
		}
		excludeID = &id
	}

	exists, err := h.muc.CheckCardNumberUC(c.Context(), cardNumber, excludeID)
	if err != nil {
		config.PrintLogInfo(claimsEmail(c), fiber.StatusInternalServerError, "CheckCardNumber")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to check card number",
		})
	}

	config.PrintLogInfo(claimsEmail(c), fiber.StatusOK, "CheckCardNumber")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"card_number": cardNumber,
			"exists":      exists,
		},
	})
}
