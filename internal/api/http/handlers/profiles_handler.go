package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/moderation-service/internal/api/dto"
	"github.com/spec-kit/moderation-service/internal/auth"
	"github.com/spec-kit/moderation-service/internal/domain"
	"github.com/spec-kit/moderation-service/internal/service"
)

// ProfilesHandler exposes admin profile search and moderation endpoints.
type ProfilesHandler struct {
	directory  *service.DirectoryService
	moderation *service.ModerationService
}

// NewProfilesHandler constructs handler.
func NewProfilesHandler(directory *service.DirectoryService, moderation *service.ModerationService) *ProfilesHandler {
	return &ProfilesHandler{directory: directory, moderation: moderation}
}

// Search handles GET /admin/profiles/search?q=. Always answers 200 with a
// data array; search failures degrade to an empty array.
func (h *ProfilesHandler) Search(c *fiber.Ctx) error {
	results := h.directory.Search(c.Context(), c.Query("q"))
	return c.JSON(fiber.Map{"data": results})
}

// Update handles PATCH /admin/profiles/:id.
func (h *ProfilesHandler) Update(c *fiber.Ctx) error {
	var req dto.ProfileModerationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	var update domain.ProfileUpdate
	if req.Status != nil {
		status, err := domain.ParseProfileStatus(*req.Status)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		update.Status = &status
	}
	update.Type = req.Type

	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	if err := h.moderation.UpdateProfile(c.Context(), principal.Profile.ID, c.Params("id"), update); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
