package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/moderation-service/internal/api/dto"
	"github.com/spec-kit/moderation-service/internal/auth"
	"github.com/spec-kit/moderation-service/internal/domain"
	"github.com/spec-kit/moderation-service/internal/service"
)

// ReportsHandler exposes verification report adjudication.
type ReportsHandler struct {
	moderation *service.ModerationService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(moderation *service.ModerationService) *ReportsHandler {
	return &ReportsHandler{moderation: moderation}
}

// Adjudicate handles PATCH /admin/verification-reports/:id.
func (h *ReportsHandler) Adjudicate(c *fiber.Ctx) error {
	var req dto.ReportAdjudicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	status, err := domain.ParseReportStatus(req.Status)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	if err := h.moderation.AdjudicateReport(c.Context(), principal.Profile.ID, c.Params("id"), status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
