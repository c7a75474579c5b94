package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"scet/student-analytics/internal/models"
	"scet/student-analytics/internal/repositories"
	"scet/student-analytics/internal/services"
)

type AnalyzeHandler struct {
	sessionRepo repositories.SessionRepository
	analyzer    services.AnalyzerService
}

func NewAnalyzeHandler(
	sessionRepo repositories.SessionRepository,
	analyzer services.AnalyzerService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		sessionRepo: sessionRepo,
		analyzer:    analyzer,
	}
}

// HandleAnalyze handles POST /sessions/:id/analyze/:category. The
// action runs to completion synchronously; a collaborator failure
// stores nothing and surfaces the diagnostic verbatim.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, err := h.sessionRepo.FindByID(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	category, err := models.ParseCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown category; expected dropout, placement, or exam",
		})
	}

	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Profile) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "profile is required",
		})
	}

	record, mode, err := h.analyzer.Analyze(c.Context(), session, category, req.Profile)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	response := models.AnalyzeResponse{
		Category: category,
		Mode:     mode,
		Severity: string(services.ClassifyTier(record.TierLabel)),
		Record:   record,
	}

	if policy := services.AttendancePolicyFor(category, record.Profile); policy != nil {
		response.Attendance = &models.AttendanceBlock{
			Label:    policy.Label,
			Message:  policy.Message,
			Severity: string(policy.Severity),
		}
	}

	return c.JSON(response)
}
