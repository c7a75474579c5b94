package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"scet/student-analytics/internal/repositories"
	"scet/student-analytics/internal/services"
)

type ReportHandler struct {
	sessionRepo   repositories.SessionRepository
	reportService services.ReportService
	reportStorage services.ReportStorageService
}

func NewReportHandler(
	sessionRepo repositories.SessionRepository,
	reportService services.ReportService,
	reportStorage services.ReportStorageService,
) *ReportHandler {
	return &ReportHandler{
		sessionRepo:   sessionRepo,
		reportService: reportService,
		reportStorage: reportStorage,
	}
}

// HandleGenerate handles POST /sessions/:id/report. It composes the PDF
// from the session's accumulated records, keeps a copy under the report
// output directory, and streams the bytes as an attachment.
func (h *ReportHandler) HandleGenerate(c *fiber.Ctx) error {
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

	data, err := h.reportService.Compose(session.StudentName, session.StudentID, session.Reports)
	if err != nil {
		if errors.Is(err, services.ErrEmptyReport) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No analysis data found. Please run at least one prediction first.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate report",
		})
	}

	filename, path, err := h.reportStorage.SaveReport(session.StudentName, data)
	if err != nil {
		// The download still succeeds when the local copy cannot be kept.
		log.Printf("⚠️  Failed to save report copy: %v\n", err)
		filename = h.reportStorage.ReportFilename(session.StudentName)
	} else {
		log.Printf("💾 Report saved to %s\n", path)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
