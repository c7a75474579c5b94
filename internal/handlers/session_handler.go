package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"scet/student-analytics/internal/models"
	"scet/student-analytics/internal/repositories"
)

type SessionHandler struct {
	sessionRepo repositories.SessionRepository
}

func NewSessionHandler(sessionRepo repositories.SessionRepository) *SessionHandler {
	return &SessionHandler{
		sessionRepo: sessionRepo,
	}
}

// HandleCreate handles POST /sessions
func (h *SessionHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateSessionRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	req.StudentName = strings.TrimSpace(req.StudentName)
	req.StudentID = strings.TrimSpace(req.StudentID)

	if req.StudentName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "student_name is required",
		})
	}

	if req.StudentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "student_id is required",
		})
	}

	session, err := h.sessionRepo.Create(req.StudentName, req.StudentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.SessionResponse{
		ID:          session.ID.String(),
		StudentName: session.StudentName,
		StudentID:   session.StudentID,
		CreatedAt:   session.CreatedAt,
	})
}

// HandleGet handles GET /sessions/:id
func (h *SessionHandler) HandleGet(c *fiber.Ctx) error {
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

	return c.JSON(models.SessionSnapshotResponse{
		ID:          session.ID.String(),
		StudentName: session.StudentName,
		StudentID:   session.StudentID,
		CreatedAt:   session.CreatedAt,
		Records:     session.Reports.Records(),
		IsEmpty:     session.Reports.IsEmpty(),
	})
}

// HandleDelete handles DELETE /sessions/:id. Ending the session is the
// only way its report store is cleared.
func (h *SessionHandler) HandleDelete(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	if err := h.sessionRepo.Delete(sessionID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
