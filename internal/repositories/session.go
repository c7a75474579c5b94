package repositories

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"scet/student-analytics/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(studentName, studentID string) (*models.Session, error)
	FindByID(id uuid.UUID) (*models.Session, error)
	Delete(id uuid.UUID) error
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
}

// NewSessionRepository returns an in-memory session registry. Sessions
// are never persisted; ending a session discards its report store.
func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*models.Session),
	}
}

func (r *sessionRepository) Create(studentName, studentID string) (*models.Session, error) {
	session := &models.Session{
		ID:          uuid.New(),
		StudentName: studentName,
		StudentID:   studentID,
		CreatedAt:   time.Now(),
		Reports:     models.NewReportStore(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session

	return session, nil
}

func (r *sessionRepository) FindByID(id uuid.UUID) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *sessionRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}
