package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	repo := NewSessionRepository()

	session, err := repo.Create("Asha Verma", "21CSE1234")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Asha Verma", session.StudentName)
	assert.Equal(t, "21CSE1234", session.StudentID)
	require.NotNil(t, session.Reports)
	assert.True(t, session.Reports.IsEmpty())

	found, err := repo.FindByID(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, found)

	require.NoError(t, repo.Delete(session.ID))

	_, err = repo.FindByID(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionNotFound(t *testing.T) {
	repo := NewSessionRepository()

	_, err := repo.FindByID(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, repo.Delete(uuid.New()), ErrSessionNotFound)
}

func TestSessionsShareNothing(t *testing.T) {
	repo := NewSessionRepository()

	first, err := repo.Create("Asha Verma", "21CSE1234")
	require.NoError(t, err)
	second, err := repo.Create("Ravi Kumar", "21CSE5678")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotSame(t, first.Reports, second.Reports)
}
