package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tech-gecko/DayMinder/internal/models"
)

func TestGenerateAgenda(t *testing.T) {
	g := NewAgendaGenerator()

	end := time.Date(2030, 1, 2, 17, 0, 0, 0, time.UTC)
	out, err := g.GenerateAgenda(AgendaData{
		Username:    "alice",
		GeneratedAt: time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
		Tasks: []models.Task{
			{ID: 1, UserID: 1, Title: "write report", Status: models.StatusPending, Priority: models.PriorityHigh, EndTime: &end},
		},
		Reminders: []models.Reminder{
			{ID: 1, TaskID: 1, ReminderTime: time.Date(2030, 1, 2, 9, 0, 0, 0, time.UTC)},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateAgendaEmpty(t *testing.T) {
	g := NewAgendaGenerator()

	out, err := g.GenerateAgenda(AgendaData{Username: "bob", GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
