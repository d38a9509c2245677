package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tech-gecko/DayMinder/internal/models"
	"github.com/tech-gecko/DayMinder/internal/repositories"
	"github.com/tech-gecko/DayMinder/internal/services"
	"github.com/tech-gecko/DayMinder/internal/utils"
)

type stubReminderService struct {
	reminder *models.Reminder
	list     []models.Reminder
	notified bool
	err      error

	lastUpdate *services.ReminderUpdate
}

func (s *stubReminderService) Create(ctx context.Context, userID, taskID int64, rawTime string) (*models.Reminder, bool, error) {
	return s.reminder, s.notified, s.err
}

func (s *stubReminderService) GetByID(ctx context.Context, userID, id int64) (*models.Reminder, error) {
	return s.reminder, s.err
}

func (s *stubReminderService) ListByUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	return s.list, s.err
}

func (s *stubReminderService) ListByTask(ctx context.Context, userID, taskID int64) ([]models.Reminder, error) {
	return s.list, s.err
}

func (s *stubReminderService) Update(ctx context.Context, userID, id int64, update *services.ReminderUpdate) (*models.Reminder, bool, error) {
	s.lastUpdate = update
	return s.reminder, s.notified, s.err
}

func (s *stubReminderService) Delete(ctx context.Context, userID, id int64) error {
	return s.err
}

func newTestRouter(svc services.ReminderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", int64(1))
		c.Next()
	})
	h := NewReminderHandler(svc)
	r.POST("/reminders", h.Create)
	r.GET("/reminders", h.ListByUser)
	r.GET("/reminders/:reminder_id", h.GetByID)
	r.PUT("/reminders/:reminder_id", h.Update)
	r.DELETE("/reminders/:reminder_id", h.Delete)
	r.GET("/tasks/:task_id/reminders", h.ListByTask)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReminderHandlerCreate(t *testing.T) {
	reminder := &models.Reminder{
		ID:           5,
		TaskID:       1,
		ReminderTime: time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC),
	}

	t.Run("created", func(t *testing.T) {
		r := newTestRouter(&stubReminderService{reminder: reminder, notified: true})

		w := doJSON(t, r, http.MethodPost, "/reminders", gin.H{
			"task_id":       1,
			"reminder_time": "2030-01-01T10:00:00+02:00",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var got models.Reminder
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(5), got.ID)
		assert.Equal(t, "2030-01-01T08:00:00Z", got.ReminderTime.Format(time.RFC3339))
		assert.False(t, got.Sent)
	})

	t.Run("missing reminder_time is 400", func(t *testing.T) {
		r := newTestRouter(&stubReminderService{reminder: reminder, notified: true})

		w := doJSON(t, r, http.MethodPost, "/reminders", gin.H{"task_id": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing task is 404", func(t *testing.T) {
		r := newTestRouter(&stubReminderService{err: repositories.ErrTaskNotFound})

		w := doJSON(t, r, http.MethodPost, "/reminders", gin.H{
			"task_id":       999,
			"reminder_time": "2030-01-01T10:00:00Z",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Task not found")
	})

	t.Run("past time is 400", func(t *testing.T) {
		r := newTestRouter(&stubReminderService{err: utils.ErrPastTime})

		w := doJSON(t, r, http.MethodPost, "/reminders", gin.H{
			"task_id":       1,
			"reminder_time": "2000-01-01T00:00:00Z",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "past")
	})

	t.Run("degraded success still returns the reminder", func(t *testing.T) {
		r := newTestRouter(&stubReminderService{reminder: reminder, notified: false})

		w := doJSON(t, r, http.MethodPost, "/reminders", gin.H{
			"task_id":       1,
			"reminder_time": "2030-01-01T10:00:00Z",
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body struct {
			Message  string          `json:"message"`
			Reminder models.Reminder `json:"reminder"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.Message, "failed to send notification")
		assert.Equal(t, int64(5), body.Reminder.ID)
	})
}

func TestReminderHandlerList(t *testing.T) {
	t.Run("empty list is 200 with empty array", func(t *testing.T) {
		r := newTestRouter(&stubReminderService{list: []models.Reminder{}})

		w := doJSON(t, r, http.MethodGet, "/reminders", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("by task with bad id is 400", func(t *testing.T) {
		r := newTestRouter(&stubReminderService{})

		w := doJSON(t, r, http.MethodGet, "/tasks/abc/reminders", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReminderHandlerUpdate(t *testing.T) {
	reminder := &models.Reminder{ID: 5, TaskID: 1, Sent: true,
		ReminderTime: time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)}

	t.Run("sent-only payload reaches the service untouched", func(t *testing.T) {
		svc := &stubReminderService{reminder: reminder, notified: true}
		r := newTestRouter(svc)

		w := doJSON(t, r, http.MethodPut, "/reminders/5", gin.H{"sent": true})
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.lastUpdate)
		assert.Nil(t, svc.lastUpdate.ReminderTime)
		require.NotNil(t, svc.lastUpdate.Sent)
		assert.True(t, *svc.lastUpdate.Sent)
	})

	t.Run("bad sent_time is 400", func(t *testing.T) {
		r := newTestRouter(&stubReminderService{reminder: reminder, notified: true})

		w := doJSON(t, r, http.MethodPut, "/reminders/5", gin.H{"sent_time": "yesterday"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing reminder is 404", func(t *testing.T) {
		r := newTestRouter(&stubReminderService{err: repositories.ErrReminderNotFound})

		w := doJSON(t, r, http.MethodPut, "/reminders/5", gin.H{"sent": true})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReminderHandlerDelete(t *testing.T) {
	t.Run("deleted with confirmation message", func(t *testing.T) {
		r := newTestRouter(&stubReminderService{})

		w := doJSON(t, r, http.MethodDelete, "/reminders/5", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Reminder with ID 5 successfully deleted")
	})

	t.Run("missing reminder is 404", func(t *testing.T) {
		r := newTestRouter(&stubReminderService{err: repositories.ErrReminderNotFound})

		w := doJSON(t, r, http.MethodDelete, "/reminders/5", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
