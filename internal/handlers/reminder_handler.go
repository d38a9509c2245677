package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tech-gecko/DayMinder/internal/repositories"
	"github.com/tech-gecko/DayMinder/internal/services"
	"github.com/tech-gecko/DayMinder/internal/utils"
)

type ReminderHandler struct {
	service services.ReminderService
}

func NewReminderHandler(service services.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// @Summary      Create a reminder
// @Description  Creates a reminder for one of the caller's tasks and sends a notification
// @Tags         Reminders
// @Accept       json
// @Produce      json
// @Param        reminder  body      object  true  "task_id and reminder_time (ISO-8601)"
// @Success      201  {object}  models.Reminder
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /reminders [post]
func (h *ReminderHandler) Create(c *gin.Context) {
	userID := currentUserID(c)
	log.Printf("[reminder][create] call by userID=%d", userID)

	var req struct {
		TaskID       int64  `json:"task_id" binding:"required"`
		ReminderTime string `json:"reminder_time" binding:"required"`
		// sent/sent_time from the client are deliberately not read here;
		// they are set by the delivery logic only
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[reminder][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, notified, err := h.service.Create(c.Request.Context(), userID, req.TaskID, req.ReminderTime)
	if err != nil {
		h.writeError(c, "create", err)
		return
	}
	if !notified {
		// persisted but undelivered: degraded success, the row stays
		log.Printf("[reminder][create][degraded] id=%d notification failed", reminder.ID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":  "Reminder created, but failed to send notification",
			"reminder": reminder,
		})
		return
	}
	log.Printf("[reminder][create][ok] id=%d task_id=%d time=%s", reminder.ID, reminder.TaskID, reminder.ReminderTime)
	c.JSON(http.StatusCreated, reminder)
}

// @Summary      List the caller's reminders
// @Tags         Reminders
// @Produce      json
// @Success      200  {array}  models.Reminder
// @Failure      401  {object}  map[string]string
// @Router       /reminders [get]
func (h *ReminderHandler) ListByUser(c *gin.Context) {
	userID := currentUserID(c)
	log.Printf("[reminder][list] call by userID=%d", userID)

	reminders, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, "list", err)
		return
	}
	log.Printf("[reminder][list][ok] count=%d", len(reminders))
	c.JSON(http.StatusOK, reminders)
}

// @Summary      List reminders for a task
// @Tags         Reminders
// @Produce      json
// @Param        task_id  path  int  true  "Task ID"
// @Success      200  {array}  models.Reminder
// @Failure      401  {object}  map[string]string
// @Router       /tasks/{task_id}/reminders [get]
func (h *ReminderHandler) ListByTask(c *gin.Context) {
	userID := currentUserID(c)

	taskID, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil {
		log.Printf("[reminder][listByTask][err] invalid task_id: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task_id"})
		return
	}
	log.Printf("[reminder][listByTask] call by userID=%d task_id=%d", userID, taskID)

	reminders, err := h.service.ListByTask(c.Request.Context(), userID, taskID)
	if err != nil {
		h.writeError(c, "listByTask", err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// @Summary      Update a reminder
// @Description  Partial update; reminder_time is re-validated when present
// @Tags         Reminders
// @Accept       json
// @Produce      json
// @Param        reminder_id  path  int  true  "Reminder ID"
// @Success      200  {object}  models.Reminder
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /reminders/{reminder_id} [put]
func (h *ReminderHandler) Update(c *gin.Context) {
	userID := currentUserID(c)

	id, err := strconv.ParseInt(c.Param("reminder_id"), 10, 64)
	if err != nil {
		log.Printf("[reminder][update][err] invalid id: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder_id"})
		return
	}
	log.Printf("[reminder][update] call by userID=%d id=%d", userID, id)

	var req struct {
		ReminderTime *string `json:"reminder_time"`
		Sent         *bool   `json:"sent"`
		SentTime     *string `json:"sent_time"` // RFC3339
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[reminder][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := &services.ReminderUpdate{
		ReminderTime: req.ReminderTime,
		Sent:         req.Sent,
	}
	if req.SentTime != nil {
		t, err := utils.ParseUTC(*req.SentTime)
		if err != nil {
			log.Printf("[reminder][update][err] invalid sent_time=%q: %v", *req.SentTime, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sent_time"})
			return
		}
		update.SentTime = &t
	}

	reminder, notified, err := h.service.Update(c.Request.Context(), userID, id, update)
	if err != nil {
		h.writeError(c, "update", err)
		return
	}
	if !notified {
		log.Printf("[reminder][update][degraded] id=%d notification failed", reminder.ID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":  "Reminder updated, but failed to send notification",
			"reminder": reminder,
		})
		return
	}
	log.Printf("[reminder][update][ok] id=%d", id)
	c.JSON(http.StatusOK, reminder)
}

// @Summary      Delete a reminder
// @Tags         Reminders
// @Produce      json
// @Param        reminder_id  path  int  true  "Reminder ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reminders/{reminder_id} [delete]
func (h *ReminderHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)

	id, err := strconv.ParseInt(c.Param("reminder_id"), 10, 64)
	if err != nil {
		log.Printf("[reminder][delete][err] invalid id: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder_id"})
		return
	}
	log.Printf("[reminder][delete] call by userID=%d id=%d", userID, id)

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, "delete", err)
		return
	}
	log.Printf("[reminder][delete][ok] id=%d", id)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Reminder with ID %d successfully deleted", id)})
}

// GET /reminders/:reminder_id
func (h *ReminderHandler) GetByID(c *gin.Context) {
	userID := currentUserID(c)

	id, err := strconv.ParseInt(c.Param("reminder_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder_id"})
		return
	}

	reminder, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, "getByID", err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}

func (h *ReminderHandler) writeError(c *gin.Context, op string, err error) {
	log.Printf("[reminder][%s][err] %v", op, err)
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, repositories.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, repositories.ErrReminderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found for the current user"})
	case errors.Is(err, utils.ErrPastTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reminder time cannot be in the past"})
	case errors.Is(err, utils.ErrInvalidTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder_time (ISO-8601)"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to %s reminder", op)})
	}
}
