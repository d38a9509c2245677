package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tech-gecko/DayMinder/internal/models"
	"github.com/tech-gecko/DayMinder/internal/repositories"
	"github.com/tech-gecko/DayMinder/internal/services"
	"github.com/tech-gecko/DayMinder/internal/utils"
)

type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// @Summary      Create a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Task
// @Failure      400  {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	userID := currentUserID(c)
	log.Printf("[task][create] call by userID=%d", userID)

	var req struct {
		Title        string                `json:"title" binding:"required"`
		Description  string                `json:"description"`
		StartTime    string                `json:"start_time"` // ISO-8601
		EndTime      string                `json:"end_time"`
		Location     string                `json:"location"`
		Priority     models.TaskPriority   `json:"priority"`   // Low|Medium|High
		Status       models.TaskStatus     `json:"status"`     // Pending|Completed
		Recurrence   models.TaskRecurrence `json:"recurrence"` // None|Daily|Weekly
		ReminderTime string                `json:"reminder_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing title"})
		return
	}

	start, ok := h.parseOptionalTime(c, "start_time", req.StartTime)
	if !ok {
		return
	}
	end, ok := h.parseOptionalTime(c, "end_time", req.EndTime)
	if !ok {
		return
	}
	remind, ok := h.parseOptionalTime(c, "reminder_time", req.ReminderTime)
	if !ok {
		return
	}

	task := &models.Task{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    start,
		EndTime:      end,
		Location:     req.Location,
		Priority:     req.Priority,
		Status:       req.Status,
		Recurrence:   req.Recurrence,
		ReminderTime: remind,
	}

	createdTask, err := h.service.Create(c.Request.Context(), task)
	if err != nil {
		log.Printf("[task][create][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create task", "error": err.Error()})
		return
	}
	log.Printf("[task][create][ok] id=%d title=%q", createdTask.ID, createdTask.Title)
	c.JSON(http.StatusCreated, createdTask)
}

// @Summary      Get a task
// @Tags         Tasks
// @Produce      json
// @Param        task_id  path  int  true  "Task ID"
// @Success      200  {object}  models.Task
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{task_id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	userID := currentUserID(c)

	id, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task_id"})
		return
	}

	task, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, "getByID", id, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary      List the caller's tasks
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}  models.Task
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	userID := currentUserID(c)
	log.Printf("[task][list] call by userID=%d", userID)

	tasks, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[task][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tasks"})
		return
	}
	log.Printf("[task][list][ok] count=%d", len(tasks))
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Update a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        task_id  path  int  true  "Task ID"
// @Success      200  {object}  models.Task
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{task_id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	userID := currentUserID(c)

	id, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task_id"})
		return
	}
	log.Printf("[task][update] call by userID=%d id=%d", userID, id)

	current, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, "update", id, err)
		return
	}

	var req struct {
		Title        *string                `json:"title"`
		Description  *string                `json:"description"`
		StartTime    *string                `json:"start_time"`
		EndTime      *string                `json:"end_time"`
		Location     *string                `json:"location"`
		Priority     *models.TaskPriority   `json:"priority"`
		Status       *models.TaskStatus     `json:"status"`
		Recurrence   *models.TaskRecurrence `json:"recurrence"`
		ReminderTime *string                `json:"reminder_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := *current

	if req.Title != nil {
		update.Title = *req.Title
	}
	if req.Description != nil {
		update.Description = *req.Description
	}
	if req.Location != nil {
		update.Location = *req.Location
	}
	if req.Priority != nil {
		update.Priority = *req.Priority
	}
	if req.Status != nil {
		update.Status = *req.Status
	}
	if req.Recurrence != nil {
		update.Recurrence = *req.Recurrence
	}
	if req.StartTime != nil {
		if t, ok := h.parseOptionalTime(c, "start_time", *req.StartTime); ok {
			update.StartTime = t
		} else {
			return
		}
	}
	if req.EndTime != nil {
		if t, ok := h.parseOptionalTime(c, "end_time", *req.EndTime); ok {
			update.EndTime = t
		} else {
			return
		}
	}
	if req.ReminderTime != nil {
		if t, ok := h.parseOptionalTime(c, "reminder_time", *req.ReminderTime); ok {
			update.ReminderTime = t
		} else {
			return
		}
	}

	updatedTask, err := h.service.Update(c.Request.Context(), userID, id, &update)
	if err != nil {
		h.writeError(c, "update", id, err)
		return
	}
	log.Printf("[task][update][ok] id=%d", id)
	c.JSON(http.StatusOK, updatedTask)
}

// @Summary      Delete a task and its reminders
// @Tags         Tasks
// @Param        task_id  path  int  true  "Task ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{task_id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)

	id, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task_id"})
		return
	}
	log.Printf("[task][delete] call by userID=%d id=%d", userID, id)

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, "delete", id, err)
		return
	}
	log.Printf("[task][delete][ok] id=%d", id)
	c.Status(http.StatusNoContent)
}

// empty string means "not set"; a bad value is reported and ok=false
func (h *TaskHandler) parseOptionalTime(c *gin.Context, field, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := utils.ParseUTC(raw)
	if err != nil {
		log.Printf("[task][err] invalid %s=%q: %v", field, raw, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + field + " (ISO-8601)"})
		return nil, false
	}
	return &t, true
}

func (h *TaskHandler) writeError(c *gin.Context, op string, id int64, err error) {
	log.Printf("[task][%s][err] id=%d: %v", op, id, err)
	if errors.Is(err, repositories.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + op + " task"})
}
