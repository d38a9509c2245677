package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tech-gecko/DayMinder/internal/pdf"
	"github.com/tech-gecko/DayMinder/internal/services"
)

type ReportHandler struct {
	users     services.UserService
	tasks     services.TaskService
	reminders services.ReminderService
	generator pdf.Generator
}

func NewReportHandler(users services.UserService, tasks services.TaskService, reminders services.ReminderService, generator pdf.Generator) *ReportHandler {
	return &ReportHandler{users: users, tasks: tasks, reminders: reminders, generator: generator}
}

// @Summary      Agenda PDF export
// @Description  Renders the caller's tasks and reminders as a PDF
// @Tags         Reports
// @Produce      application/pdf
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /reports/agenda [get]
func (h *ReportHandler) Agenda(c *gin.Context) {
	userID := currentUserID(c)
	log.Printf("[report][agenda] call by userID=%d", userID)

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	tasks, err := h.tasks.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[report][agenda][err] tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build agenda"})
		return
	}
	reminders, err := h.reminders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[report][agenda][err] reminders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build agenda"})
		return
	}

	out, err := h.generator.GenerateAgenda(pdf.AgendaData{
		Username:    user.Username,
		GeneratedAt: time.Now(),
		Tasks:       tasks,
		Reminders:   reminders,
	})
	if err != nil {
		log.Printf("[report][agenda][err] render: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build agenda"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="agenda.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
