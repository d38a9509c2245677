package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tech-gecko/DayMinder/internal/handlers"
	"github.com/tech-gecko/DayMinder/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtKey []byte,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	reminderHandler *handlers.ReminderHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/users", userHandler.Register)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtKey))

	// USERS
	users := r.Group("/users")
	{
		users.GET("", userHandler.GetProfile)
		users.PUT("", userHandler.Update)
		users.PUT("/password", userHandler.UpdatePassword)
		users.DELETE("", userHandler.Delete)
	}

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.POST("", taskHandler.Create)
		tasks.GET("", taskHandler.List)
		tasks.GET("/:task_id", taskHandler.GetByID)
		tasks.PUT("/:task_id", taskHandler.Update)
		tasks.DELETE("/:task_id", taskHandler.Delete)
		tasks.GET("/:task_id/reminders", reminderHandler.ListByTask)
	}

	// REMINDERS
	reminders := r.Group("/reminders")
	{
		reminders.POST("", reminderHandler.Create)
		reminders.GET("", reminderHandler.ListByUser)
		reminders.GET("/:reminder_id", reminderHandler.GetByID)
		reminders.PUT("/:reminder_id", reminderHandler.Update)
		reminders.DELETE("/:reminder_id", reminderHandler.Delete)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/agenda", reportHandler.Agenda)
	}

	return r
}
