package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tech-gecko/DayMinder/internal/models"
	"github.com/tech-gecko/DayMinder/internal/repositories"
	"github.com/tech-gecko/DayMinder/internal/services"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// @Summary      Register a new user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Username               string                        `json:"username" binding:"required"`
		Email                  string                        `json:"email" binding:"required,email"`
		Password               string                        `json:"password" binding:"required"`
		NotificationPreference models.NotificationPreference `json:"notification_preference"`
		Phone                  string                        `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[user][register][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields-username, email or password"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password should be at least 8 characters long"})
		return
	}

	user := &models.User{
		Username:               req.Username,
		Email:                  req.Email,
		NotificationPreference: req.NotificationPreference,
		Phone:                  req.Phone,
	}
	if err := h.service.Register(c.Request.Context(), user, req.Password); err != nil {
		log.Printf("[user][register][err] email=%q: %v", req.Email, err)
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user", "error": err.Error()})
		}
		return
	}
	log.Printf("[user][register][ok] id=%d username=%q", user.ID, user.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// @Summary      Get the caller's profile
// @Tags         Users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      404  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := currentUserID(c)

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, "profile", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Update the caller's profile
// @Tags         Users
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID := currentUserID(c)

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, "update", err)
		return
	}

	var req struct {
		Username               *string                        `json:"username"`
		Email                  *string                        `json:"email"`
		NotificationPreference *models.NotificationPreference `json:"notification_preference"`
		Phone                  *string                        `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.NotificationPreference != nil {
		user.NotificationPreference = *req.NotificationPreference
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := h.service.Update(c.Request.Context(), user); err != nil {
		log.Printf("[user][update][err] id=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// @Summary      Change the caller's password
// @Tags         Users
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/password [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password and new password are required"})
		return
	}
	if len(req.NewPassword) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password should be at least 8 characters long"})
		return
	}

	if err := h.service.UpdatePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		log.Printf("[user][password][err] id=%d: %v", userID, err)
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		case errors.Is(err, repositories.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user password", "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// @Summary      Delete the caller's account
// @Description  Requires confirm_delete; cascades to tasks and reminders
// @Tags         Users
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /users [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		ConfirmDelete bool `json:"confirm_delete"`
	}
	// missing body counts as unconfirmed
	_ = c.ShouldBindJSON(&req)
	if !req.ConfirmDelete {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account deletion not confirmed"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID); err != nil {
		h.writeError(c, "delete", err)
		return
	}
	log.Printf("[user][delete][ok] id=%d", userID)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) writeError(c *gin.Context, op string, err error) {
	log.Printf("[user][%s][err] %v", op, err)
	if errors.Is(err, repositories.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + op + " user"})
}
