// internal/services/task_service.go
package services

import (
	"context"

	"github.com/tech-gecko/DayMinder/internal/models"
	"github.com/tech-gecko/DayMinder/internal/repositories"
)

// TaskService defines the interface for task-related business logic.
// All operations are scoped to the owning user.
type TaskService interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, userID, id int64) (*models.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Task, error)
	Update(ctx context.Context, userID, id int64, updateData *models.Task) (*models.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}

type taskService struct {
	repo repositories.TaskRepository
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo repositories.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if err := s.repo.Store(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, userID, id int64) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, repositories.ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *taskService) Update(ctx context.Context, userID, id int64, updateData *models.Task) (*models.Task, error) {
	existingTask, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	existingTask.Title = updateData.Title
	existingTask.Description = updateData.Description
	existingTask.StartTime = updateData.StartTime
	existingTask.EndTime = updateData.EndTime
	existingTask.Location = updateData.Location
	existingTask.Priority = updateData.Priority
	existingTask.Status = updateData.Status
	existingTask.Recurrence = updateData.Recurrence
	existingTask.ReminderTime = updateData.ReminderTime

	if err := s.repo.Update(ctx, existingTask); err != nil {
		return nil, err
	}
	return existingTask, nil
}

func (s *taskService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	// reminders go with the task via the schema's cascade
	return s.repo.Delete(ctx, id)
}
