package services

import (
	"context"
	"log"
	"time"

	"github.com/tech-gecko/DayMinder/internal/models"
	"github.com/tech-gecko/DayMinder/internal/repositories"
	"github.com/tech-gecko/DayMinder/internal/utils"
)

// ReminderUpdate carries a partial update; nil fields keep their prior value.
type ReminderUpdate struct {
	ReminderTime *string
	Sent         *bool
	SentTime     *time.Time
}

// ReminderService owns the reminder lifecycle: validate, persist, then
// notify. Persistence is all-or-nothing; notification runs strictly after a
// durable commit and its failure never undoes the commit. The notified flag
// tells the handler whether delivery succeeded.
type ReminderService interface {
	Create(ctx context.Context, userID, taskID int64, rawTime string) (reminder *models.Reminder, notified bool, err error)
	GetByID(ctx context.Context, userID, id int64) (*models.Reminder, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Reminder, error)
	ListByTask(ctx context.Context, userID, taskID int64) ([]models.Reminder, error)
	Update(ctx context.Context, userID, id int64, update *ReminderUpdate) (reminder *models.Reminder, notified bool, err error)
	Delete(ctx context.Context, userID, id int64) error
}

type reminderService struct {
	reminders repositories.ReminderRepository
	tasks     repositories.TaskRepository
	users     repositories.UserRepository
	notifier  ReminderNotifier
}

func NewReminderService(
	reminders repositories.ReminderRepository,
	tasks repositories.TaskRepository,
	users repositories.UserRepository,
	notifier ReminderNotifier,
) ReminderService {
	return &reminderService{reminders: reminders, tasks: tasks, users: users, notifier: notifier}
}

func (s *reminderService) Create(ctx context.Context, userID, taskID int64, rawTime string) (*models.Reminder, bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, false, err
	}
	if task.UserID != userID {
		// do not leak other users' task ids
		return nil, false, repositories.ErrTaskNotFound
	}

	utcTime, err := utils.NormalizeReminderTime(rawTime, time.Now())
	if err != nil {
		return nil, false, err
	}

	// sent/sent_time are server-controlled at creation; client values are
	// ignored so a caller cannot mark its own reminder delivered
	reminder := &models.Reminder{
		TaskID:       taskID,
		ReminderTime: utcTime,
		Sent:         false,
		SentTime:     nil,
	}
	if err := s.reminders.Store(ctx, reminder); err != nil {
		return nil, false, err
	}

	notifyErr := s.notifier.NotifyReminderCreated(ctx, user, reminder)
	if notifyErr != nil {
		log.Printf("[reminder][create] id=%d persisted, notification failed: %v", reminder.ID, notifyErr)
	}
	return reminder, notifyErr == nil, nil
}

func (s *reminderService) GetByID(ctx context.Context, userID, id int64) (*models.Reminder, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.reminders.FindByIDForUser(ctx, id, userID)
}

func (s *reminderService) ListByUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.reminders.FindByUser(ctx, userID)
}

func (s *reminderService) ListByTask(ctx context.Context, userID, taskID int64) ([]models.Reminder, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.reminders.FindByTask(ctx, taskID, userID)
}

func (s *reminderService) Update(ctx context.Context, userID, id int64, update *ReminderUpdate) (*models.Reminder, bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	reminder, err := s.reminders.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, false, err
	}

	if update.ReminderTime != nil {
		utcTime, err := utils.NormalizeReminderTime(*update.ReminderTime, time.Now())
		if err != nil {
			return nil, false, err
		}
		reminder.ReminderTime = utcTime
	}
	if update.Sent != nil {
		reminder.Sent = *update.Sent
	}
	if update.SentTime != nil {
		t := update.SentTime.UTC()
		reminder.SentTime = &t
	}

	if err := s.reminders.Update(ctx, reminder); err != nil {
		return nil, false, err
	}

	notifyErr := s.notifier.NotifyReminderUpdated(ctx, user, reminder)
	if notifyErr != nil {
		log.Printf("[reminder][update] id=%d persisted, notification failed: %v", reminder.ID, notifyErr)
	}
	return reminder, notifyErr == nil, nil
}

func (s *reminderService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.reminders.FindByIDForUser(ctx, id, userID); err != nil {
		return err
	}
	// no notification on delete
	return s.reminders.Delete(ctx, id)
}
