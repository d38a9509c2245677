package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tech-gecko/DayMinder/internal/models"
	"github.com/tech-gecko/DayMinder/internal/utils"
)

// ReminderNotifier delivers a notice about a reminder to its owner.
// Delivery is best-effort: callers report a failure but never roll back the
// committed reminder because of one.
type ReminderNotifier interface {
	NotifyReminderCreated(ctx context.Context, user *models.User, reminder *models.Reminder) error
	NotifyReminderUpdated(ctx context.Context, user *models.User, reminder *models.Reminder) error
}

type notificationService struct {
	email    EmailService
	sms      *utils.SMSClient
	telegram *TelegramService
	timeout  time.Duration
}

func NewNotificationService(email EmailService, sms *utils.SMSClient, telegram *TelegramService, timeout time.Duration) ReminderNotifier {
	return &notificationService{email: email, sms: sms, telegram: telegram, timeout: timeout}
}

func (s *notificationService) NotifyReminderCreated(ctx context.Context, user *models.User, reminder *models.Reminder) error {
	subject := "New Reminder Created"
	body := fmt.Sprintf("Dear %s,\n\nYou have a new reminder set for %s.",
		user.Username, reminder.ReminderTime.Format(time.RFC3339))
	return s.dispatch(ctx, user, subject, body)
}

func (s *notificationService) NotifyReminderUpdated(ctx context.Context, user *models.User, reminder *models.Reminder) error {
	subject := "Reminder Updated"
	body := fmt.Sprintf("Dear %s,\n\nYour reminder has been updated to %s.",
		user.Username, reminder.ReminderTime.Format(time.RFC3339))
	return s.dispatch(ctx, user, subject, body)
}

// dispatch picks the channel from the user's notification preference (email
// when unset) and bounds the send with the configured timeout so a slow
// provider cannot block the request worker indefinitely.
func (s *notificationService) dispatch(ctx context.Context, user *models.User, subject, body string) error {
	send := func() error {
		switch user.NotificationPreference {
		case models.PreferenceSMS:
			if user.Phone == "" {
				return fmt.Errorf("user %d has SMS preference but no phone", user.ID)
			}
			return s.sms.SendSMS(user.Phone, subject+": "+body)
		case models.PreferencePush:
			return s.telegram.SendMessage(user.TelegramChatID, subject+"\n"+body)
		default:
			return s.email.SendEmail(user.Email, subject, body)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- send() }()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("[notify][err] userID=%d pref=%q: %v", user.ID, user.NotificationPreference, err)
		}
		return err
	case <-ctx.Done():
		log.Printf("[notify][timeout] userID=%d pref=%q after %s", user.ID, user.NotificationPreference, s.timeout)
		return ctx.Err()
	}
}
