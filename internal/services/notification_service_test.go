package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tech-gecko/DayMinder/internal/models"
	"github.com/tech-gecko/DayMinder/internal/utils"
)

type fakeEmail struct {
	sent  []string // "to|subject"
	delay time.Duration
	err   error
}

func (f *fakeEmail) SendEmail(to, subject, body string) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.sent = append(f.sent, to+"|"+subject)
	return f.err
}

func newNotifyFixture(email *fakeEmail, timeout time.Duration) ReminderNotifier {
	sms := utils.NewSMSClient("", "", "", true) // dry-run, no network
	tg := NewTelegramService("")                // unconfigured
	return NewNotificationService(email, sms, tg, timeout)
}

func testReminder() *models.Reminder {
	return &models.Reminder{ID: 7, TaskID: 1, ReminderTime: time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)}
}

func TestNotificationDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("email is the default channel", func(t *testing.T) {
		email := &fakeEmail{}
		n := newNotifyFixture(email, time.Second)

		user := &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}
		require.NoError(t, n.NotifyReminderCreated(ctx, user, testReminder()))
		require.Len(t, email.sent, 1)
		assert.Equal(t, "alice@example.com|New Reminder Created", email.sent[0])
	})

	t.Run("explicit email preference", func(t *testing.T) {
		email := &fakeEmail{}
		n := newNotifyFixture(email, time.Second)

		user := &models.User{ID: 1, Username: "alice", Email: "alice@example.com", NotificationPreference: models.PreferenceEmail}
		require.NoError(t, n.NotifyReminderUpdated(ctx, user, testReminder()))
		require.Len(t, email.sent, 1)
		assert.Equal(t, "alice@example.com|Reminder Updated", email.sent[0])
	})

	t.Run("sms preference uses the sms client", func(t *testing.T) {
		email := &fakeEmail{}
		n := newNotifyFixture(email, time.Second)

		user := &models.User{ID: 1, Username: "alice", Phone: "+77010000000", NotificationPreference: models.PreferenceSMS}
		require.NoError(t, n.NotifyReminderCreated(ctx, user, testReminder()))
		assert.Empty(t, email.sent)
	})

	t.Run("sms preference without a phone fails", func(t *testing.T) {
		n := newNotifyFixture(&fakeEmail{}, time.Second)

		user := &models.User{ID: 1, Username: "alice", NotificationPreference: models.PreferenceSMS}
		assert.Error(t, n.NotifyReminderCreated(ctx, user, testReminder()))
	})

	t.Run("push without a linked chat fails", func(t *testing.T) {
		n := newNotifyFixture(&fakeEmail{}, time.Second)

		user := &models.User{ID: 1, Username: "alice", NotificationPreference: models.PreferencePush}
		assert.Error(t, n.NotifyReminderCreated(ctx, user, testReminder()))
	})

	t.Run("slow send is cut off by the timeout", func(t *testing.T) {
		email := &fakeEmail{delay: 200 * time.Millisecond}
		n := newNotifyFixture(email, 20*time.Millisecond)

		user := &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}
		err := n.NotifyReminderCreated(ctx, user, testReminder())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
