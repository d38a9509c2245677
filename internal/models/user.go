package models

// NotificationPreference selects the delivery channel for reminder
// notifications.
type NotificationPreference string

const (
	PreferenceEmail NotificationPreference = "Email"
	PreferenceSMS   NotificationPreference = "SMS"
	PreferencePush  NotificationPreference = "Push notifications"
)

type User struct {
	ID           int64  `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // never serialized

	NotificationPreference NotificationPreference `json:"notification_preference,omitempty"`

	// delivery targets for the SMS / push channels
	Phone          string `json:"phone,omitempty"`
	TelegramChatID int64  `json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
