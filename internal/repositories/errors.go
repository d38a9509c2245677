package repositories

import "errors"

// Sentinel errors shared by the repositories; handlers match them with
// errors.Is to pick the HTTP status.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrReminderNotFound = errors.New("reminder not found")
)
