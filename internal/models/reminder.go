package models

import "time"

// Reminder is a scheduled notification tied to a task and a UTC instant.
// ReminderTime is always stored in UTC; Sent/SentTime are written by the
// delivery logic, not by clients at creation time.
type Reminder struct {
	ID           int64      `json:"reminder_id"`
	TaskID       int64      `json:"task_id"`
	ReminderTime time.Time  `json:"reminder_time"`
	Sent         bool       `json:"sent"`
	SentTime     *time.Time `json:"sent_time"`
}
