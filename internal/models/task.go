// internal/models/task.go
package models

import "time"

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "Pending"
	StatusCompleted TaskStatus = "Completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

type TaskRecurrence string

const (
	RecurrenceNone   TaskRecurrence = "None"
	RecurrenceDaily  TaskRecurrence = "Daily"
	RecurrenceWeekly TaskRecurrence = "Weekly"
)

// Task represents the structure of a task in the system.
type Task struct {
	ID           int64          `json:"task_id"`
	UserID       int64          `json:"user_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	StartTime    *time.Time     `json:"start_time,omitempty"`
	EndTime      *time.Time     `json:"end_time,omitempty"`
	Location     string         `json:"location,omitempty"`
	Priority     TaskPriority   `json:"priority,omitempty"`
	Status       TaskStatus     `json:"status,omitempty"`
	Recurrence   TaskRecurrence `json:"recurrence,omitempty"`
	ReminderTime *time.Time     `json:"reminder_time,omitempty"`
}
