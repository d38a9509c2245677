package repositories

import (
	"context"
	"database/sql"

	"github.com/tech-gecko/DayMinder/internal/models"
)

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	FindByUser(ctx context.Context, userID int64) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	// Delete removes the task; the schema cascades to its reminders.
	Delete(ctx context.Context, id int64) error
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `task_id, user_id, title, description, start_time, end_time,
	location, priority, status, recurrence, reminder_time`

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (
			user_id, title, description, start_time, end_time,
			location, priority, status, recurrence, reminder_time
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING task_id`
	return r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, nullString(task.Description),
		task.StartTime, task.EndTime, nullString(task.Location),
		nullString(string(task.Priority)), nullString(string(task.Status)),
		nullString(string(task.Recurrence)), task.ReminderTime,
	).Scan(&task.ID)
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1`
	task := &models.Task{}
	var description, location, priority, status, recurrence sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.UserID, &task.Title, &description,
		&task.StartTime, &task.EndTime, &location,
		&priority, &status, &recurrence, &task.ReminderTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	task.Description = description.String
	task.Location = location.String
	task.Priority = models.TaskPriority(priority.String)
	task.Status = models.TaskStatus(status.String)
	task.Recurrence = models.TaskRecurrence(recurrence.String)
	return task, nil
}

func (r *taskRepository) FindByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY task_id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		var description, location, priority, status, recurrence sql.NullString
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &description,
			&t.StartTime, &t.EndTime, &location,
			&priority, &status, &recurrence, &t.ReminderTime,
		); err != nil {
			return nil, err
		}
		t.Description = description.String
		t.Location = location.String
		t.Priority = models.TaskPriority(priority.String)
		t.Status = models.TaskStatus(status.String)
		t.Recurrence = models.TaskRecurrence(recurrence.String)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks SET
			title=$1, description=$2, start_time=$3, end_time=$4,
			location=$5, priority=$6, status=$7, recurrence=$8, reminder_time=$9
		WHERE task_id=$10`
	res, err := r.db.ExecContext(ctx, query,
		task.Title, nullString(task.Description), task.StartTime, task.EndTime,
		nullString(task.Location), nullString(string(task.Priority)),
		nullString(string(task.Status)), nullString(string(task.Recurrence)),
		task.ReminderTime, task.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE task_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
