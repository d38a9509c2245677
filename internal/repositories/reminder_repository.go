package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/tech-gecko/DayMinder/internal/models"
)

type ReminderRepository interface {
	Store(ctx context.Context, reminder *models.Reminder) error
	FindByID(ctx context.Context, id int64) (*models.Reminder, error)
	// FindByIDForUser resolves ownership through the owning task; reminders
	// have no user column of their own.
	FindByIDForUser(ctx context.Context, id, userID int64) (*models.Reminder, error)
	FindByUser(ctx context.Context, userID int64) ([]models.Reminder, error)
	FindByTask(ctx context.Context, taskID, userID int64) ([]models.Reminder, error)
	Update(ctx context.Context, reminder *models.Reminder) error
	Delete(ctx context.Context, id int64) error
}

type reminderRepository struct {
	db *sql.DB
}

func NewReminderRepository(db *sql.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

const fkViolation = "23503"

func (r *reminderRepository) Store(ctx context.Context, reminder *models.Reminder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO reminders (task_id, reminder_time, sent, sent_time)
		VALUES ($1,$2,$3,$4)
		RETURNING reminder_id`
	err = tx.QueryRowContext(ctx, query,
		reminder.TaskID, reminder.ReminderTime, reminder.Sent, reminder.SentTime,
	).Scan(&reminder.ID)
	if err != nil {
		_ = tx.Rollback()
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == fkViolation {
			return ErrTaskNotFound
		}
		return fmt.Errorf("store reminder: %w", err)
	}
	return tx.Commit()
}

func (r *reminderRepository) FindByID(ctx context.Context, id int64) (*models.Reminder, error) {
	query := `SELECT reminder_id, task_id, reminder_time, sent, sent_time
		FROM reminders WHERE reminder_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *reminderRepository) FindByIDForUser(ctx context.Context, id, userID int64) (*models.Reminder, error) {
	query := `
		SELECT r.reminder_id, r.task_id, r.reminder_time, r.sent, r.sent_time
		FROM reminders r
		JOIN tasks t ON t.task_id = r.task_id
		WHERE r.reminder_id = $1 AND t.user_id = $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *reminderRepository) scanOne(row *sql.Row) (*models.Reminder, error) {
	reminder := &models.Reminder{}
	err := row.Scan(
		&reminder.ID, &reminder.TaskID, &reminder.ReminderTime,
		&reminder.Sent, &reminder.SentTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	reminder.ReminderTime = reminder.ReminderTime.UTC()
	return reminder, nil
}

func (r *reminderRepository) FindByUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	query := `
		SELECT r.reminder_id, r.task_id, r.reminder_time, r.sent, r.sent_time
		FROM reminders r
		JOIN tasks t ON t.task_id = r.task_id
		WHERE t.user_id = $1
		ORDER BY r.reminder_time ASC`
	return r.queryMany(ctx, query, userID)
}

func (r *reminderRepository) FindByTask(ctx context.Context, taskID, userID int64) ([]models.Reminder, error) {
	query := `
		SELECT r.reminder_id, r.task_id, r.reminder_time, r.sent, r.sent_time
		FROM reminders r
		JOIN tasks t ON t.task_id = r.task_id
		WHERE r.task_id = $1 AND t.user_id = $2
		ORDER BY r.reminder_time ASC`
	return r.queryMany(ctx, query, taskID, userID)
}

func (r *reminderRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(&rem.ID, &rem.TaskID, &rem.ReminderTime, &rem.Sent, &rem.SentTime); err != nil {
			return nil, err
		}
		rem.ReminderTime = rem.ReminderTime.UTC()
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *reminderRepository) Update(ctx context.Context, reminder *models.Reminder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		UPDATE reminders SET reminder_time=$1, sent=$2, sent_time=$3
		WHERE reminder_id=$4`
	res, err := tx.ExecContext(ctx, query,
		reminder.ReminderTime, reminder.Sent, reminder.SentTime, reminder.ID)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update reminder: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_ = tx.Rollback()
		return ErrReminderNotFound
	}
	return tx.Commit()
}

func (r *reminderRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE reminder_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReminderNotFound
	}
	return nil
}
