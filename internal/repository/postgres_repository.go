package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/ezioding/email-reminder/internal/model"
	"github.com/ezioding/email-reminder/internal/schedule"
)

const reminderColumns = `id, title, description, url, target_email, is_one_time, interval_days, created_at, last_sent_at, next_send_at, enabled, sent_count`

// StoreRepository persists reminders in PostgreSQL. Every statement runs
// under the configured retry strategy.
type StoreRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStoreRepository(db *dbpg.DB, strategy retry.Strategy) *StoreRepository {
	return &StoreRepository{
		db:       db,
		strategy: strategy,
	}
}

func (r *StoreRepository) Create(ctx context.Context, reminder *model.Reminder) error {
	query := `INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx,
		r.strategy,
		query,
		reminder.ID.String(),
		reminder.Title,
		reminder.Description,
		reminder.URL,
		reminder.TargetEmail,
		reminder.IsOneTime,
		reminder.IntervalDays,
		reminder.CreatedAt,
		reminder.LastSentAt,
		reminder.NextSendAt,
		reminder.Enabled,
		reminder.SentCount,
	)
	if err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

func (r *StoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id.String())
	if err != nil {
		return nil, fmt.Errorf("select reminder by id: %w", err)
	}

	reminder, err := scanReminder(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return reminder, nil
}

func (r *StoreRepository) GetAll(ctx context.Context) ([]*model.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders ORDER BY created_at DESC`
	return r.queryReminders(ctx, query)
}

// FetchDue returns the due set: enabled reminders whose next_send_at has
// passed, earliest first, ties broken by id. Must stay in sync with
// schedule.SelectDue.
func (r *StoreRepository) FetchDue(ctx context.Context, now time.Time) ([]*model.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders
		WHERE enabled = TRUE AND next_send_at <= $1
		ORDER BY next_send_at ASC, id ASC`
	return r.queryReminders(ctx, query, now)
}

func (r *StoreRepository) Update(ctx context.Context, id uuid.UUID, patch *model.ReminderPatch) error {
	if patch.Empty() {
		return nil
	}

	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.URL != nil {
		add("url", *patch.URL)
	}
	if patch.TargetEmail != nil {
		add("target_email", *patch.TargetEmail)
	}
	if patch.IntervalDays != nil {
		add("interval_days", *patch.IntervalDays)
	}
	if patch.ScheduledAt != nil {
		// A supplied scheduled_time re-targets next_send_at directly.
		add("next_send_at", *patch.ScheduledAt)
	}

	args = append(args, id.String())
	query := fmt.Sprintf("UPDATE reminders SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}
	return requireAffected(res)
}

func (r *StoreRepository) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	query := `UPDATE reminders SET enabled = $1 WHERE id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, enabled, id.String())
	if err != nil {
		return fmt.Errorf("toggle reminder: %w", err)
	}
	return requireAffected(res)
}

func (r *StoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reminders WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id.String())
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return requireAffected(res)
}

// ApplyDisposition performs the post-send transition. sent_count increments
// in the same statement, so a confirmed send is counted exactly once.
func (r *StoreRepository) ApplyDisposition(ctx context.Context, id uuid.UUID, d schedule.Disposition) error {
	var res sql.Result
	var err error
	if d.Disable {
		query := `UPDATE reminders
			SET last_sent_at = $1, sent_count = sent_count + 1, enabled = FALSE
			WHERE id = $2`
		res, err = r.db.ExecWithRetry(ctx, r.strategy, query, d.LastSentAt, id.String())
	} else {
		query := `UPDATE reminders
			SET last_sent_at = $1, next_send_at = $2, sent_count = sent_count + 1
			WHERE id = $3`
		res, err = r.db.ExecWithRetry(ctx, r.strategy, query, d.LastSentAt, d.NextSendAt, id.String())
	}
	if err != nil {
		return fmt.Errorf("apply disposition: %w", err)
	}
	return requireAffected(res)
}

func (r *StoreRepository) queryReminders(ctx context.Context, query string, args ...interface{}) ([]*model.Reminder, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select reminders: %w", err)
	}
	defer rows.Close()

	result := []*model.Reminder{}
	for rows.Next() {
		reminder, err := scanReminder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after scanning rows: %w", err)
	}
	return result, nil
}

func scanReminder(scan func(dest ...interface{}) error) (*model.Reminder, error) {
	var (
		id           string
		title        string
		description  string
		url          sql.NullString
		targetEmail  string
		isOneTime    bool
		intervalDays sql.NullInt64
		createdAt    time.Time
		lastSentAt   sql.NullTime
		nextSendAt   time.Time
		enabled      bool
		sentCount    int
	)

	if err := scan(
		&id,
		&title,
		&description,
		&url,
		&targetEmail,
		&isOneTime,
		&intervalDays,
		&createdAt,
		&lastSentAt,
		&nextSendAt,
		&enabled,
		&sentCount,
	); err != nil {
		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder id in postgres: %w", err)
	}

	reminder := &model.Reminder{
		ID:          parsedID,
		Title:       title,
		Description: description,
		TargetEmail: targetEmail,
		IsOneTime:   isOneTime,
		CreatedAt:   createdAt,
		NextSendAt:  nextSendAt,
		Enabled:     enabled,
		SentCount:   sentCount,
	}
	if url.Valid {
		reminder.URL = &url.String
	}
	if intervalDays.Valid {
		days := int(intervalDays.Int64)
		reminder.IntervalDays = &days
	}
	if lastSentAt.Valid {
		reminder.LastSentAt = &lastSentAt.Time
	}
	return reminder, nil
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}
