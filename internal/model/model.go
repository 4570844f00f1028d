package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a reminder id does not exist in the store.
var ErrNotFound = errors.New("reminder not found")

type Reminder struct {
	ID          uuid.UUID `json:"id" db:"id"`                     // PRIMARY KEY
	Title       string    `json:"title" db:"title"`               // subject line of the reminder email
	Description string    `json:"description" db:"description"`   // body text
	URL         *string   `json:"url" db:"url"`                   // optional link rendered as a button
	TargetEmail string    `json:"target_email" db:"target_email"` // delivery address
	IsOneTime   bool      `json:"is_one_time" db:"is_one_time"`   // immutable after creation
	// IntervalDays governs recurring reminders only; NULL for one-time ones.
	IntervalDays *int       `json:"interval_days" db:"interval_days"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	LastSentAt   *time.Time `json:"last_sent_at" db:"last_sent_at"`
	NextSendAt   time.Time  `json:"next_send_at" db:"next_send_at"` // sole field driving due-selection
	Enabled      bool       `json:"enabled" db:"enabled"`
	SentCount    int        `json:"sent_count" db:"sent_count"`
}

// Recurring reports whether the reminder re-arms itself after a send.
func (r *Reminder) Recurring() bool {
	return !r.IsOneTime
}

// Interval returns the recurrence interval. Zero for one-time reminders.
func (r *Reminder) Interval() time.Duration {
	if r.IntervalDays == nil {
		return 0
	}
	return time.Duration(*r.IntervalDays) * 24 * time.Hour
}

// ReminderPatch carries a partial update; nil fields are left untouched.
// ScheduledAt, when set, overwrites NextSendAt directly regardless of the
// reminder type (matches the update endpoint's historical behavior).
type ReminderPatch struct {
	Title        *string
	Description  *string
	URL          *string
	TargetEmail  *string
	IntervalDays *int
	ScheduledAt  *time.Time
}

// Empty reports whether the patch would change nothing.
func (p *ReminderPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.URL == nil &&
		p.TargetEmail == nil && p.IntervalDays == nil && p.ScheduledAt == nil
}
