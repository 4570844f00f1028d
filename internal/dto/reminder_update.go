package dto

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/ezioding/email-reminder/internal/model"
)

// ReminderUpdate is the PUT /reminders/:id request body. Absent fields are
// left untouched. A supplied scheduled_time rewrites next_send_at directly,
// for one-time and recurring reminders alike; is_one_time itself is not
// updatable.
type ReminderUpdate struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	URL          *string `json:"url"`
	TargetEmail  *string `json:"target_email"`
	IntervalDays *int    `json:"interval_days"`
	ScheduledAt  *string `json:"scheduled_time"`
}

// ToPatch validates the supplied fields and converts them into a store patch.
func (b ReminderUpdate) ToPatch() (*model.ReminderPatch, error) {
	if b.Title != nil && *b.Title == "" {
		return nil, errors.New("title cannot be empty")
	}
	if b.Description != nil && *b.Description == "" {
		return nil, errors.New("description cannot be empty")
	}
	if b.TargetEmail != nil {
		if _, err := mail.ParseAddress(*b.TargetEmail); err != nil {
			return nil, fmt.Errorf("invalid target_email %q: %w", *b.TargetEmail, err)
		}
	}
	if b.IntervalDays != nil && *b.IntervalDays < 1 {
		return nil, errors.New("interval_days must be at least 1")
	}

	patch := &model.ReminderPatch{
		Title:        b.Title,
		Description:  b.Description,
		URL:          b.URL,
		TargetEmail:  b.TargetEmail,
		IntervalDays: b.IntervalDays,
	}
	if b.ScheduledAt != nil {
		t, err := time.Parse(time.RFC3339, *b.ScheduledAt)
		if err != nil {
			return nil, fmt.Errorf("incorrect 'scheduled_time' '%s': %w", *b.ScheduledAt, err)
		}
		patch.ScheduledAt = &t
	}
	return patch, nil
}
