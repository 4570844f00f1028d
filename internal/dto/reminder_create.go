package dto

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/ezioding/email-reminder/internal/model"
	"github.com/ezioding/email-reminder/internal/schedule"
)

// ReminderCreate is the POST /reminders request body. ScheduledAt is RFC3339
// and required for one-time reminders; IntervalDays is required (>= 1) for
// recurring ones.
type ReminderCreate struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	TargetEmail  string `json:"target_email"`
	IsOneTime    bool   `json:"is_one_time"`
	IntervalDays int    `json:"interval_days"`
	ScheduledAt  string `json:"scheduled_time"`
}

// ToEntity validates the body and builds a new reminder with its initial
// next_send_at computed relative to now.
func (b ReminderCreate) ToEntity(now time.Time) (*model.Reminder, error) {
	if b.Title == "" || b.Description == "" || b.TargetEmail == "" {
		return nil, errors.New("missing required fields: title, description, target_email")
	}
	if _, err := mail.ParseAddress(b.TargetEmail); err != nil {
		return nil, fmt.Errorf("invalid target_email %q: %w", b.TargetEmail, err)
	}

	var scheduledAt *time.Time
	var intervalDays *int
	if b.IsOneTime {
		if b.ScheduledAt == "" {
			return nil, errors.New("scheduled_time is required for one-time reminders")
		}
		t, err := time.Parse(time.RFC3339, b.ScheduledAt)
		if err != nil {
			return nil, fmt.Errorf("incorrect 'scheduled_time' '%s': %w", b.ScheduledAt, err)
		}
		scheduledAt = &t
	} else {
		if b.IntervalDays < 1 {
			return nil, errors.New("interval_days must be at least 1 for recurring reminders")
		}
		days := b.IntervalDays
		intervalDays = &days
	}

	var url *string
	if b.URL != "" {
		u := b.URL
		url = &u
	}

	return &model.Reminder{
		Title:        b.Title,
		Description:  b.Description,
		URL:          url,
		TargetEmail:  b.TargetEmail,
		IsOneTime:    b.IsOneTime,
		IntervalDays: intervalDays,
		CreatedAt:    now,
		NextSendAt:   schedule.InitialNextSend(b.IsOneTime, b.IntervalDays, scheduledAt, now),
		Enabled:      true,
		SentCount:    0,
	}, nil
}
