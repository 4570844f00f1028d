package dto

import (
	"time"

	"github.com/ezioding/email-reminder/internal/model"
)

// ReminderFull is the API representation of a reminder; time fields are
// RFC3339, last_sent_at stays null until the first successful send.
type ReminderFull struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	URL          *string `json:"url"`
	TargetEmail  string  `json:"target_email"`
	IsOneTime    bool    `json:"is_one_time"`
	IntervalDays *int    `json:"interval_days"`
	CreatedAt    string  `json:"created_at"`
	LastSentAt   *string `json:"last_sent_at"`
	NextSendAt   string  `json:"next_send_at"`
	Enabled      bool    `json:"enabled"`
	SentCount    int     `json:"sent_count"`
}

func ToFullFromModel(r *model.Reminder) *ReminderFull {
	var lastSentAt *string
	if r.LastSentAt != nil {
		s := r.LastSentAt.UTC().Format(time.RFC3339)
		lastSentAt = &s
	}
	return &ReminderFull{
		ID:           r.ID.String(),
		Title:        r.Title,
		Description:  r.Description,
		URL:          r.URL,
		TargetEmail:  r.TargetEmail,
		IsOneTime:    r.IsOneTime,
		IntervalDays: r.IntervalDays,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		LastSentAt:   lastSentAt,
		NextSendAt:   r.NextSendAt.UTC().Format(time.RFC3339),
		Enabled:      r.Enabled,
		SentCount:    r.SentCount,
	}
}

func ToFullListFromModels(reminders []*model.Reminder) []*ReminderFull {
	out := make([]*ReminderFull, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, ToFullFromModel(r))
	}
	return out
}
