package dto

import (
	"testing"
	"time"
)

func TestReminderCreateToEntityRecurring(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	body := ReminderCreate{
		Title:        "domain renewal",
		Description:  "renew example.com",
		URL:          "https://registrar.example.com",
		TargetEmail:  "ops@example.com",
		IntervalDays: 180,
	}

	r, err := body.ToEntity(now)
	if err != nil {
		t.Fatalf("ToEntity() error = %v", err)
	}
	if r.IsOneTime {
		t.Error("reminder must be recurring")
	}
	if r.IntervalDays == nil || *r.IntervalDays != 180 {
		t.Errorf("IntervalDays = %v, want 180", r.IntervalDays)
	}
	if want := now.Add(180 * 24 * time.Hour); !r.NextSendAt.Equal(want) {
		t.Errorf("NextSendAt = %v, want %v", r.NextSendAt, want)
	}
	if r.URL == nil || *r.URL != body.URL {
		t.Errorf("URL = %v, want %q", r.URL, body.URL)
	}
	if !r.Enabled || r.SentCount != 0 {
		t.Errorf("new reminder must start enabled with zero sends, got enabled=%v sent=%d", r.Enabled, r.SentCount)
	}
}

func TestReminderCreateToEntityOneTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	body := ReminderCreate{
		Title:       "pay invoice",
		Description: "invoice #42",
		TargetEmail: "billing@example.com",
		IsOneTime:   true,
		ScheduledAt: "2024-06-15T09:30:00Z",
	}

	r, err := body.ToEntity(now)
	if err != nil {
		t.Fatalf("ToEntity() error = %v", err)
	}
	want := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	if !r.NextSendAt.Equal(want) {
		t.Errorf("NextSendAt = %v, want %v", r.NextSendAt, want)
	}
	if r.IntervalDays != nil {
		t.Errorf("IntervalDays = %v, want nil for one-time", r.IntervalDays)
	}
	if r.URL != nil {
		t.Errorf("URL = %v, want nil when omitted", r.URL)
	}
}

func TestReminderCreateToEntityValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body ReminderCreate
	}{
		{
			name: "missing title",
			body: ReminderCreate{Description: "d", TargetEmail: "a@b.com", IntervalDays: 1},
		},
		{
			name: "missing description",
			body: ReminderCreate{Title: "t", TargetEmail: "a@b.com", IntervalDays: 1},
		},
		{
			name: "missing target_email",
			body: ReminderCreate{Title: "t", Description: "d", IntervalDays: 1},
		},
		{
			name: "malformed target_email",
			body: ReminderCreate{Title: "t", Description: "d", TargetEmail: "not-an-address", IntervalDays: 1},
		},
		{
			name: "one-time without scheduled_time",
			body: ReminderCreate{Title: "t", Description: "d", TargetEmail: "a@b.com", IsOneTime: true},
		},
		{
			name: "one-time with malformed scheduled_time",
			body: ReminderCreate{Title: "t", Description: "d", TargetEmail: "a@b.com", IsOneTime: true, ScheduledAt: "tomorrow"},
		},
		{
			name: "recurring without interval_days",
			body: ReminderCreate{Title: "t", Description: "d", TargetEmail: "a@b.com"},
		},
		{
			name: "recurring with zero interval_days",
			body: ReminderCreate{Title: "t", Description: "d", TargetEmail: "a@b.com", IntervalDays: 0},
		},
	}

	now := time.Now()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := tt.body.ToEntity(now); err == nil {
				t.Error("ToEntity() error = nil, want validation error")
			}
		})
	}
}
