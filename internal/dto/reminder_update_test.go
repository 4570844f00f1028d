package dto

import (
	"testing"
	"time"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestReminderUpdateToPatch(t *testing.T) {
	t.Parallel()

	body := ReminderUpdate{
		Title:        strPtr("new title"),
		IntervalDays: intPtr(14),
	}

	patch, err := body.ToPatch()
	if err != nil {
		t.Fatalf("ToPatch() error = %v", err)
	}
	if patch.Title == nil || *patch.Title != "new title" {
		t.Errorf("Title = %v, want %q", patch.Title, "new title")
	}
	if patch.IntervalDays == nil || *patch.IntervalDays != 14 {
		t.Errorf("IntervalDays = %v, want 14", patch.IntervalDays)
	}
	if patch.Description != nil || patch.URL != nil || patch.TargetEmail != nil || patch.ScheduledAt != nil {
		t.Error("absent fields must stay nil in the patch")
	}
}

// scheduled_time overwrites next_send_at directly, even for recurring
// reminders whose schedule is otherwise derived from the send time.
func TestReminderUpdateScheduledTimeRewritesNextSend(t *testing.T) {
	t.Parallel()

	body := ReminderUpdate{ScheduledAt: strPtr("2024-09-01T08:00:00Z")}

	patch, err := body.ToPatch()
	if err != nil {
		t.Fatalf("ToPatch() error = %v", err)
	}
	want := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	if patch.ScheduledAt == nil || !patch.ScheduledAt.Equal(want) {
		t.Errorf("ScheduledAt = %v, want %v", patch.ScheduledAt, want)
	}
	if patch.Empty() {
		t.Error("patch with scheduled_time must not be empty")
	}
}

func TestReminderUpdateToPatchValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body ReminderUpdate
	}{
		{"empty title", ReminderUpdate{Title: strPtr("")}},
		{"empty description", ReminderUpdate{Description: strPtr("")}},
		{"malformed target_email", ReminderUpdate{TargetEmail: strPtr("nope")}},
		{"zero interval_days", ReminderUpdate{IntervalDays: intPtr(0)}},
		{"malformed scheduled_time", ReminderUpdate{ScheduledAt: strPtr("next tuesday")}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := tt.body.ToPatch(); err == nil {
				t.Error("ToPatch() error = nil, want validation error")
			}
		})
	}
}

func TestReminderPatchEmpty(t *testing.T) {
	t.Parallel()

	patch, err := ReminderUpdate{}.ToPatch()
	if err != nil {
		t.Fatalf("ToPatch() error = %v", err)
	}
	if !patch.Empty() {
		t.Error("patch built from an empty body must be empty")
	}
}
