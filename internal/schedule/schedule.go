// Package schedule holds the pure scheduling rules for reminders: when a
// reminder first fires, what happens to it after a confirmed send, and which
// reminders count as due. No I/O happens here; the store's due query must
// satisfy the same predicate and ordering as SelectDue.
package schedule

import (
	"bytes"
	"sort"
	"time"

	"github.com/ezioding/email-reminder/internal/model"
)

const day = 24 * time.Hour

// InitialNextSend computes next_send_at for a freshly created reminder.
// One-time reminders fire at their scheduled time; if none was supplied the
// reminder fires immediately (validation upstream normally prevents that).
// Recurring reminders fire one full interval after creation.
func InitialNextSend(isOneTime bool, intervalDays int, scheduledAt *time.Time, now time.Time) time.Time {
	if isOneTime {
		if scheduledAt != nil {
			return *scheduledAt
		}
		return now
	}
	return now.Add(time.Duration(intervalDays) * day)
}

// Disposition is the state update applied to a reminder after a confirmed
// successful send. NextSendAt is meaningful only when Disable is false.
type Disposition struct {
	LastSentAt time.Time
	NextSendAt time.Time
	Disable    bool
}

// AfterSend computes the post-send disposition. A one-time reminder is
// retired permanently; a recurring one re-bases on the actual send time,
// never on the previous next_send_at, so downtime shifts the schedule
// forward instead of producing catch-up sends.
func AfterSend(r *model.Reminder, sentAt time.Time) Disposition {
	if r.IsOneTime {
		return Disposition{
			LastSentAt: sentAt,
			NextSendAt: r.NextSendAt,
			Disable:    true,
		}
	}
	return Disposition{
		LastSentAt: sentAt,
		NextSendAt: sentAt.Add(r.Interval()),
	}
}

// Apply mutates an in-memory reminder the way the store applies a
// disposition. Sent count increments exactly once per confirmed send.
func Apply(r *model.Reminder, d Disposition) {
	t := d.LastSentAt
	r.LastSentAt = &t
	r.SentCount++
	if d.Disable {
		r.Enabled = false
		return
	}
	r.NextSendAt = d.NextSendAt
}

// Due reports whether a single reminder is selectable at the given instant.
func Due(r *model.Reminder, now time.Time) bool {
	return r.Enabled && !r.NextSendAt.After(now)
}

// SelectDue returns the reminders due at now, earliest next_send_at first,
// ties broken by id for determinism.
func SelectDue(reminders []*model.Reminder, now time.Time) []*model.Reminder {
	var due []*model.Reminder
	for _, r := range reminders {
		if Due(r, now) {
			due = append(due, r)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		if !due[i].NextSendAt.Equal(due[j].NextSendAt) {
			return due[i].NextSendAt.Before(due[j].NextSendAt)
		}
		return bytes.Compare(due[i].ID[:], due[j].ID[:]) < 0
	})
	return due
}
