package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ezioding/email-reminder/internal/model"
	"github.com/ezioding/email-reminder/internal/schedule"
)

// ReminderStore is the record-store contract. Implementations must return
// model.ErrNotFound (possibly wrapped) for unknown ids, and FetchDue must
// satisfy the predicate and ordering of schedule.SelectDue.
type ReminderStore interface {
	Create(ctx context.Context, reminder *model.Reminder) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Reminder, error)
	GetAll(ctx context.Context) ([]*model.Reminder, error)
	FetchDue(ctx context.Context, now time.Time) ([]*model.Reminder, error)
	Update(ctx context.Context, id uuid.UUID, patch *model.ReminderPatch) error
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	ApplyDisposition(ctx context.Context, id uuid.UUID, d schedule.Disposition) error
}

// ReminderCache is a read-through cache over single-item lookups. A cache
// miss or failure is never fatal; callers fall back to the store.
type ReminderCache interface {
	Save(ctx context.Context, reminder *model.Reminder) error
	Get(ctx context.Context, id uuid.UUID) (*model.Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
