package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ezioding/email-reminder/internal/model"
)

type CRUDServiceInterface interface {
	CreateReminder(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error)
	GetReminder(ctx context.Context, id uuid.UUID) (*model.Reminder, error)
	ListReminders(ctx context.Context) ([]*model.Reminder, error)
	UpdateReminder(ctx context.Context, id uuid.UUID, patch *model.ReminderPatch) (*model.Reminder, error)
	ToggleReminder(ctx context.Context, id uuid.UUID) (*model.Reminder, error)
	DeleteReminder(ctx context.Context, id uuid.UUID) error
}

type CheckServiceInterface interface {
	RunCheckCycle(ctx context.Context, now time.Time) (*model.CheckResult, error)
}
