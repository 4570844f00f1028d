package ports

import (
	"context"

	"github.com/ezioding/email-reminder/internal/model"
)

// Notifier delivers one rendered reminder to its target address. Provider
// HTTP errors come back as ordinary errors; implementations never panic on
// transport failures.
type Notifier interface {
	Send(ctx context.Context, reminder *model.Reminder) error
	Name() string
}
