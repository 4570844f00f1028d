package notifier

import (
	"context"
	"fmt"

	"github.com/ezioding/email-reminder/internal/model"
)

// ConsoleSender prints instead of sending. Local development only.
type ConsoleSender struct{}

func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{}
}

func (s *ConsoleSender) Name() string { return ServiceConsole }

func (s *ConsoleSender) Send(ctx context.Context, reminder *model.Reminder) error {
	fmt.Printf(
		"Sending reminder ID=%s to=%s subject=%q\n",
		reminder.ID,
		reminder.TargetEmail,
		RenderSubject(reminder),
	)
	return nil
}
