package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ezioding/email-reminder/internal/model"
	"github.com/ezioding/email-reminder/internal/ports"
	"github.com/ezioding/email-reminder/internal/schedule"
)

// ErrCycleInProgress is returned when a check cycle is requested while a
// previous one has not finished. At most one cycle runs at a time.
var ErrCycleInProgress = errors.New("check cycle already in progress")

var (
	checkCyclesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "check_cycles_total",
		Help: "Total number of completed check cycles",
	})
	remindersSentTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reminders_sent_total",
		Help: "Reminders sent successfully",
	})
	remindersFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reminders_failed_total",
		Help: "Reminder sends that failed",
	})
)

func init() {
	prometheus.MustRegister(checkCyclesTotal, remindersSentTotal, remindersFailedTotal)
}

// CheckService runs check cycles: fetch the due set, send each reminder
// strictly sequentially, and apply the post-send disposition. A failed item
// keeps its state and stays due for the next cycle.
type CheckService struct {
	storageRepo      ports.ReminderStore
	cacheRepo        ports.ReminderCache // may be nil
	notifier         ports.Notifier
	notifierStrategy retry.Strategy
	itemTimeout      time.Duration
	checkPeriod      time.Duration

	running atomic.Bool
}

func NewCheckService(
	storageRepo ports.ReminderStore,
	cacheRepo ports.ReminderCache,
	notifier ports.Notifier,
	notifierStrategy retry.Strategy,
	itemTimeout time.Duration,
	checkPeriod time.Duration,
) *CheckService {
	return &CheckService{
		storageRepo:      storageRepo,
		cacheRepo:        cacheRepo,
		notifier:         notifier,
		notifierStrategy: notifierStrategy,
		itemTimeout:      itemTimeout,
		checkPeriod:      checkPeriod,
	}
}

// RunCheckCycle performs one full pass over the due set. Both the scheduled
// ticker and the manual trigger call it; overlap is rejected with
// ErrCycleInProgress so two cycles can never race on the same due set.
func (s *CheckService) RunCheckCycle(ctx context.Context, now time.Time) (*model.CheckResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrCycleInProgress
	}
	defer s.running.Store(false)

	due, err := s.storageRepo.FetchDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch due reminders: %w", err)
	}

	result := &model.CheckResult{
		Checked: len(due),
		Errors:  []model.CheckError{},
	}

	for _, reminder := range due {
		if err := s.processReminder(ctx, reminder, now); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, model.CheckError{
				ID:    reminder.ID,
				Title: reminder.Title,
				Error: err.Error(),
			})
			remindersFailedTotal.Inc()
			zlog.Logger.Error().
				Err(err).
				Stringer("id", reminder.ID).
				Str("title", reminder.Title).
				Msg("failed to send reminder")
			continue
		}
		result.Sent++
		remindersSentTotal.Inc()
		zlog.Logger.Info().
			Stringer("id", reminder.ID).
			Str("title", reminder.Title).
			Msg("reminder sent")
	}

	checkCyclesTotal.Inc()
	return result, nil
}

// processReminder sends one reminder and persists its disposition. The send
// runs under the per-item timeout and the configured retry strategy; the
// disposition update deliberately does not share the send's deadline, since
// by then the email is already out.
func (s *CheckService) processReminder(ctx context.Context, reminder *model.Reminder, now time.Time) error {
	sendCtx, cancel := context.WithTimeout(ctx, s.itemTimeout)
	defer cancel()

	err := retry.DoContext(sendCtx, s.notifierStrategy, func() error {
		return s.notifier.Send(sendCtx, reminder)
	})
	if err != nil {
		return fmt.Errorf("notifier %s: %w", s.notifier.Name(), err)
	}

	disposition := schedule.AfterSend(reminder, now)
	if err := s.storageRepo.ApplyDisposition(ctx, reminder.ID, disposition); err != nil {
		return fmt.Errorf("apply disposition: %w", err)
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Delete(ctx, reminder.ID); err != nil {
			zlog.Logger.Error().Err(err).Stringer("id", reminder.ID).Msg("failed to invalidate cached reminder")
		}
	}
	return nil
}

// Run drives scheduled cycles until the context is cancelled. The first
// cycle runs immediately, then one per period.
func (s *CheckService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.checkPeriod)
	defer ticker.Stop()

	s.runScheduled(ctx)

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("check loop stopped")
			return
		case <-ticker.C:
			s.runScheduled(ctx)
		}
	}
}

func (s *CheckService) runScheduled(ctx context.Context) {
	result, err := s.RunCheckCycle(ctx, time.Now())
	if err != nil {
		if errors.Is(err, ErrCycleInProgress) {
			zlog.Logger.Warn().Msg("previous check cycle still running, skipping tick")
			return
		}
		zlog.Logger.Error().Err(err).Msg("scheduled check cycle failed")
		return
	}
	zlog.Logger.Info().
		Int("checked", result.Checked).
		Int("sent", result.Sent).
		Int("failed", result.Failed).
		Msg("check cycle completed")
}
