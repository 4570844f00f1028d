package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/errgroup"

	"github.com/ezioding/email-reminder/internal/model"
	"github.com/ezioding/email-reminder/internal/ports"
)

// CRUDService orchestrates reminder management on top of the record store,
// with an optional read cache in front of single-item lookups.
type CRUDService struct {
	storageRepo ports.ReminderStore
	cacheRepo   ports.ReminderCache // may be nil when the cache is disabled
}

func NewCRUDService(storageRepo ports.ReminderStore, cacheRepo ports.ReminderCache) *CRUDService {
	return &CRUDService{
		storageRepo: storageRepo,
		cacheRepo:   cacheRepo,
	}
}

func (s *CRUDService) CreateReminder(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error) {
	reminder.ID = uuid.New()

	if err := s.storageRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("reminder storage failed to create: %w", err)
	}
	s.trySaveInCache(ctx, reminder)

	zlog.Logger.Info().
		Stringer("id", reminder.ID).
		Str("title", reminder.Title).
		Bool("one_time", reminder.IsOneTime).
		Time("next_send_at", reminder.NextSendAt).
		Msg("reminder created")
	return reminder, nil
}

func (s *CRUDService) GetReminder(ctx context.Context, id uuid.UUID) (*model.Reminder, error) {
	if s.cacheRepo != nil {
		if cached, err := s.cacheRepo.Get(ctx, id); err == nil {
			return cached, nil
		}
	}

	reminder, err := s.storageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.trySaveInCache(ctx, reminder)
	return reminder, nil
}

func (s *CRUDService) ListReminders(ctx context.Context) ([]*model.Reminder, error) {
	return s.storageRepo.GetAll(ctx)
}

func (s *CRUDService) UpdateReminder(ctx context.Context, id uuid.UUID, patch *model.ReminderPatch) (*model.Reminder, error) {
	if err := s.storageRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	updated, err := s.storageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.trySaveInCache(ctx, updated)

	zlog.Logger.Info().Stringer("id", id).Msg("reminder updated")
	return updated, nil
}

// ToggleReminder flips enabled and nothing else; next_send_at is left alone,
// so re-enabling an overdue reminder makes it due on the next cycle.
func (s *CRUDService) ToggleReminder(ctx context.Context, id uuid.UUID) (*model.Reminder, error) {
	reminder, err := s.storageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.storageRepo.SetEnabled(ctx, id, !reminder.Enabled); err != nil {
		return nil, err
	}
	reminder.Enabled = !reminder.Enabled
	s.trySaveInCache(ctx, reminder)

	zlog.Logger.Info().Stringer("id", id).Bool("enabled", reminder.Enabled).Msg("reminder toggled")
	return reminder, nil
}

func (s *CRUDService) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	if _, err := s.storageRepo.GetByID(ctx, id); err != nil {
		return err
	}

	var errGroup errgroup.Group
	errGroup.Go(func() error {
		return s.storageRepo.Delete(ctx, id)
	})
	if s.cacheRepo != nil {
		errGroup.Go(func() error {
			return s.cacheRepo.Delete(ctx, id)
		})
	}
	if err := errGroup.Wait(); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	zlog.Logger.Info().Stringer("id", id).Msg("reminder deleted")
	return nil
}

func (s *CRUDService) trySaveInCache(ctx context.Context, reminder *model.Reminder) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Save(ctx, reminder); err != nil {
		zlog.Logger.Error().Err(err).Stringer("id", reminder.ID).Msg("failed to cache reminder")
	}
}
