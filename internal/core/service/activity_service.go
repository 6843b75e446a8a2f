package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
)

// ActivityService implements attendance log management.
type ActivityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, log: log}
}

func (s *ActivityService) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	if activity.ClientID == "" || activity.UserID == "" || activity.Name == "" || activity.Email == "" {
		return nil, domain.ErrValidation
	}
	if activity.Status == "" {
		activity.Status = domain.StatusActive
	}

	now := time.Now().UTC()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("user_id", created.UserID).Msg("activity created")
	return created, nil
}

func (s *ActivityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ActivityService) List(ctx context.Context, filter ports.ActivityFilter) ([]domain.Activity, error) {
	return s.repo.List(ctx, filter)
}

func (s *ActivityService) Update(ctx context.Context, id string, updates map[string]any) (*domain.Activity, error) {
	if len(updates) == 0 {
		return nil, domain.ErrValidation
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("activity deleted")
	return nil
}
