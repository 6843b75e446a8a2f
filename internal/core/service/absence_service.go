package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
)

// AbsenceService implements leave request management.
type AbsenceService struct {
	repo ports.AbsenceRepository
	log  zerolog.Logger
}

func NewAbsenceService(repo ports.AbsenceRepository, log zerolog.Logger) *AbsenceService {
	return &AbsenceService{repo: repo, log: log}
}

func (s *AbsenceService) Create(ctx context.Context, absence *domain.Absence) (*domain.Absence, error) {
	if absence.ClientID == "" || absence.UserID == "" ||
		absence.StartDate.IsZero() || absence.EndDate.IsZero() || absence.TotalDays == 0 {
		return nil, domain.ErrValidation
	}
	if absence.Status == "" {
		absence.Status = domain.AbsencePending
	}
	if !absence.Status.Valid() {
		return nil, domain.ErrValidation
	}
	if absence.DayOfAbsence.IsZero() {
		absence.DayOfAbsence = absence.StartDate
	}

	now := time.Now().UTC()
	absence.CreatedAt = now
	absence.UpdatedAt = now

	created, err := s.repo.Create(ctx, absence)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("user_id", created.UserID).Msg("absence created")
	return created, nil
}

func (s *AbsenceService) Get(ctx context.Context, id string) (*domain.Absence, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AbsenceService) List(ctx context.Context, filter ports.AbsenceFilter) ([]domain.Absence, error) {
	return s.repo.List(ctx, filter)
}

func (s *AbsenceService) Update(ctx context.Context, id string, updates map[string]any) (*domain.Absence, error) {
	if len(updates) == 0 {
		return nil, domain.ErrValidation
	}
	if raw, ok := updates["status"].(string); ok && !domain.AbsenceStatus(raw).Valid() {
		return nil, domain.ErrValidation
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *AbsenceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("absence deleted")
	return nil
}
