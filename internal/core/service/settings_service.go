package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
)

// SettingsService implements per-tenant advanced settings management.
type SettingsService struct {
	repo ports.SettingsRepository
	log  zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, log zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, log: log}
}

func (s *SettingsService) Create(ctx context.Context, settings *domain.AdvancedSettings) (*domain.AdvancedSettings, error) {
	if settings.ClientID == "" || settings.UserID == "" || settings.ReportName == "" ||
		settings.ReportValidationDate.IsZero() || !settings.ReportType.Valid() {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	created, err := s.repo.Create(ctx, settings)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("client_id", created.ClientID).Msg("settings created")
	return created, nil
}

func (s *SettingsService) Get(ctx context.Context, id string) (*domain.AdvancedSettings, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SettingsService) List(ctx context.Context) ([]domain.AdvancedSettings, error) {
	return s.repo.List(ctx)
}

func (s *SettingsService) Update(ctx context.Context, id string, updates map[string]any) (*domain.AdvancedSettings, error) {
	if len(updates) == 0 {
		return nil, domain.ErrValidation
	}
	if raw, ok := updates["report_type"].(string); ok && !domain.ReportType(raw).Valid() {
		return nil, domain.ErrValidation
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *SettingsService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("settings deleted")
	return nil
}
