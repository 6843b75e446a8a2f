package ports

import (
	"context"

	"github.com/worklane/hr-system/internal/core/domain"
)

// SettingsRepository defines persistence for the advanced settings
// collection.
type SettingsRepository interface {
	Create(ctx context.Context, settings *domain.AdvancedSettings) (*domain.AdvancedSettings, error)
	FindByID(ctx context.Context, id string) (*domain.AdvancedSettings, error)
	List(ctx context.Context) ([]domain.AdvancedSettings, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.AdvancedSettings, error)
	Delete(ctx context.Context, id string) error
}
