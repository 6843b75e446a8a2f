package ports

import (
	"context"

	"github.com/worklane/hr-system/internal/core/domain"
)

// ActivityFilter narrows List results. Name matches case-insensitively.
type ActivityFilter struct {
	Name     string
	Status   string
	WorkType string
	ClientID string
	UserID   string
}

// ActivityRepository defines persistence for the activities collection.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	FindByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
}
