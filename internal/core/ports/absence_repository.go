package ports

import (
	"context"
	"time"

	"github.com/worklane/hr-system/internal/core/domain"
)

// AbsenceFilter narrows List results. Name and UserName match
// case-insensitively; From/To bound the day of absence when both are set.
type AbsenceFilter struct {
	Name     string
	UserName string
	Status   string
	ClientID string
	UserID   string
	From     time.Time
	To       time.Time
}

// AbsenceRepository defines persistence for the absences collection.
type AbsenceRepository interface {
	Create(ctx context.Context, absence *domain.Absence) (*domain.Absence, error)
	FindByID(ctx context.Context, id string) (*domain.Absence, error)
	List(ctx context.Context, filter AbsenceFilter) ([]domain.Absence, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.Absence, error)
	Delete(ctx context.Context, id string) error
}
