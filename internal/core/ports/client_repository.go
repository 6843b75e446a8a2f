package ports

import (
	"context"
	"time"

	"github.com/worklane/hr-system/internal/core/domain"
)

// ClientFilter narrows List results. Name matches case-insensitively.
type ClientFilter struct {
	Name     string
	ClientID string
}

// ClientRepository defines persistence for the clients (tenants) collection.
// The token mutators follow the same validation-skipping contract as
// UserRepository.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	FindByResetTokenHash(ctx context.Context, hash string) (*domain.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]domain.Client, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.Client, error)
	Delete(ctx context.Context, id string) error

	SetRefreshToken(ctx context.Context, id, refreshToken string) error
	SetResetToken(ctx context.Context, id, hash string, expiry time.Time) error
	ClearResetToken(ctx context.Context, id string) error
	SetPassword(ctx context.Context, id, passwordHash string) error
}
