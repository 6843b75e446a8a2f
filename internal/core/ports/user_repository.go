package ports

import (
	"context"
	"time"

	"github.com/worklane/hr-system/internal/core/domain"
)

// UserFilter narrows List results. Name matches full name
// case-insensitively; the other fields are exact.
type UserFilter struct {
	Name       string
	Department string
	Status     string
	Role       string
	ClientID   string
}

// UserOption is the reduced projection returned by Dropdown.
type UserOption struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
}

// UserRepository defines persistence for the users collection.
//
// SetRefreshToken and the reset-token mutators are targeted single-field
// updates: they must not run full document validation, so a login never
// fails on an unrelated required field.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUserNameOrEmail(ctx context.Context, userName, email string) (*domain.User, error)
	FindByResetTokenHash(ctx context.Context, hash string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	Dropdown(ctx context.Context) ([]UserOption, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	SetRefreshToken(ctx context.Context, id, refreshToken string) error
	SetResetToken(ctx context.Context, id, hash string, expiry time.Time) error
	ClearResetToken(ctx context.Context, id string) error
	SetPassword(ctx context.Context, id, passwordHash string) error
}
