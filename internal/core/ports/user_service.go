package ports

import (
	"context"

	"github.com/worklane/hr-system/internal/core/domain"
)

// RegisterUserInput carries the fields required to create a user. The
// password arrives in plaintext and is hashed before the first persist.
type RegisterUserInput struct {
	UserName    string
	Email       string
	FullName    string
	FirstName   string
	LastName    string
	Password    string
	ClientID    string
	Department  string
	Role        string
	Status      string
	PhoneNumber string
}

// UserService implements user management. Update rehashes the password when
// the update set contains one; saves without a password change leave the
// stored hash untouched.
type UserService interface {
	Register(ctx context.Context, in RegisterUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	Dropdown(ctx context.Context) ([]UserOption, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// CreateClientInput carries the fields required to create a tenant.
type CreateClientInput struct {
	ClientID    string
	Name        string
	Email       string
	Password    string
	Description string
}

// ClientService implements tenant management.
type ClientService interface {
	Create(ctx context.Context, in CreateClientInput) (*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]domain.Client, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// ActivityService implements attendance log management.
type ActivityService interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	Get(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
}

// AbsenceService implements leave request management.
type AbsenceService interface {
	Create(ctx context.Context, absence *domain.Absence) (*domain.Absence, error)
	Get(ctx context.Context, id string) (*domain.Absence, error)
	List(ctx context.Context, filter AbsenceFilter) ([]domain.Absence, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.Absence, error)
	Delete(ctx context.Context, id string) error
}

// SettingsService implements per-tenant advanced settings management.
type SettingsService interface {
	Create(ctx context.Context, settings *domain.AdvancedSettings) (*domain.AdvancedSettings, error)
	Get(ctx context.Context, id string) (*domain.AdvancedSettings, error)
	List(ctx context.Context) ([]domain.AdvancedSettings, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.AdvancedSettings, error)
	Delete(ctx context.Context, id string) error
}
