package ports

import (
	"context"

	"github.com/worklane/hr-system/internal/core/domain"
)

// LoginInput carries login credentials. Email is the primary key; UserName
// is accepted as an alternative lookup key for the user collection.
type LoginInput struct {
	UserName string
	Email    string
	Password string
}

// LoginResult is a successful session: the sanitized identity plus the
// freshly issued token pair.
type LoginResult struct {
	Identity     domain.Identity
	AccessToken  string
	RefreshToken string
}

// IdentityResolver resolves a lookup key to a User or Client identity.
// Users are probed first, then clients.
type IdentityResolver interface {
	ResolveByID(ctx context.Context, id string) (domain.Identity, error)
	ResolveByEmail(ctx context.Context, email string) (domain.Identity, error)
}

// AuthService implements the session operations.
type AuthService interface {
	IdentityResolver

	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, identity domain.Identity) error
	ForgetPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, rawToken, newPassword string) error
}

// Mailer delivers transactional mail for the auth layer.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}
