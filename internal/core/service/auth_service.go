package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
	"github.com/worklane/hr-system/internal/core/token"
	"github.com/worklane/hr-system/pkg/password"
)

const defaultResetTTL = 10 * time.Minute

// ResetThrottle abstracts the reset-mail rate limit store (Redis). Reserve
// claims a send slot for an address; Release frees it when delivery fails.
type ResetThrottle interface {
	Reserve(ctx context.Context, email string) (bool, error)
	Release(ctx context.Context, email string) error
}

// AuthService implements login, logout, password reset, and dual-collection
// identity resolution.
type AuthService struct {
	users    ports.UserRepository
	clients  ports.ClientRepository
	issuer   *token.Issuer
	mailer   ports.Mailer
	throttle ResetThrottle

	resetBaseURL string
	resetTTL     time.Duration
	log          zerolog.Logger
}

// AuthServiceConfig bundles the non-repository collaborators.
type AuthServiceConfig struct {
	Issuer       *token.Issuer
	Mailer       ports.Mailer
	Throttle     ResetThrottle
	ResetBaseURL string
	ResetTTL     time.Duration
	Logger       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, clients ports.ClientRepository, cfg AuthServiceConfig) *AuthService {
	if cfg.ResetTTL <= 0 {
		cfg.ResetTTL = defaultResetTTL
	}
	return &AuthService{
		users:        users,
		clients:      clients,
		issuer:       cfg.Issuer,
		mailer:       cfg.Mailer,
		throttle:     cfg.Throttle,
		resetBaseURL: cfg.ResetBaseURL,
		resetTTL:     cfg.ResetTTL,
		log:          cfg.Logger,
	}
}

// ResolveByID looks up an identity by document id, users first, then
// clients.
func (s *AuthService) ResolveByID(ctx context.Context, id string) (domain.Identity, error) {
	user, err := s.users.FindByID(ctx, id)
	if err == nil {
		return user.Identity(), nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.Identity{}, err
	}

	client, err := s.clients.FindByID(ctx, id)
	if err == nil {
		return client.Identity(), nil
	}
	if !errors.Is(err, domain.ErrClientNotFound) {
		return domain.Identity{}, err
	}
	return domain.Identity{}, domain.ErrIdentityNotFound
}

// ResolveByEmail follows the same user-first dual lookup as ResolveByID.
func (s *AuthService) ResolveByEmail(ctx context.Context, email string) (domain.Identity, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return user.Identity(), nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.Identity{}, err
	}

	client, err := s.clients.FindByEmail(ctx, email)
	if err == nil {
		return client.Identity(), nil
	}
	if !errors.Is(err, domain.ErrClientNotFound) {
		return domain.Identity{}, err
	}
	return domain.Identity{}, domain.ErrIdentityNotFound
}

// Login verifies the credentials, issues a token pair, and persists the
// refresh token on the identity record. Concurrent logins for the same
// identity race last-write-wins on the stored refresh token.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	if (in.Email == "" && in.UserName == "") || in.Password == "" {
		return nil, domain.ErrValidation
	}

	ident, err := s.resolveCredential(ctx, in)
	if err != nil {
		return nil, err
	}

	if !password.Verify(in.Password, ident.PasswordHash) {
		s.log.Warn().Str("email", ident.Email).Msg("login rejected: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.issuer.Access(ident)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.issuer.Refresh(ident)
	if err != nil {
		return nil, err
	}

	if err := s.setRefreshToken(ctx, ident, refreshToken); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", ident.ID).Str("kind", string(ident.Kind)).Msg("login succeeded")

	return &ports.LoginResult{
		Identity:     ident.Sanitize(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// resolveCredential prefers the user collection; userName only ever matches
// users, email can match either.
func (s *AuthService) resolveCredential(ctx context.Context, in ports.LoginInput) (domain.Identity, error) {
	user, err := s.users.FindByUserNameOrEmail(ctx, in.UserName, in.Email)
	if err == nil {
		return user.Identity(), nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.Identity{}, err
	}
	if in.Email == "" {
		return domain.Identity{}, domain.ErrIdentityNotFound
	}

	client, err := s.clients.FindByEmail(ctx, in.Email)
	if err == nil {
		return client.Identity(), nil
	}
	if !errors.Is(err, domain.ErrClientNotFound) {
		return domain.Identity{}, err
	}
	return domain.Identity{}, domain.ErrIdentityNotFound
}

// Logout clears the persisted refresh token on the identity's own
// collection. The caller must already be authenticated.
func (s *AuthService) Logout(ctx context.Context, identity domain.Identity) error {
	if identity.ID == "" {
		return domain.ErrNotAuthenticated
	}
	if err := s.setRefreshToken(ctx, identity, ""); err != nil {
		return err
	}
	s.log.Info().Str("id", identity.ID).Str("kind", string(identity.Kind)).Msg("logout")
	return nil
}

func (s *AuthService) setRefreshToken(ctx context.Context, identity domain.Identity, refreshToken string) error {
	if identity.Kind == domain.KindClient {
		return s.clients.SetRefreshToken(ctx, identity.ID, refreshToken)
	}
	return s.users.SetRefreshToken(ctx, identity.ID, refreshToken)
}

// ForgetPassword stores a hashed single-use reset token on the identity and
// mails the raw token as a reset link. A delivery failure rolls the stored
// token back so no stale unusable token remains on the record.
func (s *AuthService) ForgetPassword(ctx context.Context, email string) error {
	ident, err := s.ResolveByEmail(ctx, email)
	if err != nil {
		return err
	}

	if s.throttle != nil {
		ok, err := s.throttle.Reserve(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("reset throttle unavailable, continuing")
		} else if !ok {
			return domain.ErrResetThrottled
		}
	}

	raw := uuid.NewString()
	expiry := time.Now().UTC().Add(s.resetTTL)

	if err := s.setResetToken(ctx, ident, hashResetToken(raw), expiry); err != nil {
		return err
	}

	link := s.resetBaseURL + "/reset-password/" + raw
	if err := s.mailer.SendPasswordReset(ctx, ident.Email, link); err != nil {
		s.log.Error().Err(err).Str("email", ident.Email).Msg("reset mail delivery failed")
		if clearErr := s.clearResetToken(ctx, ident); clearErr != nil {
			s.log.Error().Err(clearErr).Str("id", ident.ID).Msg("failed to roll back reset token")
		}
		if s.throttle != nil {
			_ = s.throttle.Release(ctx, email)
		}
		return domain.ErrMailDelivery
	}

	s.log.Info().Str("id", ident.ID).Msg("reset mail sent")
	return nil
}

// ResetPassword consumes a raw reset token: it finds the identity holding
// the token's hash within the expiry window, rehashes the new password, and
// clears both the reset fields and any active refresh token.
func (s *AuthService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if rawToken == "" || newPassword == "" {
		return domain.ErrValidation
	}

	ident, err := s.resolveByResetToken(ctx, hashResetToken(rawToken))
	if err != nil {
		return err
	}
	if time.Now().UTC().After(ident.ResetTokenExpiry) {
		return domain.ErrResetTokenInvalid
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.setPassword(ctx, ident, hash); err != nil {
		return err
	}
	if err := s.clearResetToken(ctx, ident); err != nil {
		return err
	}
	// Invalidate the active session so the old refresh token cannot be used.
	if err := s.setRefreshToken(ctx, ident, ""); err != nil {
		return err
	}

	s.log.Info().Str("id", ident.ID).Msg("password reset")
	return nil
}

func (s *AuthService) resolveByResetToken(ctx context.Context, hash string) (domain.Identity, error) {
	user, err := s.users.FindByResetTokenHash(ctx, hash)
	if err == nil {
		return user.Identity(), nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.Identity{}, err
	}

	client, err := s.clients.FindByResetTokenHash(ctx, hash)
	if err == nil {
		return client.Identity(), nil
	}
	if !errors.Is(err, domain.ErrClientNotFound) {
		return domain.Identity{}, err
	}
	return domain.Identity{}, domain.ErrResetTokenInvalid
}

func (s *AuthService) setResetToken(ctx context.Context, identity domain.Identity, hash string, expiry time.Time) error {
	if identity.Kind == domain.KindClient {
		return s.clients.SetResetToken(ctx, identity.ID, hash, expiry)
	}
	return s.users.SetResetToken(ctx, identity.ID, hash, expiry)
}

func (s *AuthService) clearResetToken(ctx context.Context, identity domain.Identity) error {
	if identity.Kind == domain.KindClient {
		return s.clients.ClearResetToken(ctx, identity.ID)
	}
	return s.users.ClearResetToken(ctx, identity.ID)
}

func (s *AuthService) setPassword(ctx context.Context, identity domain.Identity, hash string) error {
	if identity.Kind == domain.KindClient {
		return s.clients.SetPassword(ctx, identity.ID, hash)
	}
	return s.users.SetPassword(ctx, identity.ID, hash)
}

// hashResetToken produces the one-way fingerprint stored in place of the raw
// reset token.
func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
