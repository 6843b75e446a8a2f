package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
	"github.com/worklane/hr-system/pkg/password"
)

// UserService implements employee management.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Register hashes the password and persists a new user. userName is stored
// lowercased.
func (s *UserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	if in.UserName == "" || in.Email == "" || in.FullName == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}

	now := time.Now().UTC()
	user := &domain.User{
		UserName:     strings.ToLower(in.UserName),
		Email:        strings.ToLower(in.Email),
		FullName:     in.FullName,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		ClientID:     in.ClientID,
		Department:   in.Department,
		Role:         in.Role,
		Status:       status,
		PhoneNumber:  in.PhoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("user_name", created.UserName).Msg("user registered")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, filter ports.UserFilter) ([]domain.User, error) {
	return s.repo.List(ctx, filter)
}

func (s *UserService) Dropdown(ctx context.Context) ([]ports.UserOption, error) {
	return s.repo.Dropdown(ctx)
}

// Update applies a partial field set. A plaintext "password" in the update
// set is rehashed; anything already hashed is stored as-is so unrelated
// saves never touch the credential.
func (s *UserService) Update(ctx context.Context, id string, updates map[string]any) (*domain.User, error) {
	if len(updates) == 0 {
		return nil, domain.ErrValidation
	}

	if raw, ok := updates["password"].(string); ok {
		if raw == "" {
			delete(updates, "password")
		} else if !password.IsHash(raw) {
			hash, err := password.Hash(raw)
			if err != nil {
				return nil, err
			}
			updates["password"] = hash
		}
	}

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("user deleted")
	return nil
}
