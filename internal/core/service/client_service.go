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

// ClientService implements tenant management.
type ClientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, log: log}
}

func (s *ClientService) Create(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	if in.ClientID == "" || in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := &domain.Client{
		ClientID:     in.ClientID,
		Name:         in.Name,
		Email:        strings.ToLower(in.Email),
		PasswordHash: hash,
		Description:  in.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("client_id", created.ClientID).Msg("client created")
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context, filter ports.ClientFilter) ([]domain.Client, error) {
	return s.repo.List(ctx, filter)
}

// Update applies a partial field set, rehashing a plaintext password like
// UserService.Update does.
func (s *ClientService) Update(ctx context.Context, id string, updates map[string]any) (*domain.Client, error) {
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

	return s.repo.Update(ctx, id, updates)
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("client deleted")
	return nil
}
