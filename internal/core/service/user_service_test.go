package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
	"github.com/worklane/hr-system/pkg/password"
)

// recordingUserRepo captures writes so tests can inspect what the service
// persisted.
type recordingUserRepo struct {
	created *domain.User
	updated map[string]any
}

func (r *recordingUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	u := *user
	u.ID = "u1"
	r.created = &u
	return &u, nil
}

func (r *recordingUserRepo) FindByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *recordingUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *recordingUserRepo) FindByUserNameOrEmail(_ context.Context, _, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *recordingUserRepo) FindByResetTokenHash(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *recordingUserRepo) List(_ context.Context, _ ports.UserFilter) ([]domain.User, error) {
	return nil, nil
}

func (r *recordingUserRepo) Dropdown(_ context.Context) ([]ports.UserOption, error) {
	return nil, nil
}

func (r *recordingUserRepo) Update(_ context.Context, _ string, updates map[string]any) (*domain.User, error) {
	r.updated = updates
	return &domain.User{ID: "u1"}, nil
}

func (r *recordingUserRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *recordingUserRepo) SetRefreshToken(_ context.Context, _, _ string) error { return nil }

func (r *recordingUserRepo) SetResetToken(_ context.Context, _, _ string, _ time.Time) error {
	return nil
}

func (r *recordingUserRepo) ClearResetToken(_ context.Context, _ string) error { return nil }

func (r *recordingUserRepo) SetPassword(_ context.Context, _, _ string) error { return nil }

func TestRegister_HashesPasswordAndLowercases(t *testing.T) {
	repo := &recordingUserRepo{}
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Register(context.Background(), ports.RegisterUserInput{
		UserName: "Alice",
		Email:    "Alice@Acme.IO",
		FullName: "Alice Doe",
		Password: "secret123",
		ClientID: "acme",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", created.UserName)
	assert.Equal(t, "alice@acme.io", created.Email)
	assert.Equal(t, domain.StatusActive, created.Status)

	assert.NotEqual(t, "secret123", repo.created.PasswordHash)
	assert.True(t, password.Verify("secret123", repo.created.PasswordHash))
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewUserService(&recordingUserRepo{}, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterUserInput{UserName: "alice"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserUpdate_RehashesPlaintextPassword(t *testing.T) {
	repo := &recordingUserRepo{}
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), "u1", map[string]any{"password": "new-pass"})
	require.NoError(t, err)

	stored, ok := repo.updated["password"].(string)
	require.True(t, ok)
	assert.NotEqual(t, "new-pass", stored)
	assert.True(t, password.Verify("new-pass", stored))
}

func TestUserUpdate_LeavesExistingHashAlone(t *testing.T) {
	repo := &recordingUserRepo{}
	svc := NewUserService(repo, zerolog.Nop())

	hash, err := password.Hash("already-hashed")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "u1", map[string]any{"password": hash})
	require.NoError(t, err)
	assert.Equal(t, hash, repo.updated["password"], "a stored hash must not be rehashed")
}

func TestUserUpdate_DropsEmptyPassword(t *testing.T) {
	repo := &recordingUserRepo{}
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), "u1", map[string]any{"password": "", "department": "hr"})
	require.NoError(t, err)

	_, present := repo.updated["password"]
	assert.False(t, present)
	assert.Equal(t, "hr", repo.updated["department"])
}
