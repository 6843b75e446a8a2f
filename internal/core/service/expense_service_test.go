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
)

type stubExpenseRepo struct {
	expenses   []domain.Expense
	lastFilter ports.ExpenseFilter
	created    *domain.Expense
	updated    map[string]any
}

func (r *stubExpenseRepo) Create(_ context.Context, expense *domain.Expense) (*domain.Expense, error) {
	e := *expense
	e.ID = "e1"
	r.created = &e
	return &e, nil
}

func (r *stubExpenseRepo) FindByID(_ context.Context, id string) (*domain.Expense, error) {
	for _, e := range r.expenses {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrExpenseNotFound
}

func (r *stubExpenseRepo) List(_ context.Context, filter ports.ExpenseFilter) ([]domain.Expense, error) {
	r.lastFilter = filter
	var out []domain.Expense
	for _, e := range r.expenses {
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, id string, updates map[string]any) (*domain.Expense, error) {
	r.updated = updates
	return r.FindByID(context.Background(), id)
}

func (r *stubExpenseRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func validExpense() *domain.Expense {
	return &domain.Expense{
		ClientID:        "acme",
		UserID:          "u1",
		UserName:        "alice",
		Amount:          42.50,
		Description:     "taxi to client site",
		Category:        "travel",
		DateOfSubmitted: time.Now().UTC(),
	}
}

func TestExpenseCreate_DefaultsToPending(t *testing.T) {
	repo := &stubExpenseRepo{}
	svc := NewExpenseService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validExpense())
	require.NoError(t, err)
	assert.Equal(t, domain.ExpensePending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestExpenseCreate_RejectsMissingFields(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{}, zerolog.Nop())

	e := validExpense()
	e.Category = ""
	_, err := svc.Create(context.Background(), e)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExpenseCreate_RejectsUnknownStatus(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{}, zerolog.Nop())

	e := validExpense()
	e.Status = "Archived"
	_, err := svc.Create(context.Background(), e)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListOwn_DefaultsToCaller(t *testing.T) {
	repo := &stubExpenseRepo{expenses: []domain.Expense{
		{ID: "e1", UserID: "u1"},
		{ID: "e2", UserID: "u2"},
	}}
	svc := NewExpenseService(repo, zerolog.Nop())

	out, err := svc.ListOwn(context.Background(), domain.Identity{Kind: domain.KindUser, ID: "u1"}, ports.ExpenseFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "e1", out[0].ID)
	assert.Equal(t, "u1", repo.lastFilter.UserID)
}

func TestListOwn_ForbidsOtherUsers(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{}, zerolog.Nop())

	_, err := svc.ListOwn(context.Background(), domain.Identity{ID: "u1"}, ports.ExpenseFilter{UserID: "u2"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListOwn_AllowsExplicitOwnID(t *testing.T) {
	repo := &stubExpenseRepo{expenses: []domain.Expense{{ID: "e1", UserID: "u1"}}}
	svc := NewExpenseService(repo, zerolog.Nop())

	out, err := svc.ListOwn(context.Background(), domain.Identity{ID: "u1"}, ports.ExpenseFilter{UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestListOwn_RequiresIdentity(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{}, zerolog.Nop())

	_, err := svc.ListOwn(context.Background(), domain.Identity{}, ports.ExpenseFilter{})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestExpenseUpdate_ValidatesStatus(t *testing.T) {
	repo := &stubExpenseRepo{expenses: []domain.Expense{{ID: "e1", UserID: "u1"}}}
	svc := NewExpenseService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), "e1", map[string]any{"status": "Archived"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Update(context.Background(), "e1", map[string]any{"status": "Approved"})
	require.NoError(t, err)
	assert.Equal(t, "Approved", repo.updated["status"])
}

func TestExpenseUpdate_RejectsEmptySet(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{}, zerolog.Nop())

	_, err := svc.Update(context.Background(), "e1", map[string]any{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
