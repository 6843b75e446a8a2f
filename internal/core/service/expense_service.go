package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
)

// ExpenseService implements reimbursement claim management.
type ExpenseService struct {
	repo ports.ExpenseRepository
	log  zerolog.Logger
}

func NewExpenseService(repo ports.ExpenseRepository, log zerolog.Logger) *ExpenseService {
	return &ExpenseService{repo: repo, log: log}
}

func (s *ExpenseService) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense.ClientID == "" || expense.UserID == "" || expense.UserName == "" ||
		expense.Description == "" || expense.Category == "" ||
		expense.Amount == 0 || expense.DateOfSubmitted.IsZero() {
		return nil, domain.ErrValidation
	}
	if expense.Status == "" {
		expense.Status = domain.ExpensePending
	}
	if !expense.Status.Valid() {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	created, err := s.repo.Create(ctx, expense)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("user_id", created.UserID).Msg("expense created")
	return created, nil
}

func (s *ExpenseService) Get(ctx context.Context, id string) (*domain.Expense, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ExpenseService) List(ctx context.Context, filter ports.ExpenseFilter) ([]domain.Expense, error) {
	return s.repo.List(ctx, filter)
}

// ListOwn restricts the query to the caller's own records: an explicit
// UserID other than the caller's is forbidden, an absent one defaults to the
// caller.
func (s *ExpenseService) ListOwn(ctx context.Context, caller domain.Identity, filter ports.ExpenseFilter) ([]domain.Expense, error) {
	if caller.ID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if filter.UserID != "" && filter.UserID != caller.ID {
		return nil, domain.ErrForbidden
	}
	filter.UserID = caller.ID
	return s.repo.List(ctx, filter)
}

func (s *ExpenseService) Update(ctx context.Context, id string, updates map[string]any) (*domain.Expense, error) {
	if len(updates) == 0 {
		return nil, domain.ErrValidation
	}
	if raw, ok := updates["status"].(string); ok && !domain.ExpenseStatus(raw).Valid() {
		return nil, domain.ErrValidation
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("expense deleted")
	return nil
}
