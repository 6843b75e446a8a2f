package ports

import (
	"context"

	"github.com/worklane/hr-system/internal/core/domain"
)

// ExpenseService implements expense operations. ListOwn scopes the query to
// the calling identity: asking for another user's expenses is forbidden.
type ExpenseService interface {
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	Get(ctx context.Context, id string) (*domain.Expense, error)
	List(ctx context.Context, filter ExpenseFilter) ([]domain.Expense, error)
	ListOwn(ctx context.Context, caller domain.Identity, filter ExpenseFilter) ([]domain.Expense, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.Expense, error)
	Delete(ctx context.Context, id string) error
}
