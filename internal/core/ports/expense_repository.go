package ports

import (
	"context"
	"time"

	"github.com/worklane/hr-system/internal/core/domain"
)

// ExpenseFilter narrows List results. UserName matches case-insensitively;
// the other fields are exact. A zero DateOfSubmitted is ignored.
type ExpenseFilter struct {
	ClientID        string
	UserID          string
	UserName        string
	Status          string
	DateOfSubmitted time.Time
}

// ExpenseRepository defines persistence for the expenses collection.
// Update applies a partial field set to the stored document.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	FindByID(ctx context.Context, id string) (*domain.Expense, error)
	List(ctx context.Context, filter ExpenseFilter) ([]domain.Expense, error)
	Update(ctx context.Context, id string, updates map[string]any) (*domain.Expense, error)
	Delete(ctx context.Context, id string) error
}
