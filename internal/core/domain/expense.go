package domain

import "time"

// ExpenseStatus represents the review state of a reimbursement claim.
type ExpenseStatus string

const (
	ExpenseApproved ExpenseStatus = "Approved"
	ExpensePending  ExpenseStatus = "Pending"
	ExpenseRejected ExpenseStatus = "Rejected"
)

// Valid reports whether s is a known expense status.
func (s ExpenseStatus) Valid() bool {
	switch s {
	case ExpenseApproved, ExpensePending, ExpenseRejected:
		return true
	}
	return false
}

// Expense is a reimbursement claim submitted by a user.
type Expense struct {
	ID              string        `json:"id" bson:"-"`
	ClientID        string        `json:"client_id" bson:"client_id"`
	UserID          string        `json:"user_id" bson:"user_id"`
	UserName        string        `json:"user_name" bson:"user_name"`
	Amount          float64       `json:"amount" bson:"amount"`
	Description     string        `json:"description" bson:"description"`
	Category        string        `json:"category" bson:"category"`
	Status          ExpenseStatus `json:"status" bson:"status"`
	DateOfSubmitted time.Time     `json:"date_of_submitted" bson:"date_of_submitted"`
	Attachment      string        `json:"attachment,omitempty" bson:"attachment,omitempty"`
	Scan            string        `json:"scan,omitempty" bson:"scan,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}
