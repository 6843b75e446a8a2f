package domain

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const RoleAdmin = "admin"

// User models an employee belonging to exactly one tenant (ClientID).
type User struct {
	ID          string `json:"id"`
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	ClientID    string `json:"client_id"`
	Department  string `json:"department"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	PhoneNumber string `json:"phone_number"`

	PasswordHash     string    `json:"-"`
	RefreshToken     string    `json:"-"`
	ResetTokenHash   string    `json:"-"`
	ResetTokenExpiry time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity converts the user into the auth layer's tagged variant.
func (u *User) Identity() Identity {
	return Identity{
		Kind:             KindUser,
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.FullName,
		UserName:         u.UserName,
		TenantID:         u.ClientID,
		Role:             u.Role,
		Status:           u.Status,
		PhoneNumber:      u.PhoneNumber,
		PasswordHash:     u.PasswordHash,
		RefreshToken:     u.RefreshToken,
		ResetTokenHash:   u.ResetTokenHash,
		ResetTokenExpiry: u.ResetTokenExpiry,
	}
}
