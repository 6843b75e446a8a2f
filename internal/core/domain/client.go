package domain

import "time"

// Client is a tenant organization. Clients hold their own credentials and
// can authenticate through the same session endpoints as users.
type Client struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description,omitempty"`

	PasswordHash     string    `json:"-"`
	RefreshToken     string    `json:"-"`
	ResetTokenHash   string    `json:"-"`
	ResetTokenExpiry time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity converts the client into the auth layer's tagged variant.
func (c *Client) Identity() Identity {
	return Identity{
		Kind:             KindClient,
		ID:               c.ID,
		Email:            c.Email,
		Name:             c.Name,
		TenantID:         c.ClientID,
		PasswordHash:     c.PasswordHash,
		RefreshToken:     c.RefreshToken,
		ResetTokenHash:   c.ResetTokenHash,
		ResetTokenExpiry: c.ResetTokenExpiry,
	}
}
