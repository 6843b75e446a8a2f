package domain

import "time"

// IdentityKind discriminates the two record types that can authenticate.
type IdentityKind string

const (
	KindUser   IdentityKind = "user"
	KindClient IdentityKind = "client"
)

// Identity is the tagged-variant view of a User or Client used by the auth
// layer. Resolvers return it with credential fields populated; Sanitize
// must be called before it crosses out of the auth layer.
type Identity struct {
	Kind        IdentityKind `json:"kind"`
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	Name        string       `json:"name"`
	UserName    string       `json:"user_name,omitempty"`
	TenantID    string       `json:"client_id,omitempty"`
	Role        string       `json:"role,omitempty"`
	Status      string       `json:"status,omitempty"`
	PhoneNumber string       `json:"phone_number,omitempty"`

	PasswordHash     string    `json:"-"`
	RefreshToken     string    `json:"-"`
	ResetTokenHash   string    `json:"-"`
	ResetTokenExpiry time.Time `json:"-"`
}

// Sanitize returns a copy with all credential material removed.
func (i Identity) Sanitize() Identity {
	i.PasswordHash = ""
	i.RefreshToken = ""
	i.ResetTokenHash = ""
	i.ResetTokenExpiry = time.Time{}
	return i
}
