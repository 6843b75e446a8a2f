// Package token issues and verifies the signed credentials used by the
// session layer: a short-lived access token carrying identity claims and a
// longer-lived refresh token carrying only the subject id. Access and
// refresh tokens are signed with distinct HMAC secrets.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/worklane/hr-system/internal/core/domain"
)

// Kind selects which secret a token is signed and verified with.
type Kind string

const (
	Access  Kind = "access"
	Refresh Kind = "refresh"
)

var (
	ErrMalformed = errors.New("malformed token")
	ErrExpired   = errors.New("token expired")
	ErrInvalid   = errors.New("invalid token")
)

const (
	defaultAccessTTL  = 24 * time.Hour
	defaultRefreshTTL = 10 * 24 * time.Hour
)

// Config carries the signing secrets and lifetimes. It is injected at
// construction; nothing in this package reads ambient state.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func (c Config) withDefaults() Config {
	if c.AccessTTL <= 0 {
		c.AccessTTL = defaultAccessTTL
	}
	if c.RefreshTTL <= 0 {
		c.RefreshTTL = defaultRefreshTTL
	}
	return c
}

func (c Config) secret(kind Kind) []byte {
	if kind == Refresh {
		return []byte(c.RefreshSecret)
	}
	return []byte(c.AccessSecret)
}

// Claims is the decoded content of a verified token. For refresh tokens only
// Subject is populated.
type Claims struct {
	Subject     string
	Email       string
	Name        string
	TenantID    string
	Role        string
	Status      string
	PhoneNumber string
}

// Issuer mints signed tokens for an identity.
type Issuer struct {
	cfg Config
}

func NewIssuer(cfg Config) *Issuer {
	return &Issuer{cfg: cfg.withDefaults()}
}

// Access returns a signed access token embedding the identity claims.
func (i *Issuer) Access(id domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       id.ID,
		"email":     id.Email,
		"name":      id.Name,
		"client_id": id.TenantID,
		"role":      id.Role,
		"status":    id.Status,
		"phone":     id.PhoneNumber,
		"iat":       now.Unix(),
		"exp":       now.Add(i.cfg.AccessTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.cfg.secret(Access))
}

// Refresh returns a signed refresh token embedding only the subject id.
func (i *Issuer) Refresh(id domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": id.ID,
		"iat": now.Unix(),
		"exp": now.Add(i.cfg.RefreshTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.cfg.secret(Refresh))
}

// Verifier checks token integrity and expiry and extracts claims. It never
// rejects a well-formed token for carrying unrecognized claims.
type Verifier struct {
	cfg Config
}

func NewVerifier(cfg Config) *Verifier {
	return &Verifier{cfg: cfg.withDefaults()}
}

// Verify validates signature and expiry against the secret for kind.
func (v *Verifier) Verify(signed string, kind Kind) (Claims, error) {
	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(signed, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.cfg.secret(kind), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		default:
			return Claims{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if !tkn.Valid {
		return Claims{}, ErrInvalid
	}

	return Claims{
		Subject:     str(mc, "sub"),
		Email:       str(mc, "email"),
		Name:        str(mc, "name"),
		TenantID:    str(mc, "client_id"),
		Role:        str(mc, "role"),
		Status:      str(mc, "status"),
		PhoneNumber: str(mc, "phone"),
	}, nil
}

func str(mc jwt.MapClaims, key string) string {
	s, _ := mc[key].(string)
	return s
}
