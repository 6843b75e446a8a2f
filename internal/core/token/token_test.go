package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hr-system/internal/core/domain"
)

var testConfig = Config{
	AccessSecret:  "access-secret",
	RefreshSecret: "refresh-secret",
	AccessTTL:     time.Hour,
	RefreshTTL:    10 * time.Hour,
}

func testIdentity() domain.Identity {
	return domain.Identity{
		Kind:        domain.KindUser,
		ID:          "64f0c2a1b3d4e5f601234567",
		Email:       "a@x.com",
		Name:        "Alice Smith",
		TenantID:    "client_1",
		Role:        "employee",
		Status:      "active",
		PhoneNumber: "555-0100",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer := NewIssuer(testConfig)
	verifier := NewVerifier(testConfig)

	signed, err := issuer.Access(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := verifier.Verify(signed, Access)
	require.NoError(t, err)
	assert.Equal(t, "64f0c2a1b3d4e5f601234567", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "client_1", claims.TenantID)
	assert.Equal(t, "employee", claims.Role)
	assert.Equal(t, "active", claims.Status)
}

func TestRefreshTokenCarriesOnlySubject(t *testing.T) {
	issuer := NewIssuer(testConfig)
	verifier := NewVerifier(testConfig)

	signed, err := issuer.Refresh(testIdentity())
	require.NoError(t, err)

	claims, err := verifier.Verify(signed, Refresh)
	require.NoError(t, err)
	assert.Equal(t, "64f0c2a1b3d4e5f601234567", claims.Subject)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Role)
}

func TestVerifyWrongKindSecret(t *testing.T) {
	issuer := NewIssuer(testConfig)
	verifier := NewVerifier(testConfig)

	signed, err := issuer.Access(testIdentity())
	require.NoError(t, err)

	_, err = verifier.Verify(signed, Refresh)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewIssuer(testConfig)
	other := NewVerifier(Config{AccessSecret: "different", RefreshSecret: "also-different"})

	signed, err := issuer.Access(testIdentity())
	require.NoError(t, err)

	_, err = other.Verify(signed, Access)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyExpired(t *testing.T) {
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "64f0c2a1b3d4e5f601234567",
		"iat": now.Add(-time.Hour).Unix(),
		"exp": now.Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte(testConfig.AccessSecret))
	require.NoError(t, err)

	verifier := NewVerifier(testConfig)
	_, err = verifier.Verify(signed, Access)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyMalformed(t *testing.T) {
	verifier := NewVerifier(testConfig)
	_, err := verifier.Verify("not-a-token", Access)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestVerifyRejectsWrongAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "64f0c2a1b3d4e5f601234567",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	verifier := NewVerifier(testConfig)
	_, err = verifier.Verify(signed, Access)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyIgnoresUnknownClaims(t *testing.T) {
	now := time.Now()
	extra := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       "64f0c2a1b3d4e5f601234567",
		"exp":       now.Add(time.Hour).Unix(),
		"some_flag": true,
		"nested":    map[string]any{"a": 1},
	})
	signed, err := extra.SignedString([]byte(testConfig.AccessSecret))
	require.NoError(t, err)

	claims, err := NewVerifier(testConfig).Verify(signed, Access)
	require.NoError(t, err)
	assert.Equal(t, "64f0c2a1b3d4e5f601234567", claims.Subject)
}
