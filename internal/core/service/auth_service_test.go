package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
	"github.com/worklane/hr-system/internal/core/token"
	"github.com/worklane/hr-system/pkg/password"
)

// --- Stubs ---

type stubUserRepo struct {
	user *domain.User

	mu               sync.Mutex
	refreshToken     *string
	resetTokenHash   string
	resetTokenExpiry time.Time
	resetCleared     bool
	passwordHash     string
}

func (r *stubUserRepo) storedRefreshToken() *string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshToken
}

func (r *stubUserRepo) clone() *domain.User {
	u := *r.user
	return &u
}

func (r *stubUserRepo) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.clone(), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.clone(), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUserNameOrEmail(_ context.Context, userName, email string) (*domain.User, error) {
	if r.user != nil && ((userName != "" && r.user.UserName == userName) || (email != "" && r.user.Email == email)) {
		return r.clone(), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByResetTokenHash(_ context.Context, hash string) (*domain.User, error) {
	if r.user != nil && r.resetTokenHash != "" && r.resetTokenHash == hash {
		u := r.clone()
		u.ResetTokenHash = r.resetTokenHash
		u.ResetTokenExpiry = r.resetTokenExpiry
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, _ ports.UserFilter) ([]domain.User, error) {
	return nil, nil
}

func (r *stubUserRepo) Dropdown(_ context.Context) ([]ports.UserOption, error) {
	return nil, nil
}

func (r *stubUserRepo) Update(_ context.Context, _ string, _ map[string]any) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserRepo) Delete(_ context.Context, _ string) error {
	return errors.New("not implemented")
}

func (r *stubUserRepo) SetRefreshToken(_ context.Context, id, refreshToken string) error {
	if r.user == nil || r.user.ID != id {
		return domain.ErrUserNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshToken = &refreshToken
	return nil
}

func (r *stubUserRepo) SetResetToken(_ context.Context, id, hash string, expiry time.Time) error {
	if r.user == nil || r.user.ID != id {
		return domain.ErrUserNotFound
	}
	r.resetTokenHash = hash
	r.resetTokenExpiry = expiry
	return nil
}

func (r *stubUserRepo) ClearResetToken(_ context.Context, id string) error {
	if r.user == nil || r.user.ID != id {
		return domain.ErrUserNotFound
	}
	r.resetTokenHash = ""
	r.resetTokenExpiry = time.Time{}
	r.resetCleared = true
	return nil
}

func (r *stubUserRepo) SetPassword(_ context.Context, id, passwordHash string) error {
	if r.user == nil || r.user.ID != id {
		return domain.ErrUserNotFound
	}
	r.passwordHash = passwordHash
	return nil
}

type stubClientRepo struct {
	client *domain.Client

	refreshToken     *string
	resetTokenHash   string
	resetTokenExpiry time.Time
}

func (r *stubClientRepo) clone() *domain.Client {
	c := *r.client
	return &c
}

func (r *stubClientRepo) Create(_ context.Context, _ *domain.Client) (*domain.Client, error) {
	return nil, errors.New("not implemented")
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	if r.client != nil && r.client.ID == id {
		return r.clone(), nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*domain.Client, error) {
	if r.client != nil && r.client.Email == email {
		return r.clone(), nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByResetTokenHash(_ context.Context, hash string) (*domain.Client, error) {
	if r.client != nil && r.resetTokenHash != "" && r.resetTokenHash == hash {
		c := r.clone()
		c.ResetTokenHash = r.resetTokenHash
		c.ResetTokenExpiry = r.resetTokenExpiry
		return c, nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) List(_ context.Context, _ ports.ClientFilter) ([]domain.Client, error) {
	return nil, nil
}

func (r *stubClientRepo) Update(_ context.Context, _ string, _ map[string]any) (*domain.Client, error) {
	return nil, errors.New("not implemented")
}

func (r *stubClientRepo) Delete(_ context.Context, _ string) error {
	return errors.New("not implemented")
}

func (r *stubClientRepo) SetRefreshToken(_ context.Context, id, refreshToken string) error {
	if r.client == nil || r.client.ID != id {
		return domain.ErrClientNotFound
	}
	r.refreshToken = &refreshToken
	return nil
}

func (r *stubClientRepo) SetResetToken(_ context.Context, id, hash string, expiry time.Time) error {
	if r.client == nil || r.client.ID != id {
		return domain.ErrClientNotFound
	}
	r.resetTokenHash = hash
	r.resetTokenExpiry = expiry
	return nil
}

func (r *stubClientRepo) ClearResetToken(_ context.Context, id string) error {
	if r.client == nil || r.client.ID != id {
		return domain.ErrClientNotFound
	}
	r.resetTokenHash = ""
	r.resetTokenExpiry = time.Time{}
	return nil
}

func (r *stubClientRepo) SetPassword(_ context.Context, id, passwordHash string) error {
	if r.client == nil || r.client.ID != id {
		return domain.ErrClientNotFound
	}
	return nil
}

type stubMailer struct {
	to   string
	link string
	err  error
}

func (m *stubMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	if m.err != nil {
		return m.err
	}
	m.to = to
	m.link = resetLink
	return nil
}

type stubThrottle struct {
	ok       bool
	err      error
	released bool
}

func (t *stubThrottle) Reserve(_ context.Context, _ string) (bool, error) {
	return t.ok, t.err
}

func (t *stubThrottle) Release(_ context.Context, _ string) error {
	t.released = true
	return nil
}

// --- Fixtures ---

func testIssuerConfig() token.Config {
	return token.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	}
}

func testUser(t *testing.T, plain string) *domain.User {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return &domain.User{
		ID:           "u1",
		UserName:     "alice",
		Email:        "alice@acme.io",
		FullName:     "Alice Doe",
		ClientID:     "acme",
		Department:   "finance",
		Role:         "admin",
		Status:       domain.StatusActive,
		PhoneNumber:  "555-0100",
		PasswordHash: hash,
	}
}

func testClient(t *testing.T, plain string) *domain.Client {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return &domain.Client{
		ID:           "c1",
		ClientID:     "acme",
		Name:         "Acme Corp",
		Email:        "ops@acme.io",
		PasswordHash: hash,
	}
}

func newTestAuthService(users ports.UserRepository, clients ports.ClientRepository, mailer ports.Mailer, throttle ResetThrottle) *AuthService {
	return NewAuthService(users, clients, AuthServiceConfig{
		Issuer:       token.NewIssuer(testIssuerConfig()),
		Mailer:       mailer,
		Throttle:     throttle,
		ResetBaseURL: "https://hr.worklane.io",
		ResetTTL:     10 * time.Minute,
		Logger:       zerolog.Nop(),
	})
}

// --- Login ---

func TestLogin_UserSuccess(t *testing.T) {
	users := &stubUserRepo{user: testUser(t, "secret123")}
	clients := &stubClientRepo{}
	svc := newTestAuthService(users, clients, &stubMailer{}, nil)

	res, err := svc.Login(context.Background(), ports.LoginInput{Email: "alice@acme.io", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, domain.KindUser, res.Identity.Kind)
	assert.Equal(t, "u1", res.Identity.ID)
	assert.Empty(t, res.Identity.PasswordHash, "credentials must not leave the auth layer")
	assert.Empty(t, res.Identity.RefreshToken)

	require.NotNil(t, users.refreshToken)
	assert.Equal(t, res.RefreshToken, *users.refreshToken)
	assert.Nil(t, clients.refreshToken)

	claims, err := token.NewVerifier(testIssuerConfig()).Verify(res.AccessToken, token.Access)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "alice@acme.io", claims.Email)
	assert.Equal(t, "Alice Doe", claims.Name)
	assert.Equal(t, "acme", claims.TenantID)
	assert.Equal(t, "admin", claims.Role)

	refresh, err := token.NewVerifier(testIssuerConfig()).Verify(res.RefreshToken, token.Refresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", refresh.Subject)
	assert.Empty(t, refresh.Email, "refresh token carries only the subject")
}

func TestLogin_ByUserName(t *testing.T) {
	users := &stubUserRepo{user: testUser(t, "secret123")}
	svc := newTestAuthService(users, &stubClientRepo{}, &stubMailer{}, nil)

	res, err := svc.Login(context.Background(), ports.LoginInput{UserName: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "u1", res.Identity.ID)
}

func TestLogin_ClientFallback(t *testing.T) {
	users := &stubUserRepo{}
	clients := &stubClientRepo{client: testClient(t, "tenant-pass")}
	svc := newTestAuthService(users, clients, &stubMailer{}, nil)

	res, err := svc.Login(context.Background(), ports.LoginInput{Email: "ops@acme.io", Password: "tenant-pass"})
	require.NoError(t, err)

	assert.Equal(t, domain.KindClient, res.Identity.Kind)
	assert.Equal(t, "c1", res.Identity.ID)
	require.NotNil(t, clients.refreshToken)
	assert.Equal(t, res.RefreshToken, *clients.refreshToken)
	assert.Nil(t, users.refreshToken)
}

func TestLogin_UserShadowsClientOnSameEmail(t *testing.T) {
	user := testUser(t, "user-pass")
	user.Email = "shared@acme.io"
	client := testClient(t, "client-pass")
	client.Email = "shared@acme.io"

	svc := newTestAuthService(&stubUserRepo{user: user}, &stubClientRepo{client: client}, &stubMailer{}, nil)

	res, err := svc.Login(context.Background(), ports.LoginInput{Email: "shared@acme.io", Password: "user-pass"})
	require.NoError(t, err)
	assert.Equal(t, domain.KindUser, res.Identity.Kind)

	// The shadowed client's password never reaches verification.
	_, err = svc.Login(context.Background(), ports.LoginInput{Email: "shared@acme.io", Password: "client-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownIdentity(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{}, &stubClientRepo{}, &stubMailer{}, nil)

	_, err := svc.Login(context.Background(), ports.LoginInput{Email: "ghost@acme.io", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{user: testUser(t, "secret123")}, &stubClientRepo{}, &stubMailer{}, nil)

	_, err := svc.Login(context.Background(), ports.LoginInput{Email: "alice@acme.io", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{}, &stubClientRepo{}, &stubMailer{}, nil)

	_, err := svc.Login(context.Background(), ports.LoginInput{Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Login(context.Background(), ports.LoginInput{Email: "alice@acme.io"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogin_ReissueOverwritesRefreshToken(t *testing.T) {
	users := &stubUserRepo{user: testUser(t, "secret123")}
	svc := newTestAuthService(users, &stubClientRepo{}, &stubMailer{}, nil)

	_, err := svc.Login(context.Background(), ports.LoginInput{Email: "alice@acme.io", Password: "secret123"})
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), ports.LoginInput{Email: "alice@acme.io", Password: "secret123"})
	require.NoError(t, err)

	require.NotNil(t, users.refreshToken)
	assert.Equal(t, second.RefreshToken, *users.refreshToken, "the stored refresh token is always the latest issued")
}

func TestLogin_ConcurrentLoginsStoreOneIssuedToken(t *testing.T) {
	users := &stubUserRepo{user: testUser(t, "secret123")}
	svc := newTestAuthService(users, &stubClientRepo{}, &stubMailer{}, nil)

	results := make(chan *ports.LoginResult, 2)
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Login(context.Background(), ports.LoginInput{Email: "alice@acme.io", Password: "secret123"})
			if err != nil {
				errs <- err
				return
			}
			results <- res
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("login failed: %v", err)
	}

	var issued []string
	for res := range results {
		issued = append(issued, res.RefreshToken)
	}
	require.Len(t, issued, 2)

	stored := users.storedRefreshToken()
	require.NotNil(t, stored)
	// Whichever login wrote last wins; the stored token is always one of
	// the two issued, never a mix.
	assert.Contains(t, issued, *stored)
}

// --- Logout ---

func TestLogout_ClearsRefreshTokenByKind(t *testing.T) {
	users := &stubUserRepo{user: testUser(t, "x")}
	clients := &stubClientRepo{client: testClient(t, "x")}
	svc := newTestAuthService(users, clients, &stubMailer{}, nil)

	require.NoError(t, svc.Logout(context.Background(), domain.Identity{Kind: domain.KindClient, ID: "c1"}))
	require.NotNil(t, clients.refreshToken)
	assert.Empty(t, *clients.refreshToken)
	assert.Nil(t, users.refreshToken, "user collection must be untouched for a client logout")
}

func TestLogout_Unauthenticated(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{}, &stubClientRepo{}, &stubMailer{}, nil)

	err := svc.Logout(context.Background(), domain.Identity{})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

// --- ForgetPassword ---

func TestForgetPassword_StoresHashAndMailsRawToken(t *testing.T) {
	users := &stubUserRepo{user: testUser(t, "x")}
	mailer := &stubMailer{}
	svc := newTestAuthService(users, &stubClientRepo{}, mailer, &stubThrottle{ok: true})

	require.NoError(t, svc.ForgetPassword(context.Background(), "alice@acme.io"))

	assert.Equal(t, "alice@acme.io", mailer.to)

	const prefix = "https://hr.worklane.io/reset-password/"
	require.True(t, strings.HasPrefix(mailer.link, prefix), "unexpected link: %s", mailer.link)
	raw := strings.TrimPrefix(mailer.link, prefix)
	require.NotEmpty(t, raw)

	assert.NotEqual(t, raw, users.resetTokenHash, "raw token must never be persisted")
	assert.Equal(t, hashResetToken(raw), users.resetTokenHash)
	assert.WithinDuration(t, time.Now().UTC().Add(10*time.Minute), users.resetTokenExpiry, 5*time.Second)
}

func TestForgetPassword_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{}, &stubClientRepo{}, &stubMailer{}, nil)

	err := svc.ForgetPassword(context.Background(), "ghost@acme.io")
	assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
}

func TestForgetPassword_Throttled(t *testing.T) {
	mailer := &stubMailer{}
	svc := newTestAuthService(&stubUserRepo{user: testUser(t, "x")}, &stubClientRepo{}, mailer, &stubThrottle{ok: false})

	err := svc.ForgetPassword(context.Background(), "alice@acme.io")
	assert.ErrorIs(t, err, domain.ErrResetThrottled)
	assert.Empty(t, mailer.to, "no mail on a throttled request")
}

func TestForgetPassword_ThrottleErrorIsNotFatal(t *testing.T) {
	mailer := &stubMailer{}
	svc := newTestAuthService(&stubUserRepo{user: testUser(t, "x")}, &stubClientRepo{}, mailer, &stubThrottle{err: errors.New("redis down")})

	require.NoError(t, svc.ForgetPassword(context.Background(), "alice@acme.io"))
	assert.NotEmpty(t, mailer.to)
}

func TestForgetPassword_MailFailureRollsBack(t *testing.T) {
	users := &stubUserRepo{user: testUser(t, "x")}
	throttle := &stubThrottle{ok: true}
	svc := newTestAuthService(users, &stubClientRepo{}, &stubMailer{err: errors.New("smtp down")}, throttle)

	err := svc.ForgetPassword(context.Background(), "alice@acme.io")
	assert.ErrorIs(t, err, domain.ErrMailDelivery)

	assert.True(t, users.resetCleared, "stored reset token must be rolled back")
	assert.Empty(t, users.resetTokenHash)
	assert.True(t, throttle.released, "throttle slot must be released so the user can retry")
}

// --- ResetPassword ---

func TestResetPassword_Success(t *testing.T) {
	users := &stubUserRepo{user: testUser(t, "old-pass")}
	users.resetTokenHash = hashResetToken("raw-token")
	users.resetTokenExpiry = time.Now().UTC().Add(5 * time.Minute)

	svc := newTestAuthService(users, &stubClientRepo{}, &stubMailer{}, nil)

	require.NoError(t, svc.ResetPassword(context.Background(), "raw-token", "new-pass"))

	require.NotEmpty(t, users.passwordHash)
	assert.True(t, password.Verify("new-pass", users.passwordHash))
	assert.True(t, users.resetCleared)
	require.NotNil(t, users.refreshToken)
	assert.Empty(t, *users.refreshToken, "active session must be invalidated")
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	users := &stubUserRepo{user: testUser(t, "old-pass")}
	users.resetTokenHash = hashResetToken("raw-token")
	users.resetTokenExpiry = time.Now().UTC().Add(-time.Minute)

	svc := newTestAuthService(users, &stubClientRepo{}, &stubMailer{}, nil)

	err := svc.ResetPassword(context.Background(), "raw-token", "new-pass")
	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
	assert.Empty(t, users.passwordHash)
}

func TestResetPassword_UnknownToken(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{}, &stubClientRepo{}, &stubMailer{}, nil)

	err := svc.ResetPassword(context.Background(), "no-such-token", "new-pass")
	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
}

func TestResetPassword_MissingInput(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{}, &stubClientRepo{}, &stubMailer{}, nil)

	assert.ErrorIs(t, svc.ResetPassword(context.Background(), "", "new-pass"), domain.ErrValidation)
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), "raw", ""), domain.ErrValidation)
}

// --- Resolution ---

func TestResolveByID_UserFirst(t *testing.T) {
	users := &stubUserRepo{user: testUser(t, "x")}
	clients := &stubClientRepo{client: testClient(t, "x")}
	svc := newTestAuthService(users, clients, &stubMailer{}, nil)

	ident, err := svc.ResolveByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.KindUser, ident.Kind)

	ident, err = svc.ResolveByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.KindClient, ident.Kind)

	_, err = svc.ResolveByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
}
