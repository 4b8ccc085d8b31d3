package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"seedco-api/internal/data/entity"
	"seedco-api/internal/data/repository"
	"seedco-api/pkg/middleware"
	"seedco-api/pkg/utils"
)

const testSecret = "unit-test-secret"

// stubUserRepo serves FindByID from a map; the middleware touches nothing
// else, so the rest of the interface just errors.
type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
	err   error
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

var errNotImplemented = errors.New("not implemented in stub")

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[id], nil
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	return errNotImplemented
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errNotImplemented
}

func (s *stubUserRepo) FindAll(ctx context.Context, role *entity.UserRole, limit, offset int) ([]*entity.User, error) {
	return nil, errNotImplemented
}

func (s *stubUserRepo) Count(ctx context.Context, role *entity.UserRole) (int64, error) {
	return 0, errNotImplemented
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, fields entity.ProfileUpdate) (*entity.User, error) {
	return nil, errNotImplemented
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return errNotImplemented
}

func (s *stubUserRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return errNotImplemented
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return errNotImplemented
}

func makeUser(role entity.UserRole, active bool) *entity.User {
	now := time.Now()
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		IsActive:  active,
	}
}

// contextProbe records whether a user reached the handler.
type contextProbe struct {
	called bool
	user   *entity.User
	hasU   bool
}

func (p *contextProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.user, p.hasU = utils.UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func runAuthenticate(t *testing.T, repo repository.UserRepository, authHeader string) (*contextProbe, *httptest.ResponseRecorder) {
	t.Helper()

	probe := &contextProbe{}
	handler := middleware.Authenticate(repo, testSecret, zap.NewNop())(probe.handler())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return probe, rec
}

func TestAuthenticate_NoHeaderIsAnonymous(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]*entity.User{}}

	probe, rec := runAuthenticate(t, repo, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, probe.called)
	assert.False(t, probe.hasU)
}

func TestAuthenticate_MalformedHeaderIsAnonymous(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]*entity.User{}}

	for _, header := range []string{"Bearer", "Token abc", "Bearer "} {
		probe, rec := runAuthenticate(t, repo, header)

		assert.Equal(t, http.StatusOK, rec.Code, "header %q", header)
		assert.True(t, probe.called, "header %q", header)
		assert.False(t, probe.hasU, "header %q", header)
	}
}

func TestAuthenticate_BadTokenIsAnonymous(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]*entity.User{}}

	probe, rec := runAuthenticate(t, repo, "Bearer not.a.real.token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, probe.called)
	assert.False(t, probe.hasU)
}

func TestAuthenticate_ValidTokenResolvesUser(t *testing.T) {
	user := makeUser(entity.RoleCustomer, true)
	repo := &stubUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}

	token, _, err := utils.GenerateToken(testSecret, user.ID, time.Hour)
	require.NoError(t, err)

	probe, rec := runAuthenticate(t, repo, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, probe.hasU)
	assert.Equal(t, user.ID, probe.user.ID)
}

func TestAuthenticate_VanishedUserIsAnonymous(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]*entity.User{}}

	token, _, err := utils.GenerateToken(testSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	probe, rec := runAuthenticate(t, repo, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, probe.called)
	assert.False(t, probe.hasU)
}

func TestAuthenticate_DeactivatedUserIsAnonymous(t *testing.T) {
	user := makeUser(entity.RoleCustomer, false)
	repo := &stubUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}

	token, _, err := utils.GenerateToken(testSecret, user.ID, time.Hour)
	require.NoError(t, err)

	probe, rec := runAuthenticate(t, repo, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, probe.called)
	assert.False(t, probe.hasU)
}

func TestAuthenticate_RepoErrorIsAnonymous(t *testing.T) {
	repo := &stubUserRepo{err: errors.New("db down")}

	token, _, err := utils.GenerateToken(testSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	probe, rec := runAuthenticate(t, repo, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, probe.called)
	assert.False(t, probe.hasU)
}

func runGate(t *testing.T, gate func(http.Handler) http.Handler, user *entity.User) (*contextProbe, *httptest.ResponseRecorder) {
	t.Helper()

	probe := &contextProbe{}
	handler := gate(probe.handler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	if user != nil {
		req = req.WithContext(utils.SetUserContext(req.Context(), user))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return probe, rec
}

func TestRequireAuth(t *testing.T) {
	probe, rec := runGate(t, middleware.RequireAuth(zap.NewNop()), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, probe.called)
	assert.Contains(t, rec.Body.String(), "Authentication required")

	probe, rec = runGate(t, middleware.RequireAuth(zap.NewNop()), makeUser(entity.RoleCustomer, true))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, probe.called)
}

func TestRequireAdmin(t *testing.T) {
	probe, rec := runGate(t, middleware.RequireAdmin(zap.NewNop()), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, probe.called)

	probe, rec = runGate(t, middleware.RequireAdmin(zap.NewNop()), makeUser(entity.RoleCustomer, true))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, probe.called)
	assert.Contains(t, rec.Body.String(), "Admin access required")

	probe, rec = runGate(t, middleware.RequireAdmin(zap.NewNop()), makeUser(entity.RoleAdmin, true))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, probe.called)
}

func TestRequireCustomer(t *testing.T) {
	probe, rec := runGate(t, middleware.RequireCustomer(zap.NewNop()), makeUser(entity.RoleAdmin, true))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, probe.called)
	assert.Contains(t, rec.Body.String(), "Customer access required")

	probe, rec = runGate(t, middleware.RequireCustomer(zap.NewNop()), makeUser(entity.RoleCustomer, true))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, probe.called)
}
