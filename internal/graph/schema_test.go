package graph_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"seedco-api/internal/data/entity"
	"seedco-api/internal/data/repository"
	"seedco-api/internal/graph"
	"seedco-api/internal/usecase"
	"seedco-api/pkg/utils"
)

// memUserRepo is a map-backed UserRepository; just enough for executing
// queries against a real schema.
type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *user
	m.users[user.ID] = &c
	return nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindAll(ctx context.Context, role *entity.UserRole, limit, offset int) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.User
	for _, u := range m.users {
		if role != nil && u.Role != *role {
			continue
		}
		c := *u
		out = append(out, &c)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memUserRepo) Count(ctx context.Context, role *entity.UserRole) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, u := range m.users {
		if role == nil || u.Role == *role {
			n++
		}
	}
	return n, nil
}

func (m *memUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, fields entity.ProfileUpdate) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s not found", id.String())
	}
	if fields.FirstName != nil {
		u.FirstName = *fields.FirstName
	}
	if fields.LastName != nil {
		u.LastName = *fields.LastName
	}
	if fields.Phone != nil {
		v := *fields.Phone
		u.Phone = &v
	}
	if fields.Address != nil {
		v := *fields.Address
		u.Address = &v
	}
	if fields.ProfileImage != nil {
		v := *fields.ProfileImage
		u.ProfileImage = &v
	}
	u.UpdatedAt = time.Now()
	c := *u
	return &c, nil
}

func (m *memUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id.String())
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *memUserRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id.String())
	}
	u.IsActive = active
	return nil
}

func (m *memUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func setupSchema(t *testing.T) (*memUserRepo, graphql.Schema) {
	t.Helper()

	repo := newMemUserRepo()
	cfg := &utils.Config{
		JWT:   utils.JWTConfig{Secret: "unit-test-secret", ExpiryHours: 1},
		Admin: utils.AdminConfig{RegistrationCode: "warehouse-42"},
	}
	service := usecase.NewService(&repository.Repository{User: repo}, cfg, zap.NewNop())

	schema, err := graph.NewSchema(service, zap.NewNop())
	require.NoError(t, err)
	return repo, schema
}

func seedGraphUser(t *testing.T, repo *memUserRepo, email, password string, role entity.UserRole) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func execute(schema graphql.Schema, ctx context.Context, query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       ctx,
	})
}

// envelope digs the named field's {success, message, data} map out of a
// result.
func envelope(t *testing.T, result *graphql.Result, field string) map[string]interface{} {
	t.Helper()
	data, ok := result.Data.(map[string]interface{})
	require.True(t, ok, "result data is %T", result.Data)
	env, ok := data[field].(map[string]interface{})
	require.True(t, ok, "field %s is %T", field, data[field])
	return env
}

func TestRegisterCustomerMutation(t *testing.T) {
	_, schema := setupSchema(t)

	result := execute(schema, context.Background(), `
		mutation {
			registerCustomer(input: {
				email: "alice@example.com"
				password: "secret123"
				firstName: "Alice"
				lastName: "Smith"
			}) {
				success
				message
				data { token user { email role isActive } }
			}
		}`)

	require.Empty(t, result.Errors)
	env := envelope(t, result, "registerCustomer")
	assert.Equal(t, true, env["success"])

	data := env["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "customer", user["role"])
	assert.Equal(t, true, user["isActive"])
}

func TestRegisterCustomerMutation_DuplicateEmail(t *testing.T) {
	repo, schema := setupSchema(t)
	seedGraphUser(t, repo, "alice@example.com", "secret123", entity.RoleCustomer)

	result := execute(schema, context.Background(), `
		mutation {
			registerCustomer(input: {
				email: "alice@example.com"
				password: "secret123"
				firstName: "Alice"
				lastName: "Smith"
			}) { success message data { token } }
		}`)

	require.Empty(t, result.Errors)
	env := envelope(t, result, "registerCustomer")
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "user with this email already exists", env["message"])
	assert.Nil(t, env["data"])
}

func TestLoginMutation_WrongPassword(t *testing.T) {
	repo, schema := setupSchema(t)
	seedGraphUser(t, repo, "alice@example.com", "secret123", entity.RoleCustomer)

	result := execute(schema, context.Background(), `
		mutation {
			login(input: {email: "alice@example.com", password: "wrong-password"}) {
				success
				message
			}
		}`)

	require.Empty(t, result.Errors)
	env := envelope(t, result, "login")
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "invalid email or password", env["message"])
}

func TestMeQuery(t *testing.T) {
	repo, schema := setupSchema(t)
	user := seedGraphUser(t, repo, "alice@example.com", "secret123", entity.RoleCustomer)

	// Anonymous callers get a failure envelope, not a transport error.
	result := execute(schema, context.Background(), `{ me { success message } }`)
	require.Empty(t, result.Errors)
	env := envelope(t, result, "me")
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "authentication required", env["message"])

	ctx := utils.SetUserContext(context.Background(), user)
	result = execute(schema, ctx, `{ me { success data { user { id email } } } }`)
	require.Empty(t, result.Errors)
	env = envelope(t, result, "me")
	assert.Equal(t, true, env["success"])
	got := env["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, user.ID.String(), got["id"])
	assert.Equal(t, "alice@example.com", got["email"])
}

func TestGetUsersQuery_RequiresAdmin(t *testing.T) {
	repo, schema := setupSchema(t)
	customer := seedGraphUser(t, repo, "alice@example.com", "secret123", entity.RoleCustomer)

	ctx := utils.SetUserContext(context.Background(), customer)
	result := execute(schema, ctx, `{ getUsers { id } }`)

	// Unlike the envelope fields, the list query surfaces failures as
	// resolver errors.
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "admin access required")
}

func TestGetUsersQuery_AsAdmin(t *testing.T) {
	repo, schema := setupSchema(t)
	admin := seedGraphUser(t, repo, "boss@example.com", "secret123", entity.RoleAdmin)
	seedGraphUser(t, repo, "alice@example.com", "secret123", entity.RoleCustomer)

	ctx := utils.SetUserContext(context.Background(), admin)
	result := execute(schema, ctx, `{ getUsers(role: customer) { email role } }`)

	require.Empty(t, result.Errors)
	users := result.Data.(map[string]interface{})["getUsers"].([]interface{})
	require.Len(t, users, 1)
	got := users[0].(map[string]interface{})
	assert.Equal(t, "alice@example.com", got["email"])
}

func TestChangePasswordMutation(t *testing.T) {
	repo, schema := setupSchema(t)
	user := seedGraphUser(t, repo, "alice@example.com", "secret123", entity.RoleCustomer)

	ctx := utils.SetUserContext(context.Background(), user)
	result := execute(schema, ctx, `
		mutation {
			changePassword(input: {currentPassword: "wrong", newPassword: "brandnew456"}) {
				success
				message
			}
		}`)

	require.Empty(t, result.Errors)
	env := envelope(t, result, "changePassword")
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "current password is incorrect", env["message"])
}

func TestCreateOrderMutation_Guest(t *testing.T) {
	_, schema := setupSchema(t)

	result := execute(schema, context.Background(), `
		mutation {
			createOrder(input: {
				items: [{productId: "prod-1", quantity: 2, price: 19.99}]
				total: 39.98
				customerInfo: {firstName: "Guest", lastName: "Shopper", email: "guest@example.com"}
				paymentInfo: {amount: 39.98}
				guestId: "guest-1"
			}) {
				success
				message
				data { order { orderNumber status total items { quantity product { id } } user { id } } }
			}
		}`)

	require.Empty(t, result.Errors)
	env := envelope(t, result, "createOrder")
	assert.Equal(t, true, env["success"])

	order := env["data"].(map[string]interface{})["order"].(map[string]interface{})
	assert.Equal(t, "pending", order["status"])
	assert.NotEmpty(t, order["orderNumber"])
	assert.Nil(t, order["user"])
	items := order["items"].([]interface{})
	require.Len(t, items, 1)
}
