package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dirhttp "restaurant-directory/internal/directory/adapter/http"
	"restaurant-directory/internal/directory/domain/model"
	apperrors "restaurant-directory/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Add(ctx context.Context, user model.User, password string) (string, error) {
	args := m.Called(ctx, user, password)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepo) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) UpdateName(ctx context.Context, id, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func newUserApp(repo *mockUserRepo) *fiber.App {
	app := fiber.New(fiber.Config{UnescapePath: true})
	dirhttp.NewUserHandler(repo).RegisterRoutes(app)
	return app
}

func TestUserHandler_CreateReturnsGeneratedID(t *testing.T) {
	repo := &mockUserRepo{}
	app := newUserApp(repo)

	repo.On("Add", mock.Anything, model.User{Name: "James"}, "").
		Return("000000000001234567890123", nil)

	raw, err := json.Marshal(dirhttp.CreateUserRequest{Name: "James"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "000000000001234567890123", body[model.UserID])
}

func TestUserHandler_CreateNeverEchoesPassword(t *testing.T) {
	repo := &mockUserRepo{}
	app := newUserApp(repo)

	repo.On("Add", mock.Anything, mock.Anything, "hunter22").Return("000000000001234567890123", nil)

	raw, err := json.Marshal(dirhttp.CreateUserRequest{Name: "jessie", Password: "hunter22"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "hunter22")
}

func TestUserHandler_ListEnvelope(t *testing.T) {
	repo := &mockUserRepo{}
	app := newUserApp(repo)

	repo.On("List", mock.Anything).Return([]model.User{{ID: "1", Name: "James"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Current Users", body[dirhttp.KeyTitle])
}

func TestUserHandler_UpdateMissingIsNotFound(t *testing.T) {
	repo := &mockUserRepo{}
	app := newUserApp(repo)

	repo.On("UpdateName", mock.Anything, "42", "ghost").
		Return(apperrors.NewNotFoundError("user [42] not in database"))

	raw, err := json.Marshal(dirhttp.UpdateUserRequest{Name: "ghost"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/users/42", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
