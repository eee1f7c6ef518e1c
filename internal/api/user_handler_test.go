package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/api"
	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/model"
	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/service"
)

type fakeUserService struct {
	users  map[int64]model.User
	nextID int64
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{users: map[int64]model.User{}}
}

func (f *fakeUserService) CreateUser(_ context.Context, user model.User) (*model.User, error) {
	if user.Email != "" {
		for _, existing := range f.users {
			if existing.Email == user.Email {
				return &existing, service.ErrEmailTaken
			}
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return &user, nil
}

func (f *fakeUserService) GetUser(_ context.Context, id int64) (*model.User, error) {
	if user, ok := f.users[id]; ok {
		return &user, nil
	}
	return nil, service.ErrUserNotFound
}

func (f *fakeUserService) UpdateUser(_ context.Context, user model.User) (*model.User, error) {
	if _, ok := f.users[user.ID]; ok {
		f.users[user.ID] = user
	}
	return &user, nil
}

func (f *fakeUserService) DeleteUser(_ context.Context, id int64) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	delete(f.users, id)
	return &user, nil
}

func newUserApp(svc service.UserService) *fiber.App {
	app := fiber.New()
	h := api.NewUserHandler(svc)
	app.Get("/user", h.GetUser)
	app.Post("/user", h.CreateUser)
	app.Put("/user", h.UpdateUser)
	app.Delete("/user", h.DeleteUser)
	return app
}

func TestGetUser_MissingIDIs404(t *testing.T) {
	app := newUserApp(newFakeUserService())

	resp, err := app.Test(httptest.NewRequest("GET", "/user", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetUser_UnknownIDIs404(t *testing.T) {
	app := newUserApp(newFakeUserService())

	resp, err := app.Test(httptest.NewRequest("GET", "/user?id=42", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "The resource cannot be found in the database. Make sure you sent the correct id", string(body))
}

func TestCreateUser_ReturnsCreatedRecord(t *testing.T) {
	app := newUserApp(newFakeUserService())

	payload := `{"firstname":"Ada","lastname":"Lovelace","email":"ada@example.com"}`
	req := httptest.NewRequest("POST", "/user", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created model.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "Ada", created.Firstname)
}

func TestCreateUser_DuplicateEmailIs409WithExisting(t *testing.T) {
	svc := newFakeUserService()
	app := newUserApp(svc)

	first := `{"firstname":"Ada","lastname":"Lovelace","email":"ada@example.com"}`
	req := httptest.NewRequest("POST", "/user", bytes.NewBufferString(first))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	second := `{"firstname":"Impostor","email":"ada@example.com"}`
	req = httptest.NewRequest("POST", "/user", bytes.NewBufferString(second))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var existing model.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&existing))
	require.Equal(t, "Ada", existing.Firstname)
	require.Len(t, svc.users, 1)
}

func TestUpdateUser_ReturnsUpdatedRecord(t *testing.T) {
	svc := newFakeUserService()
	svc.users[1] = model.User{ID: 1, Firstname: "Ada", Lastname: "Lovelace", Email: "ada@example.com"}
	svc.nextID = 1
	app := newUserApp(svc)

	payload := `{"id":1,"firstname":"Ada","lastname":"King","email":"ada@example.com"}`
	req := httptest.NewRequest("PUT", "/user", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated model.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.Equal(t, "King", updated.Lastname)
}

func TestDeleteUser_MissingParamIs500WithHint(t *testing.T) {
	app := newUserApp(newFakeUserService())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/user", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "did you set the correct parameter for Id?. It should be like user?id={id}", string(body))
}

func TestDeleteUser_UnknownIDIs404(t *testing.T) {
	app := newUserApp(newFakeUserService())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/user?id=42", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "the user was not found and could not be deleted", string(body))
}

func TestDeleteUser_ReturnsDeletedRecord(t *testing.T) {
	svc := newFakeUserService()
	svc.users[1] = model.User{ID: 1, Firstname: "Ada", Lastname: "Lovelace", Email: "ada@example.com"}
	svc.nextID = 1
	app := newUserApp(svc)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/user?id=1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var deleted model.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&deleted))
	require.Equal(t, int64(1), deleted.ID)
	require.Empty(t, svc.users)
}
