package api

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/model"
	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/service"
)

// Failure responses are plain fixed strings, never structured bodies.
const (
	msgResourceNotFound  = "The resource cannot be found in the database. Make sure you sent the correct id"
	msgUserGetFailed     = "error while getting user data"
	msgUserSaveFailed    = "error while saving user data"
	msgUserDeleteMissing = "the user was not found and could not be deleted"
	msgUserDeleteParam   = "did you set the correct parameter for Id?. It should be like user?id={id}"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type CreateUserRequest struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// GetUser handles GET /user?id=.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	idStr := c.Query("id")
	if idStr == "" {
		return c.Status(fiber.StatusNotFound).SendString(msgResourceNotFound)
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(msgUserGetFailed)
	}

	user, err := h.userService.GetUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).SendString(msgResourceNotFound)
		}
		slog.Error("get user failed", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).SendString(msgUserGetFailed)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// CreateUser handles POST /user. A duplicate non-blank email answers 409
// with the already registered record instead of creating another row.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(msgUserSaveFailed)
	}

	user := model.User{
		ID:        req.ID,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
	}

	created, err := h.userService.CreateUser(c.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(created)
		}
		slog.Error("create user failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString(msgUserSaveFailed)
	}

	return c.Status(fiber.StatusOK).JSON(created)
}

// UpdateUser handles PUT /user, a full replace by id.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(msgUserSaveFailed)
	}

	user := model.User{
		ID:        req.ID,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
	}

	updated, err := h.userService.UpdateUser(c.Context(), user)
	if err != nil {
		slog.Error("update user failed", "error", err, "id", req.ID)
		return c.Status(fiber.StatusInternalServerError).SendString(msgUserSaveFailed)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// DeleteUser handles DELETE /user?id= with fetch-then-delete semantics:
// the removed record is echoed back to the caller.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	idStr := c.Query("id")
	if idStr == "" {
		return c.Status(fiber.StatusInternalServerError).SendString(msgUserDeleteParam)
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(msgUserSaveFailed)
	}

	deleted, err := h.userService.DeleteUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).SendString(msgUserDeleteMissing)
		}
		slog.Error("delete user failed", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).SendString(msgUserSaveFailed)
	}

	return c.Status(fiber.StatusOK).JSON(deleted)
}
