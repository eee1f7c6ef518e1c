package api

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/model"
	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/service"
)

const (
	msgProseGetFailed  = "error while getting guerilla prose data"
	msgProseSaveFailed = "error while saving guerilla prose data"
)

type ProseHandler struct {
	proseService service.ProseService
	validate     *validator.Validate
}

func NewProseHandler(proseService service.ProseService) *ProseHandler {
	return &ProseHandler{
		proseService: proseService,
		validate:     validator.New(),
	}
}

type CreateGuerillaProseRequest struct {
	Text     string `json:"text" validate:"max=333"`
	ImageURL string `json:"imageUrl"`
	Label    string `json:"label"`
	UserID   int64  `json:"userId"`
}

// ListProses handles GET /guerillaProse, every post ascending by date.
func (h *ProseHandler) ListProses(c *fiber.Ctx) error {
	proses, err := h.proseService.ListProses(c.Context())
	if err != nil {
		slog.Error("list guerilla prose failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString(msgProseGetFailed)
	}

	return c.Status(fiber.StatusOK).JSON(proses)
}

// GetProse handles GET /guerillaProse/:id.
func (h *ProseHandler) GetProse(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(msgProseGetFailed)
	}

	prose, err := h.proseService.GetProse(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProseNotFound) {
			return c.Status(fiber.StatusNotFound).SendString(msgResourceNotFound)
		}
		slog.Error("get guerilla prose failed", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).SendString(msgProseGetFailed)
	}

	return c.Status(fiber.StatusOK).JSON(prose)
}

// CreateProse handles POST /guerillaProse and echoes the created entity
// with its store-assigned id and date.
func (h *ProseHandler) CreateProse(c *fiber.Ctx) error {
	var req CreateGuerillaProseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(msgProseSaveFailed)
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(msgProseSaveFailed)
	}

	prose := model.GuerillaProse{
		Text:     req.Text,
		ImageURL: req.ImageURL,
		Label:    req.Label,
		UserID:   req.UserID,
	}

	created, err := h.proseService.CreateProse(c.Context(), prose)
	if err != nil {
		slog.Error("create guerilla prose failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString(msgProseSaveFailed)
	}

	return c.Status(fiber.StatusOK).JSON(created)
}
