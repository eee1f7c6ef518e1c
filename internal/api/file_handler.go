package api

import (
	"log/slog"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/service"
)

const msgFileStoreFailed = "The file could not be correctly stored on the server"

type FileHandler struct {
	fileService service.FileService
}

func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// UploadFile handles POST /file. The form field named "title" feeds the
// generated filename; the first file part is stored regardless of its
// field name. Answers 201 with the file path, or 500 when no file part
// arrived or the write failed.
func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(msgFileStoreFailed)
	}

	title := ""
	if vals := form.Value["title"]; len(vals) > 0 {
		title = vals[0]
	}

	var fileHeader *multipart.FileHeader
	for _, headers := range form.File {
		if len(headers) > 0 {
			fileHeader = headers[0]
			break
		}
	}
	if fileHeader == nil {
		return c.Status(fiber.StatusInternalServerError).SendString(msgFileStoreFailed)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(msgFileStoreFailed)
	}
	defer src.Close()

	info, err := h.fileService.Store(title, fileHeader.Filename, src)
	if err != nil {
		slog.Error("store upload failed", "error", err, "filename", fileHeader.Filename)
		return c.Status(fiber.StatusInternalServerError).SendString(msgFileStoreFailed)
	}

	return c.Status(fiber.StatusCreated).JSON(info)
}
