package router

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// adminUploadImage stores an editor image under a random name and answers
// with the public URL. The media mirror, when configured, receives a copy in
// the background so a slow bucket never delays the editor.
func (r *Router) adminUploadImage(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no image provided"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	typeExt, ok := allowedImageTypes[contentType]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("unsupported image type '%s'", contentType)})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = typeExt
	}
	name := strings.ReplaceAll(uuid.New().String(), "-", "")[:12] + ext

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("fail to open uploaded file: %w", err)
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		return fmt.Errorf("fail to read uploaded file: %w", err)
	}

	if err := os.MkdirAll(r.cfg.Uploads.Dir, 0755); err != nil {
		return fmt.Errorf("fail to create uploads directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.cfg.Uploads.Dir, name), data, 0644); err != nil {
		return fmt.Errorf("fail to store uploaded file: %w", err)
	}

	if r.mirror != nil {
		go func() {
			if err := r.mirror.Upload(context.Background(), name, contentType, data); err != nil {
				slog.Warn("fail to mirror uploaded image", slog.String("name", name), slog.String("error", err.Error()))
			}
		}()
	}

	return c.JSON(fiber.Map{
		"url":      strings.TrimRight(r.cfg.Uploads.PublicBase, "/") + "/" + name,
		"filename": name,
	})
}
