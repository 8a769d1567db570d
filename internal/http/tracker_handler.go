package http

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"log/slog"
	"text/template"

	"github.com/gofiber/fiber/v2"
)

//go:embed tracker.js
var trackerTemplate string

// TrackerHandler serves the client event emitter. The script is rendered
// once per request against the request's base URL and cached client-side
// via ETag.
type TrackerHandler struct {
	logger *slog.Logger
	debug  bool
}

func NewTrackerHandler(logger *slog.Logger, debug bool) *TrackerHandler {
	return &TrackerHandler{logger: logger, debug: debug}
}

// Script serves tracker.js.
//
// GET /js/tracker.js
func (h *TrackerHandler) Script(c *fiber.Ctx) error {
	tmpl, err := template.New("tracker.js").Parse(trackerTemplate)
	if err != nil {
		h.logger.Error("Failed to parse tracker template", slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	var buf bytes.Buffer
	data := map[string]any{
		"BaseURL": c.BaseURL(),
		"Debug":   h.debug,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		h.logger.Error("Failed to render tracker template", slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	content := buf.Bytes()
	etag := generateETag(content)

	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.Status(fiber.StatusNotModified).Send(nil)
	}

	c.Set(fiber.HeaderContentType, "application/javascript")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	c.Set(fiber.HeaderETag, etag)
	c.Set("Cross-Origin-Resource-Policy", "cross-origin")
	return c.Send(content)
}

func generateETag(content []byte) string {
	hash := sha256.Sum256(content)
	return `"` + hex.EncodeToString(hash[:]) + `"` // Quoted for strong ETag
}
