// Package http contains the fiber handlers behind the marketing site and
// the analytics API.
package http

import (
	"errors"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lockerlink/internal/analytics"
)

// defaultSummaryWindow is applied when the summary query omits from/to.
const defaultSummaryWindow = 7 * 24 * time.Hour

// AnalyticsHandler serves the tracking and summary endpoints. A nil store
// means analytics is not configured; both endpoints degrade to their
// disabled responses instead of failing.
type AnalyticsHandler struct {
	store  *analytics.Store
	logger *slog.Logger
}

func NewAnalyticsHandler(store *analytics.Store, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{store: store, logger: logger}
}

type trackRequest struct {
	ID         string         `json:"id"`
	EventID    string         `json:"eventId"`
	Label      *string        `json:"label"`
	Language   *string        `json:"language"`
	Page       *string        `json:"page"`
	Path       *string        `json:"path"`
	Metadata   map[string]any `json:"metadata"`
	OccurredAt string         `json:"occurredAt"`
}

type summaryRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type summaryResponse struct {
	Disabled bool                      `json:"disabled,omitempty"`
	Range    summaryRange              `json:"range"`
	Totals   []analytics.EventTotal    `json:"totals"`
	Timeline []analytics.TimelineEntry `json:"timeline"`
	Latest   []analytics.LatestEvent   `json:"latest"`
	Browsers []analytics.BrowserTotal  `json:"browsers"`
}

// Track ingests one client event.
//
// POST /api/analytics/track
func (h *AnalyticsHandler) Track(c *fiber.Ctx) error {
	if h.store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Analytics disabled"})
	}

	var req trackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}

	event, ok := h.buildEvent(c, req)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}

	if err := h.store.Insert(c.UserContext(), event); err != nil {
		if errors.Is(err, analytics.ErrDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Analytics disabled"})
		}
		h.logger.Error("Failed to record analytics event",
			slog.String("eventId", event.EventID), slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record event"})
	}

	return c.JSON(fiber.Map{"ok": true})
}

// buildEvent validates the request and assembles the row to insert. The
// user agent always comes from the request header; a client-supplied value
// in the payload is ignored.
func (h *AnalyticsHandler) buildEvent(c *fiber.Ctx, req trackRequest) (*analytics.Event, bool) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return nil, false
	}
	if req.EventID == "" {
		return nil, false
	}

	createdAt := time.Now().UTC()
	if req.OccurredAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			return nil, false
		}
		createdAt = parsed.UTC()
	}

	event := &analytics.Event{
		ID:        req.ID,
		EventID:   req.EventID,
		Label:     req.Label,
		Language:  req.Language,
		Page:      req.Page,
		Path:      req.Path,
		CreatedAt: createdAt,
	}

	if req.Metadata != nil {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, false
		}
		serialized := string(raw)
		event.Metadata = &serialized
	}

	userAgent := c.Get(fiber.HeaderUserAgent)
	if userAgent == "" {
		userAgent = "unknown"
	}
	event.UserAgent = userAgent

	return event, true
}

// Summary returns the aggregate views over an inclusive time range. When
// analytics is not configured this is still a 200, with disabled set and
// every collection empty; the resolved range is echoed either way.
//
// GET /api/analytics/summary?from=ISO8601&to=ISO8601
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	from, to, ok := h.parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query"})
	}

	resp := summaryResponse{
		Range:    summaryRange{From: from, To: to},
		Totals:   make([]analytics.EventTotal, 0),
		Timeline: make([]analytics.TimelineEntry, 0),
		Latest:   make([]analytics.LatestEvent, 0),
		Browsers: make([]analytics.BrowserTotal, 0),
	}

	result, err := h.store.Summary(c.UserContext(), from, to)
	if err != nil {
		if errors.Is(err, analytics.ErrDisabled) {
			resp.Disabled = true
			return c.JSON(resp)
		}
		h.logger.Error("Failed to load analytics summary", slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load analytics"})
	}

	resp.Totals = result.Totals
	resp.Timeline = result.Timeline
	resp.Latest = result.Latest
	resp.Browsers = result.Browsers
	return c.JSON(resp)
}

// parseRange resolves the summary window, defaulting to the trailing seven
// days. Both bounds are normalized to UTC.
func (h *AnalyticsHandler) parseRange(c *fiber.Ctx) (from, to time.Time, ok bool) {
	now := time.Now().UTC()
	from = now.Add(-defaultSummaryWindow)
	to = now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return from, to, false
		}
		from = parsed.UTC()
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return from, to, false
		}
		to = parsed.UTC()
	}
	return from, to, true
}
