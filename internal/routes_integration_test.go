package internal_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockerlink/internal"
	"lockerlink/internal/testsupport"
)

const fixedEventID = "11111111-1111-1111-1111-111111111111"

func enabledApp(t *testing.T) *internal.Application {
	t.Helper()
	return testsupport.SetupApp(t, testsupport.TestConfig(t))
}

func disabledApp(t *testing.T) *internal.Application {
	t.Helper()
	return testsupport.SetupApp(t, testsupport.DisabledConfig())
}

func postTrack(t *testing.T, app *internal.Application, payload map[string]any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/analytics/track", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36")

	resp, err := app.Fiber.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestTrackAndSummaryRoundTrip(t *testing.T) {
	app := enabledApp(t)

	resp := postTrack(t, app, map[string]any{
		"id":       fixedEventID,
		"eventId":  "home_store_click",
		"language": "en",
		"path":     "/",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["ok"])

	from := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	to := time.Now().UTC().Add(time.Minute).Format(time.RFC3339)
	req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary?from="+from+"&to="+to, nil)
	summaryResp, err := app.Fiber.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, summaryResp.StatusCode)

	body := decodeBody(t, summaryResp)
	assert.NotContains(t, body, "disabled")

	totals, ok := body["totals"].([]any)
	require.True(t, ok)
	require.Len(t, totals, 1)
	first := totals[0].(map[string]any)
	assert.Equal(t, "home_store_click", first["eventId"])
	assert.Equal(t, float64(1), first["total"])

	latest, ok := body["latest"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, latest)
	assert.Equal(t, fixedEventID, latest[0].(map[string]any)["id"])

	browsers, ok := body["browsers"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, browsers)
	assert.Equal(t, "Chrome", browsers[0].(map[string]any)["name"])
}

func TestTrackValidation(t *testing.T) {
	app := enabledApp(t)

	cases := map[string]map[string]any{
		"malformed id":    {"id": "not-a-uuid", "eventId": "home_store_click"},
		"missing id":      {"eventId": "home_store_click"},
		"missing eventId": {"id": fixedEventID},
		"empty eventId":   {"id": fixedEventID, "eventId": ""},
		"bad occurredAt":  {"id": fixedEventID, "eventId": "home_store_click", "occurredAt": "yesterday"},
		"non-object meta": {"id": fixedEventID, "eventId": "home_store_click", "metadata": "flat"},
		"array metadata":  {"id": fixedEventID, "eventId": "home_store_click", "metadata": []string{"a"}},
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			resp := postTrack(t, app, payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Invalid payload", decodeBody(t, resp)["error"])
		})
	}

	// Nothing was persisted.
	req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	resp, err := app.Fiber.Test(req, -1)
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Empty(t, body["totals"])
}

func TestTrackAcceptsClientOccurredAt(t *testing.T) {
	app := enabledApp(t)

	resp := postTrack(t, app, map[string]any{
		"id":         fixedEventID,
		"eventId":    "home_store_click",
		"occurredAt": "2024-06-15T12:00:00Z",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSummaryInvalidQuery(t *testing.T) {
	app := enabledApp(t)

	for _, query := range []string{"?from=garbage", "?to=garbage", "?from=2024-13-99"} {
		req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary"+query, nil)
		resp, err := app.Fiber.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid query", decodeBody(t, resp)["error"])
	}
}

func TestUnexpectedStoreFailureReturns500(t *testing.T) {
	app := enabledApp(t)

	// Pull the connection out from under the store so both endpoints hit
	// the unexpected-failure branch rather than validation or disabled mode.
	sqlDB, err := app.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp := postTrack(t, app, map[string]any{"id": fixedEventID, "eventId": "home_store_click"})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to record event", decodeBody(t, resp)["error"])

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	summaryResp, err := app.Fiber.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, summaryResp.StatusCode)
	assert.Equal(t, "Failed to load analytics", decodeBody(t, summaryResp)["error"])
}

func TestDisabledMode(t *testing.T) {
	app := disabledApp(t)

	resp := postTrack(t, app, map[string]any{"id": fixedEventID, "eventId": "home_store_click"})
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "Analytics disabled", decodeBody(t, resp)["error"])

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	summaryResp, err := app.Fiber.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, summaryResp.StatusCode)

	body := decodeBody(t, summaryResp)
	assert.Equal(t, true, body["disabled"])
	assert.Empty(t, body["totals"])
	assert.Empty(t, body["timeline"])
	assert.Empty(t, body["latest"])

	rng, ok := body["range"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, rng["from"])
	assert.NotEmpty(t, rng["to"])
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		app := enabledApp(t)
		req := httptest.NewRequest(http.MethodGet, "/_health", nil)
		resp, err := app.Fiber.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "ok", body["db_status"])
	})

	t.Run("disabled", func(t *testing.T) {
		app := disabledApp(t)
		req := httptest.NewRequest(http.MethodGet, "/_health", nil)
		resp, err := app.Fiber.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "disabled", body["db_status"])
	})
}

func TestMarketingPagesRender(t *testing.T) {
	app := disabledApp(t)

	for _, path := range []string{"/", "/storage", "/delivery", "/partner", "/account", "/privacy", "/terms", "/dashboard"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Fiber.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Lockerlink", path)
	}
}

func TestLanguageResolution(t *testing.T) {
	app := disabledApp(t)

	t.Run("default is Chinese", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp, err := app.Fiber.Test(req, -1)
		require.NoError(t, err)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `lang="zh"`)
	})

	t.Run("query switch sets cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)
		resp, err := app.Fiber.Test(req, -1)
		require.NoError(t, err)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `lang="ja"`)

		var cookie string
		for _, c := range resp.Cookies() {
			if c.Name == "lockerlink-lang" {
				cookie = c.Value
			}
		}
		assert.Equal(t, "ja", cookie)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Cookie", "lockerlink-lang=ko")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		resp, err := app.Fiber.Test(req, -1)
		require.NoError(t, err)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `lang="ko"`)
	})

	t.Run("accept-language fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "en-GB,en;q=0.8")
		resp, err := app.Fiber.Test(req, -1)
		require.NoError(t, err)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `lang="en"`)
	})

	t.Run("unsupported query ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		resp, err := app.Fiber.Test(req, -1)
		require.NoError(t, err)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `lang="zh"`)
	})
}

func TestTrackerScriptETag(t *testing.T) {
	app := disabledApp(t)

	req := httptest.NewRequest(http.MethodGet, "/js/tracker.js", nil)
	resp, err := app.Fiber.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/javascript", resp.Header.Get("Content-Type"))

	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "/api/analytics/track")
	assert.True(t, strings.Contains(string(raw), "sendBeacon"))

	cached := httptest.NewRequest(http.MethodGet, "/js/tracker.js", nil)
	cached.Header.Set("If-None-Match", etag)
	cachedResp, err := app.Fiber.Test(cached, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotModified, cachedResp.StatusCode)
}
