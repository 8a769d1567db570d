package internal

import (
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"lockerlink/internal/http"
	"lockerlink/internal/i18n"
	"lockerlink/web"
)

// publicCORSConfig is shared by the tracking endpoints. Tracking must work
// cross-origin so partner-embedded pages can load the emitter and post
// events.
var publicCORSConfig = cors.Config{
	AllowOrigins: "*",
	AllowMethods: "POST,GET,OPTIONS",
	AllowHeaders: "Origin, Content-Type, Accept, User-Agent",
}

// MountAppRoutes mounts all application routes on the fiber app.
func MountAppRoutes(a *Application) {
	cfg := a.Config

	pages := http.NewPagesHandler(a.DB, a.Logger)
	events := http.NewAnalyticsHandler(a.Store, a.Logger)
	tracker := http.NewTrackerHandler(a.Logger, !cfg.IsProduction())

	// Rate limiting only in production; in development and test it would
	// interfere with rapid iteration and test runs.
	publicRateLimiter := func(c *fiber.Ctx) error { return c.Next() }
	if cfg.IsProduction() {
		publicRateLimiter = limiter.New(limiter.Config{
			Max:        70,
			Expiration: time.Minute,
		})
	}

	a.Fiber.Get("/_health", pages.Health)

	// Marketing pages
	a.Fiber.Get("/", pages.Marketing(i18n.PageHome))
	a.Fiber.Get("/storage", pages.Marketing(i18n.PageStorage))
	a.Fiber.Get("/delivery", pages.Marketing(i18n.PageDelivery))
	a.Fiber.Get("/partner", pages.Marketing(i18n.PagePartner))
	a.Fiber.Get("/account", pages.Marketing(i18n.PageAccount))
	a.Fiber.Get("/privacy", pages.Legal("privacy"))
	a.Fiber.Get("/terms", pages.Legal("terms"))
	a.Fiber.Get("/dashboard", pages.Dashboard)

	// Client emitter, cacheable and cross-origin
	a.Fiber.Get("/js/tracker.js", cors.New(publicCORSConfig), publicRateLimiter, tracker.Script)

	// Analytics API
	api := a.Fiber.Group("/api/analytics", cors.New(publicCORSConfig), publicRateLimiter)
	api.Post("/track", events.Track)
	api.Get("/summary", events.Summary)

	a.Fiber.Use("/static", filesystem.New(filesystem.Config{
		Root:       nethttp.FS(web.Static),
		PathPrefix: "static",
		MaxAge:     3600,
	}))
}
