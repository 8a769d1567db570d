package http

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lockerlink/internal/i18n"
)

// PagesHandler renders the server-side marketing pages and the dashboard
// shell. All page content comes from the static translation dictionary; the
// active language is resolved per request.
type PagesHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPagesHandler creates the handler. db may be nil when analytics is not
// configured; only the health endpoint looks at it.
func NewPagesHandler(db *gorm.DB, logger *slog.Logger) *PagesHandler {
	return &PagesHandler{db: db, logger: logger}
}

// languageOption is one entry of the language switcher.
type languageOption struct {
	Code   string
	Label  string
	Active bool
}

func languageOptions(active i18n.Language) []languageOption {
	options := make([]languageOption, 0, len(i18n.SupportedLanguages))
	for _, lang := range i18n.SupportedLanguages {
		options = append(options, languageOption{
			Code:   string(lang),
			Label:  i18n.LanguageLabels[lang],
			Active: lang == active,
		})
	}
	return options
}

// Marketing renders one of the five marketing pages.
func (h *PagesHandler) Marketing(id i18n.PageID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := i18n.Resolve(c)
		t := i18n.GetTranslation(lang)
		page := i18n.GetPage(lang, id)

		return c.Render("pages/marketing", fiber.Map{
			"Page":             page,
			"PageID":           string(id),
			"Lang":             string(lang),
			"Languages":        languageOptions(lang),
			"Navigation":       t.Navigation,
			"Footer":           t.Footer,
			"PartnerHighlight": t.PartnerHighlight,
			"Meta":             page.Meta,
		}, "layouts/main")
	}
}

// Legal renders the privacy and terms pages. The body copy is English-only;
// chrome (navigation, footer) still follows the active language.
func (h *PagesHandler) Legal(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := i18n.Resolve(c)
		t := i18n.GetTranslation(lang)

		title := t.Footer.Privacy
		if kind == "terms" {
			title = t.Footer.Terms
		}

		return c.Render("pages/legal", fiber.Map{
			"Kind":       kind,
			"PageID":     kind,
			"Title":      title,
			"Lang":       string(lang),
			"Languages":  languageOptions(lang),
			"Navigation": t.Navigation,
			"Footer":     t.Footer,
			"Meta":       i18n.Meta{Title: title + " | Lockerlink"},
		}, "layouts/main")
	}
}

// Dashboard renders the internal analytics dashboard shell. The data itself
// is fetched client-side from the summary endpoint.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	lang := i18n.Resolve(c)
	t := i18n.GetTranslation(lang)

	return c.Render("pages/dashboard", fiber.Map{
		"PageID":     "dashboard",
		"Lang":       string(lang),
		"Languages":  languageOptions(lang),
		"Navigation": t.Navigation,
		"Footer":     t.Footer,
		"Meta":       i18n.Meta{Title: "Lockerlink Analytics"},
	}, "layouts/main")
}

type healthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	DBStatus  string    `json:"db_status"`
}

// Health reports process liveness and database connectivity. A missing
// database is the disabled analytics mode, not a degradation.
func (h *PagesHandler) Health(c *fiber.Ctx) error {
	dbStatus := "disabled"
	if h.db != nil {
		dbStatus = "ok"
		sqlDB, err := h.db.DB()
		if err != nil {
			dbStatus = "error"
			h.logger.Error("Database connection error", slog.Any("error", err))
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "error"
			h.logger.Error("Database ping failed", slog.Any("error", err))
		}
	}

	health := healthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		DBStatus:  dbStatus,
	}
	if dbStatus == "error" {
		health.Status = "degraded"
	}
	return c.JSON(health)
}
