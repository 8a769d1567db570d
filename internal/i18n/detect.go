package i18n

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Resolve determines the active UI language for a request. Precedence: an
// explicit ?lang= switch (persisted to the language cookie), the cookie, the
// Accept-Language header, then DefaultLanguage.
func Resolve(c *fiber.Ctx) Language {
	if requested := c.Query("lang"); IsSupported(requested) {
		c.Cookie(&fiber.Cookie{
			Name:     CookieKey,
			Value:    requested,
			Path:     "/",
			Expires:  time.Now().AddDate(1, 0, 0),
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return Language(requested)
	}

	if stored := c.Cookies(CookieKey); IsSupported(stored) {
		return Language(stored)
	}

	return MatchAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
}
