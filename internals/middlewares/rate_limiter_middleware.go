package middlewares

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "diporani_web/internals/helpers"
)

const limitMessage = "❌ Terlalu banyak permintaan. Silakan coba lagi nanti."

// Global limiter: per IP untuk semua endpoint. max <= 0 → limiter mati.
func GlobalRateLimiter(max int) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			// aset statis tidak dihitung
			return strings.HasPrefix(c.Path(), "/static/")
		},
		LimitReached: func(c *fiber.Ctx) error {
			if IsAPI(c) {
				return helper.JsonError(c, fiber.StatusTooManyRequests, limitMessage)
			}
			return c.Status(fiber.StatusTooManyRequests).SendString(limitMessage)
		},
	})
}
