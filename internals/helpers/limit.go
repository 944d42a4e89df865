package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ResolveLimit membaca ?limit= lalu normalisasi.
// - defaultLimit: fallback kalau tidak ada (0 = tanpa batas)
// - maxLimit: batas atas (0 = tanpa batas)
// ?limit=0 sama dengan tanpa parameter. Nilai tidak valid / negatif → 400.
func ResolveLimit(c *fiber.Ctx, defaultLimit, maxLimit int) (int, error) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "limit harus bilangan bulat >= 0")
	}
	if n == 0 {
		return defaultLimit, nil
	}
	if maxLimit > 0 && n > maxLimit {
		n = maxLimit
	}
	return n, nil
}
