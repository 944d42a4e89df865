package logger

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

// zapWriter: tiap baris access log Fiber jadi satu entry zap (satu stream log).
type zapWriter struct{ log *zap.Logger }

func (w zapWriter) Write(p []byte) (int, error) {
	w.log.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// health check & aset statis tidak dicatat
func quiet(c *fiber.Ctx) bool {
	p := c.Path()
	return p == "/health" || strings.HasPrefix(p, "/static/")
}

// LoggerMiddleware mencatat request ke logger "access".
// Waktu diisi zap, jadi format tidak memuat ${time}.
func LoggerMiddleware(log *zap.Logger) fiber.Handler {
	return logger.New(logger.Config{
		Next:          quiet,
		Output:        zapWriter{log: log.Named("access")},
		DisableColors: true,
		TimeZone:      "Asia/Jakarta",
		Format:        "${ip} - ${method} ${path} - ${status} - ${latency} - reqid=${locals:reqid}\n",
	})
}
