package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startTime time.Time

func BaseRoutes(app *fiber.App, d Deps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		backendStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := d.Client.Ping(c.UserContext()); err != nil {
			backendStatus = "Backend connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		body := fiber.Map{
			"status":         serverStatus,
			"backend":        backendStatus,
			"driver":         d.Cfg.BackendDriver,
			"content_source": d.Cfg.ContentSource,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    d.Cfg.AppEnv,
		}
		if d.Probe != nil {
			if last, ok := d.Probe.Last(); ok {
				body["last_probe"] = last
			}
		}
		return c.Status(httpStatus).JSON(body)
	})
}
