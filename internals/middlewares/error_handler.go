package middlewares

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "diporani_web/internals/helpers"
)

// IsAPI: request ke /api → respon JSON, selain itu halaman HTML.
func IsAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

// ErrorHandler: JSON envelope untuk /api, halaman errors/<status> untuk halaman.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := ""
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}
		if code >= 500 {
			log.Error("❌ request gagal",
				zap.String("request_id", RequestID(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			msg = ""
		}

		if IsAPI(c) {
			return helper.JsonError(c, code, msg)
		}

		view := "errors/500"
		if code == fiber.StatusNotFound {
			view = "errors/404"
		}
		// pesan bawaan router ("Cannot GET /x") tidak ditampilkan
		if strings.HasPrefix(msg, "Cannot ") {
			msg = ""
		}
		c.Status(code)
		data := fiber.Map{"Title": "Halaman tidak tersedia", "Status": code, "Message": msg}
		if rerr := c.Render(view, data, "layouts/main"); rerr != nil {
			log.Warn("render error page gagal", zap.Error(rerr))
			return c.Status(code).SendString(fiber.NewError(code).Message)
		}
		return nil
	}
}
