package cli

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/middlewares"
	routes "diporani_web/internals/route"
	"diporani_web/internals/views"
)

// NewApp merakit Fiber app lengkap (views, middleware, routes) tanpa listen.
func NewApp(d routes.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		Views:                   views.NewEngine(),
		ErrorHandler:            middlewares.ErrorHandler(d.Log),
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app, d.Cfg, d.Log)
	routes.SetupRoutes(app, d)
	return app
}
