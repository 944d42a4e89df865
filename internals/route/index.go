package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"

	"diporani_web/internals/configs"
	agendaService "diporani_web/internals/features/agendas/service"
	docSource "diporani_web/internals/features/documentations/source"
	homeService "diporani_web/internals/features/home/service"
	materialSource "diporani_web/internals/features/materials/source"
	memberService "diporani_web/internals/features/members/service"
	"diporani_web/internals/remote"
	routeDetails "diporani_web/internals/route/details"
	"diporani_web/internals/scheduler"
	"diporani_web/internals/views"
)

type Deps struct {
	Client remote.Client
	Cfg    configs.Config
	Log    *zap.Logger
	Probe  *scheduler.BackendProbe // boleh nil
	Now    func() time.Time        // nil = time.Now
}

// NewServices merakit service per fitur sesuai CONTENT_SOURCE.
func NewServices(d Deps) routeDetails.Services {
	members := memberService.NewMemberService(d.Client, d.Log)
	materials := materialSource.New(d.Cfg.ContentSource, d.Client, d.Log)
	docs := docSource.New(d.Cfg.ContentSource, d.Client, d.Log)
	agendas := agendaService.NewAgendaService(d.Client, d.Log, d.Now)

	return routeDetails.Services{
		Members:   members,
		Materials: materials,
		Docs:      docs,
		Agendas:   agendas,
		Home:      homeService.NewHomeService(members, materials, docs, agendas),
	}
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()
	services := NewServices(d)

	d.Log.Info("🧭 Setting up routes", zap.String("content_source", string(d.Cfg.ContentSource)))

	// ===================== STATIC =====================
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   views.Static(),
		MaxAge: 3600,
	}))

	// ===================== BASE =====================
	BaseRoutes(app, d)

	// ===================== PUBLIC JSON =====================
	public := app.Group("/api/public")
	routeDetails.ContentPublicRoutes(public, services)

	// ===================== PAGES =====================
	routeDetails.ContentPageRoutes(app, services)
}
