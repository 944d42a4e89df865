package route

import (
	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/features/agendas/controller"
	"diporani_web/internals/features/agendas/service"
)

func AgendaPublicRoutes(api fiber.Router, svc *service.AgendaService) {
	ctl := controller.NewAgendaController(svc)
	api.Get("/agendas/upcoming", ctl.ListUpcoming) // 📅 3 agenda terdekat
}

func AgendaPageRoutes(app fiber.Router, svc *service.AgendaService) {
	ctl := controller.NewAgendaController(svc)
	app.Get("/fragments/agenda", ctl.AgendaFragment)
}
