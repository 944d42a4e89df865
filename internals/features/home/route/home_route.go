package route

import (
	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/features/home/controller"
	"diporani_web/internals/features/home/service"
)

func HomePublicRoutes(api fiber.Router, svc *service.HomeService) {
	ctl := controller.NewHomeController(svc)
	api.Get("/home", ctl.GetHome) // 📦 empat section sekaligus
}

func HomePageRoutes(app fiber.Router, svc *service.HomeService) {
	ctl := controller.NewHomeController(svc)

	app.Get("/", ctl.IndexPage)
	app.Get("/avatars/:initials", controller.AvatarImage)
}
