package route

import (
	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/features/documentations/controller"
	"diporani_web/internals/features/documentations/source"
)

// 🌐 JSON publik, dipasang di group /api/public
func DocumentationPublicRoutes(api fiber.Router, src source.Source) {
	ctl := controller.NewDocumentationController(src)

	docs := api.Group("/documentations")
	docs.Get("/", ctl.ListDocumentations)   // 🖼️ list, ?limit=
	docs.Get("/:ref", ctl.GetDocumentation) // 🔍 detail (uuid / slug)
}

// 🖥️ Halaman & fragment HTML
func DocumentationPageRoutes(app fiber.Router, src source.Source) {
	ctl := controller.NewDocumentationController(src)

	app.Get("/fragments/dokumentasi", ctl.DokumentasiFragment)
	app.Get("/dokumentasi", ctl.IndexPage)
	app.Get("/dokumentasi/:ref", ctl.DetailPage)
}
