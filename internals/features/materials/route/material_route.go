package route

import (
	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/features/materials/controller"
	"diporani_web/internals/features/materials/source"
)

// 🌐 JSON publik, dipasang di group /api/public
func MaterialPublicRoutes(api fiber.Router, src source.Source) {
	ctl := controller.NewMaterialController(src)

	materials := api.Group("/materials")
	materials.Get("/", ctl.ListMaterials)   // 📄 list, ?limit=
	materials.Get("/:ref", ctl.GetMaterial) // 🔍 detail (uuid / slug)
}

// 🖥️ Halaman & fragment HTML
func MaterialPageRoutes(app fiber.Router, src source.Source) {
	ctl := controller.NewMaterialController(src)

	app.Get("/fragments/materi", ctl.MateriFragment)
	app.Get("/materi", ctl.IndexPage)
	app.Get("/materi/:ref", ctl.DetailPage)
}
