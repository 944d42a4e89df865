package details

import (
	"github.com/gofiber/fiber/v2"

	AgendaRoutes "diporani_web/internals/features/agendas/route"
	agendaService "diporani_web/internals/features/agendas/service"
	DocumentationRoutes "diporani_web/internals/features/documentations/route"
	docSource "diporani_web/internals/features/documentations/source"
	HomeRoutes "diporani_web/internals/features/home/route"
	homeService "diporani_web/internals/features/home/service"
	MaterialRoutes "diporani_web/internals/features/materials/route"
	materialSource "diporani_web/internals/features/materials/source"
	MemberRoutes "diporani_web/internals/features/members/route"
	memberService "diporani_web/internals/features/members/service"
)

// Services: satu instance per fitur, dipakai bersama oleh route JSON & halaman.
type Services struct {
	Members   *memberService.MemberService
	Materials materialSource.Source
	Docs      docSource.Source
	Agendas   *agendaService.AgendaService
	Home      *homeService.HomeService
}

// ✅ JSON publik
// Contoh akses: /api/public/materials
func ContentPublicRoutes(api fiber.Router, s Services) {
	MemberRoutes.MemberPublicRoutes(api, s.Members)
	MaterialRoutes.MaterialPublicRoutes(api, s.Materials)
	DocumentationRoutes.DocumentationPublicRoutes(api, s.Docs)
	AgendaRoutes.AgendaPublicRoutes(api, s.Agendas)
	HomeRoutes.HomePublicRoutes(api, s.Home)
}

// ✅ Halaman & fragment HTML
// Contoh akses: /materi, /fragments/agenda
func ContentPageRoutes(app fiber.Router, s Services) {
	HomeRoutes.HomePageRoutes(app, s.Home)
	MemberRoutes.MemberPageRoutes(app, s.Members)
	MaterialRoutes.MaterialPageRoutes(app, s.Materials)
	DocumentationRoutes.DocumentationPageRoutes(app, s.Docs)
	AgendaRoutes.AgendaPageRoutes(app, s.Agendas)
}
