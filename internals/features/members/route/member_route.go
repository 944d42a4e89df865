package route

import (
	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/features/members/controller"
	"diporani_web/internals/features/members/service"
)

// 🌐 JSON publik, dipasang di group /api/public
func MemberPublicRoutes(api fiber.Router, svc *service.MemberService) {
	ctl := controller.NewMemberController(svc)

	members := api.Group("/members")
	members.Get("/", ctl.ListMembers)         // 📄 semua anggota (full_name asc)
	members.Get("/grouped", ctl.ListGrouped) // 🧩 dikelompokkan per role

	api.Get("/profiles/:id", ctl.GetProfile) // 🔍 profil + postingan
}

// 🖥️ Halaman & fragment HTML
func MemberPageRoutes(app fiber.Router, svc *service.MemberService) {
	ctl := controller.NewMemberController(svc)

	app.Get("/fragments/struktur", ctl.StrukturFragment)
	app.Get("/profil/:id", ctl.ProfilePage)
}
