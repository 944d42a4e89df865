package controller

import (
	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/features/members/dto"
	"diporani_web/internals/features/members/service"
	helper "diporani_web/internals/helpers"
)

type MemberController struct {
	Svc *service.MemberService
}

func NewMemberController(svc *service.MemberService) *MemberController {
	return &MemberController{Svc: svc}
}

// =============================
// 📄 JSON: GET /api/public/members
// =============================
func (ctl *MemberController) ListMembers(c *fiber.Ctx) error {
	col := ctl.Svc.Members(c.UserContext())
	if col.Failed() {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat data anggota")
	}
	return helper.JsonList(c, "Daftar anggota", col.Items(), helper.ListMeta{Count: col.Len()})
}

// =============================
// 🧩 JSON: GET /api/public/members/grouped
// =============================
func (ctl *MemberController) ListGrouped(c *fiber.Ctx) error {
	col := ctl.Svc.Structure(c.UserContext())
	if col.Failed() {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat struktur keanggotaan")
	}
	return helper.JsonList(c, "Struktur keanggotaan", col.Items(), helper.ListMeta{Count: col.Len()})
}

// =============================
// 🔍 JSON: GET /api/public/profiles/:id
// =============================
func (ctl *MemberController) GetProfile(c *fiber.Ctx) error {
	item, posts := ctl.Svc.Profile(c.UserContext(), c.Params("id"))
	if item.Failed() {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat profil")
	}
	member, ok := item.Value()
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil tidak ditemukan")
	}
	items := posts.Items()
	if items == nil {
		items = []dto.PostDTO{}
	}
	return helper.JsonOK(c, "Detail profil", dto.ProfileDetailDTO{Profile: member, Posts: items})
}

// =============================
// 🧱 Fragment: GET /fragments/struktur
// =============================
func (ctl *MemberController) StrukturFragment(c *fiber.Ctx) error {
	return c.Render("fragments/struktur", fiber.Map{
		"Groups": ctl.Svc.Structure(c.UserContext()),
	})
}

// =============================
// 👤 Page: GET /profil/:id
// =============================
func (ctl *MemberController) ProfilePage(c *fiber.Ctx) error {
	item, posts := ctl.Svc.Profile(c.UserContext(), c.Params("id"))
	member, ok := item.Value()
	if item.NotFound() || !ok {
		return fiber.NewError(fiber.StatusNotFound, "Profil tidak ditemukan")
	}
	return c.Render("profil/detail", fiber.Map{
		"Title":  member.FullName,
		"Member": member,
		"Posts":  posts,
	}, "layouts/main")
}
