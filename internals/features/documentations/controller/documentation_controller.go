package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/features/documentations/source"
	helper "diporani_web/internals/helpers"
	"diporani_web/internals/helpers/resource"
	"diporani_web/internals/remote"
)

// PreviewLimit: jumlah kartu dokumentasi di beranda.
const PreviewLimit = 6

type DocumentationController struct {
	Src source.Source
}

func NewDocumentationController(src source.Source) *DocumentationController {
	return &DocumentationController{Src: src}
}

// =============================
// 🖼️ JSON: GET /api/public/documentations?limit=
// =============================
func (ctl *DocumentationController) ListDocumentations(c *fiber.Ctx) error {
	limit, err := helper.ResolveLimit(c, 0, 100)
	if err != nil {
		return err
	}
	items, err := ctl.Src.List(c.UserContext(), limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat dokumentasi")
	}
	return helper.JsonList(c, "Daftar dokumentasi", items, helper.ListMeta{Count: len(items), Limit: limit})
}

// =============================
// 🔍 JSON: GET /api/public/documentations/:ref
// =============================
func (ctl *DocumentationController) GetDocumentation(c *fiber.Ctx) error {
	item, err := ctl.Src.Get(c.UserContext(), c.Params("ref"))
	switch {
	case errors.Is(err, remote.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumentasi tidak ditemukan")
	case err != nil:
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat dokumentasi")
	}
	return helper.JsonOK(c, "Detail dokumentasi", item)
}

// =============================
// 🧱 Fragment: GET /fragments/dokumentasi
// =============================
func (ctl *DocumentationController) DokumentasiFragment(c *fiber.Ctx) error {
	items, err := ctl.Src.List(c.UserContext(), PreviewLimit)
	return c.Render("fragments/dokumentasi", fiber.Map{
		"Items":   resource.Resolve(items, err),
		"ShowAll": true,
	})
}

// =============================
// 🗂️ Page: GET /dokumentasi
// =============================
func (ctl *DocumentationController) IndexPage(c *fiber.Ctx) error {
	items, err := ctl.Src.List(c.UserContext(), 0)
	return c.Render("dokumentasi/index", fiber.Map{
		"Title": "Dokumentasi Kegiatan",
		"Items": resource.Resolve(items, err),
	}, "layouts/main")
}

// =============================
// 📸 Page: GET /dokumentasi/:ref
// =============================
func (ctl *DocumentationController) DetailPage(c *fiber.Ctx) error {
	detail, err := ctl.Src.Get(c.UserContext(), c.Params("ref"))
	d, ok := resource.ResolveItem(detail, err).Value()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Dokumentasi tidak ditemukan")
	}
	return c.Render("dokumentasi/detail", fiber.Map{
		"Title": d.Title,
		"Doc":   d,
	}, "layouts/main")
}
