package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/features/materials/source"
	helper "diporani_web/internals/helpers"
	"diporani_web/internals/helpers/resource"
	"diporani_web/internals/remote"
)

// PreviewLimit: jumlah kartu materi di beranda.
const PreviewLimit = 4

type MaterialController struct {
	Src source.Source
}

func NewMaterialController(src source.Source) *MaterialController {
	return &MaterialController{Src: src}
}

// =============================
// 📄 JSON: GET /api/public/materials?limit=
// =============================
func (ctl *MaterialController) ListMaterials(c *fiber.Ctx) error {
	limit, err := helper.ResolveLimit(c, 0, 100)
	if err != nil {
		return err
	}
	items, err := ctl.Src.List(c.UserContext(), limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat materi")
	}
	return helper.JsonList(c, "Daftar materi", items, helper.ListMeta{Count: len(items), Limit: limit})
}

// =============================
// 🔍 JSON: GET /api/public/materials/:ref
// =============================
func (ctl *MaterialController) GetMaterial(c *fiber.Ctx) error {
	item, err := ctl.Src.Get(c.UserContext(), c.Params("ref"))
	switch {
	case errors.Is(err, remote.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
	case err != nil:
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat materi")
	}
	return helper.JsonOK(c, "Detail materi", item)
}

// =============================
// 🧱 Fragment: GET /fragments/materi
// =============================
func (ctl *MaterialController) MateriFragment(c *fiber.Ctx) error {
	items, err := ctl.Src.List(c.UserContext(), PreviewLimit)
	return c.Render("fragments/materi", fiber.Map{
		"Items":   resource.Resolve(items, err),
		"ShowAll": true,
	})
}

// =============================
// 📚 Page: GET /materi
// =============================
func (ctl *MaterialController) IndexPage(c *fiber.Ctx) error {
	items, err := ctl.Src.List(c.UserContext(), 0)
	return c.Render("materi/index", fiber.Map{
		"Title": "Materi Latihan",
		"Items": resource.Resolve(items, err),
	}, "layouts/main")
}

// =============================
// 📖 Page: GET /materi/:ref
// =============================
func (ctl *MaterialController) DetailPage(c *fiber.Ctx) error {
	detail, err := ctl.Src.Get(c.UserContext(), c.Params("ref"))
	m, ok := resource.ResolveItem(detail, err).Value()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
	}
	return c.Render("materi/detail", fiber.Map{
		"Title":    m.Title,
		"Material": m,
	}, "layouts/main")
}
