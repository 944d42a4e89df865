package controller

import (
	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/features/home/content"
	"diporani_web/internals/features/home/service"
	helper "diporani_web/internals/helpers"
)

type HomeController struct {
	Svc     *service.HomeService
	Content content.Home
}

func NewHomeController(svc *service.HomeService) *HomeController {
	return &HomeController{Svc: svc, Content: content.Default}
}

// =============================
// 🏠 Page: GET /
// Shell saja; empat section diisi browser lewat /fragments/*.
// =============================
func (ctl *HomeController) IndexPage(c *fiber.Ctx) error {
	return c.Render("home/index", fiber.Map{
		"Title":   "Beranda",
		"Content": ctl.Content,
	}, "layouts/main")
}

// =============================
// 📦 JSON: GET /api/public/home
// =============================
func (ctl *HomeController) GetHome(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Beranda", ctl.Svc.Load(c.UserContext()))
}
