package controller

import (
	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/features/agendas/service"
	helper "diporani_web/internals/helpers"
)

type AgendaController struct {
	Svc *service.AgendaService
}

func NewAgendaController(svc *service.AgendaService) *AgendaController {
	return &AgendaController{Svc: svc}
}

// =============================
// 📅 JSON: GET /api/public/agendas/upcoming
// =============================
func (ctl *AgendaController) ListUpcoming(c *fiber.Ctx) error {
	col := ctl.Svc.Upcoming(c.UserContext())
	if col.Failed() {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat agenda")
	}
	return helper.JsonList(c, "Agenda mendatang", col.Items(), helper.ListMeta{Count: col.Len(), Limit: service.UpcomingLimit})
}

// =============================
// 🧱 Fragment: GET /fragments/agenda
// =============================
func (ctl *AgendaController) AgendaFragment(c *fiber.Ctx) error {
	return c.Render("fragments/agenda", fiber.Map{
		"Items": ctl.Svc.Upcoming(c.UserContext()),
	})
}
