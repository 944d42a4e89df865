package controller_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"diporani_web/internals/features/agendas/route"
	"diporani_web/internals/features/agendas/service"
	"diporani_web/internals/remote/remotetest"
	"diporani_web/internals/views"
)

func newApp(store *remotetest.Store) *fiber.App {
	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	now := func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	svc := service.NewAgendaService(store, zap.NewNop(), now)
	route.AgendaPublicRoutes(app.Group("/api/public"), svc)
	route.AgendaPageRoutes(app, svc)
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestAgendaFragment(t *testing.T) {
	store := remotetest.NewStore().Insert("agendas",
		remotetest.Row{"id": "e1", "title": "Rapat Dewan", "location": "Sanggar Pramuka", "starts_at": "2025-01-15T01:00:00Z"},
		remotetest.Row{"id": "e2", "title": "Pelantikan Bantara", "starts_at": "2025-02-01T01:00:00Z"},
	)

	code, body := get(t, newApp(store), "/fragments/agenda")
	require.Equal(t, 200, code)
	assert.Equal(t, 2, strings.Count(body, `class="agenda-item"`))
	assert.Contains(t, body, "Sanggar Pramuka")
	assert.Contains(t, body, "08.00 WIB")
	assert.Less(t, strings.Index(body, "Rapat Dewan"), strings.Index(body, "Pelantikan Bantara"))
}

func TestAgendaFragmentEmpty(t *testing.T) {
	_, body := get(t, newApp(remotetest.NewStore().Insert("agendas")), "/fragments/agenda")
	assert.Contains(t, body, "Belum ada agenda yang akan datang")
}

func TestUpcomingJSON(t *testing.T) {
	store := remotetest.NewStore().Insert("agendas",
		remotetest.Row{"id": "e1", "title": "Rapat Dewan", "starts_at": "2025-01-15T01:00:00Z"},
	)
	code, body := get(t, newApp(store), "/api/public/agendas/upcoming")
	require.Equal(t, 200, code)
	assert.Contains(t, body, `"count":1`)
	assert.Contains(t, body, `"limit":3`)
	assert.Contains(t, body, `"time":"08.00 WIB"`)
}
