package cli

import (
	"bytes"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"diporani_web/internals/configs"
	"diporani_web/internals/constants"
	"diporani_web/internals/features/members/dto"
	routes "diporani_web/internals/route"
	"diporani_web/internals/remote/remotetest"
)

func testConfig(source constants.ContentSource) configs.Config {
	return configs.Config{
		AppEnv:         "test",
		Port:           3000,
		BackendDriver:  configs.DriverPostgREST,
		ContentSource:  source,
		CORSOrigins:    "*",
		RequestTimeout: 5 * time.Second,
	}
}

func newTestApp(store *remotetest.Store, source constants.ContentSource) *fiber.App {
	return NewApp(routes.Deps{
		Client: store,
		Cfg:    testConfig(source),
		Log:    zap.NewNop(),
		Now:    func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) },
	})
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

func TestAppServesPagesFragmentsAndAPI(t *testing.T) {
	store := remotetest.NewStore().
		Insert("profiles", remotetest.Row{"id": "11111111-1111-4111-8111-111111111111", "full_name": "Ayu", "role": "bph", "jabatan": "kerani"}).
		Insert("agendas").
		Insert("materials").
		Insert("documentation_assets")
	app := newTestApp(store, constants.SourceStatic)

	cases := []struct {
		target string
		code   int
		want   string
	}{
		{"/", 200, "Diporani SMA Negeri 1 Kasihan"},
		{"/fragments/struktur", 200, "Kerani"},
		{"/fragments/materi", 200, "Orientasi Penegak"},
		{"/fragments/dokumentasi", 200, "Dokumentasi Latihan Rutin"},
		{"/fragments/agenda", 200, "Belum ada agenda yang akan datang"},
		{"/materi/orientasi-penegak", 200, "Orientasi Penegak"},
		{"/dokumentasi/tidak-ada", 404, "Halaman tidak tersedia"},
		{"/halaman/acak", 404, "Halaman tidak tersedia"},
		{"/api/public/members", 200, `"success":true`},
		{"/api/public/nope", 404, "NOT_FOUND"},
		{"/static/css/site.css", 200, ":root"},
	}
	for _, tc := range cases {
		code, body := get(t, app, tc.target)
		assert.Equal(t, tc.code, code, tc.target)
		assert.Contains(t, body, tc.want, tc.target)
	}
}

func TestRemoteSourceUsesIDs(t *testing.T) {
	store := remotetest.NewStore().Insert("materials")
	app := newTestApp(store, constants.SourceRemote)

	code, _ := get(t, app, "/materi/orientasi-penegak")
	assert.Equal(t, 404, code)
	assert.Equal(t, 0, store.Calls("materials"))
}

func TestHealth(t *testing.T) {
	store := remotetest.NewStore()
	app := newTestApp(store, constants.SourceRemote)

	code, body := get(t, app, "/health")
	assert.Equal(t, 200, code)
	assert.Contains(t, body, `"status":"OK"`)

	store.PingErr = errors.New("refused")
	code, body = get(t, app, "/health")
	assert.Equal(t, 503, code)
	assert.Contains(t, body, `"status":"DOWN"`)
}

func TestPrintGroups(t *testing.T) {
	var buf bytes.Buffer
	PrintGroups(&buf, nil)
	assert.Equal(t, "Belum ada data anggota\n", buf.String())

	buf.Reset()
	PrintGroups(&buf, []dto.RoleGroup{{
		Label: "Admin",
		Members: []dto.MemberDTO{
			{FullName: "Bima", Role: constants.RoleAdmin, Jabatan: constants.JabatanPradana, JabatanLabel: "Pradana"},
		},
	}})
	assert.Equal(t, "== Admin (1)\n  - Bima · Pradana\n", buf.String())
}
