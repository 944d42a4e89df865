package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestEnvelopes(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error { return JsonOK(c, "", fiber.Map{"a": 1}) })
	app.Get("/list", func(c *fiber.Ctx) error {
		return JsonList(c, "daftar", []string{"x", "y"}, ListMeta{Count: 2, Limit: 4})
	})
	app.Get("/err", func(c *fiber.Ctx) error { return JsonError(c, fiber.StatusBadGateway, "") })

	code, body := call(t, app, "/ok")
	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])

	_, body = call(t, app, "/list")
	assert.Equal(t, map[string]any{"count": float64(2), "limit": float64(4)}, body["meta"])

	code, body = call(t, app, "/err")
	assert.Equal(t, 502, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "UPSTREAM_ERROR", body["error_code"])
	assert.Equal(t, "Bad Gateway", body["message"])
}

func TestResolveLimit(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		n, err := ResolveLimit(c, 0, 50)
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return JsonError(c, fe.Code, fe.Message)
			}
			return err
		}
		return JsonOK(c, "", n)
	})

	_, body := call(t, app, "/")
	assert.Equal(t, float64(0), body["data"])
	_, body = call(t, app, "/?limit=4")
	assert.Equal(t, float64(4), body["data"])
	_, body = call(t, app, "/?limit=900")
	assert.Equal(t, float64(50), body["data"])
	// limit=0 sama dengan tanpa limit
	_, body = call(t, app, "/?limit=0")
	assert.Equal(t, float64(0), body["data"])
	code, _ := call(t, app, "/?limit=abc")
	assert.Equal(t, 400, code)
	code, _ = call(t, app, "/?limit=-1")
	assert.Equal(t, 400, code)
}
