package configs

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormLogger "gorm.io/gorm/logger"

	"diporani_web/internals/constants"
)

func supabaseViper() map[string]any {
	return map[string]any{
		"SUPABASE_URL":      "https://abc.supabase.co",
		"SUPABASE_ANON_KEY": "anon",
	}
}

func load(t *testing.T, overrides map[string]any) (Config, error) {
	t.Helper()
	v := NewViper()
	for k, val := range overrides {
		v.Set(k, val)
	}
	return Load(v)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t, supabaseViper())
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, DriverPostgREST, cfg.BackendDriver)
	assert.Equal(t, 10*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, constants.SourceRemote, cfg.ContentSource)
	assert.Equal(t, "@every 5m", cfg.ProbeSchedule)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"*"}, cfg.Origins())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("CONTENT_SOURCE", " Static ")
	t.Setenv("CORS_ORIGINS", "https://diporani.id, http://localhost:5173")

	cfg, err := load(t, supabaseViper())
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, constants.SourceStatic, cfg.ContentSource)
	assert.Equal(t, []string{"https://diporani.id", "http://localhost:5173"}, cfg.Origins())
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := load(t, map[string]any{"SUPABASE_URL": "", "SUPABASE_ANON_KEY": ""})
	assert.ErrorContains(t, err, "SUPABASE_URL")

	over := supabaseViper()
	over["BACKEND_DRIVER"] = "mysql"
	_, err = load(t, over)
	assert.Error(t, err)

	over = supabaseViper()
	over["CONTENT_SOURCE"] = "cache"
	_, err = load(t, over)
	assert.ErrorIs(t, err, constants.ErrUnknownValue)

	_, err = load(t, map[string]any{"BACKEND_DRIVER": "postgres"})
	assert.ErrorContains(t, err, "DB_HOST")
}

func TestPostgresDriverAndDSN(t *testing.T) {
	cfg, err := load(t, map[string]any{
		"BACKEND_DRIVER": "postgres",
		"DB_HOST":        "db.abc.supabase.co",
		"DB_USER":        "postgres",
		"DB_PASSWORD":    "p@ss word",
		"DB_NAME":        "postgres",
	})
	require.NoError(t, err)

	u, err := url.Parse(cfg.DSN())
	require.NoError(t, err)
	assert.Equal(t, "db.abc.supabase.co:5432", u.Host)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss word", pw)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	assert.Equal(t, "-c statement_timeout=3000", u.Query().Get("options"))
}

func TestGormLoggerWritesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core))

	gl.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return `SELECT * FROM "profiles"`, 3
	}, nil)
	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT * FROM "nope"`, 0
	}, errors.New("relation does not exist"))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "🐢 slow sql", logs.All()[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)

	silent := gl.LogMode(gormLogger.Silent)
	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "", 0 }, errors.New("x"))
	assert.Equal(t, 2, logs.Len())
}
