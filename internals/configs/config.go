package configs

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"diporani_web/internals/constants"
)

const (
	DriverPostgREST = "postgrest"
	DriverPostgres  = "postgres"
)

// Config: semua setting runtime situs. Diisi dari ENV (+ .env) lewat viper,
// flag cobra menimpa nilai ENV.
type Config struct {
	AppEnv string `validate:"oneof=development production test"`
	Port   int    `validate:"min=1,max=65535"`

	BackendDriver   string `validate:"oneof=postgrest postgres"`
	SupabaseURL     string `validate:"omitempty,url"`
	SupabaseAnonKey string
	RemoteTimeout   time.Duration `validate:"min=0"`

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`

	ContentSource constants.ContentSource

	ProbeSchedule  string
	CORSOrigins    string
	RequestTimeout time.Duration `validate:"gt=0"`
	RateLimitMax   int           `validate:"min=0"`
}

func (c Config) IsProduction() bool { return c.AppEnv == "production" }

// =======================
// ENV LOADER
// =======================
func LoadEnv(log *zap.Logger) {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		log.Info("🚀 Running in Railway, menggunakan ENV dari sistem")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Info("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		return
	}
	log.Info("✅ .env file berhasil dimuat!")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// VIPER BINDING
// =======================

// SetDefaults mendaftarkan default; key = nama ENV.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", 3000)
	v.SetDefault("BACKEND_DRIVER", DriverPostgREST)
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_ANON_KEY", "")
	v.SetDefault("REMOTE_TIMEOUT", "10s")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("CONTENT_SOURCE", string(constants.SourceRemote))
	v.SetDefault("PROBE_SCHEDULE", "@every 5m")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("REQUEST_TIMEOUT", "5s")
	v.SetDefault("RATE_LIMIT_MAX", 120)
}

// NewViper: viper dengan default + AutomaticEnv.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return v
}

// Load membaca Config dari viper lalu memvalidasi.
func Load(v *viper.Viper) (Config, error) {
	source, err := constants.ParseContentSource(v.GetString("CONTENT_SOURCE"))
	if err != nil {
		return Config{}, fmt.Errorf("CONTENT_SOURCE: %w", err)
	}
	cfg := Config{
		AppEnv:          strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		Port:            v.GetInt("PORT"),
		BackendDriver:   strings.ToLower(strings.TrimSpace(v.GetString("BACKEND_DRIVER"))),
		SupabaseURL:     strings.TrimSpace(v.GetString("SUPABASE_URL")),
		SupabaseAnonKey: strings.TrimSpace(v.GetString("SUPABASE_ANON_KEY")),
		RemoteTimeout:   v.GetDuration("REMOTE_TIMEOUT"),
		DBUser:          v.GetString("DB_USER"),
		DBPassword:      v.GetString("DB_PASSWORD"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBName:          v.GetString("DB_NAME"),
		DBSSLMode:       v.GetString("DB_SSLMODE"),
		ContentSource:   source,
		ProbeSchedule:   strings.TrimSpace(v.GetString("PROBE_SCHEDULE")),
		CORSOrigins:     v.GetString("CORS_ORIGINS"),
		RequestTimeout:  v.GetDuration("REQUEST_TIMEOUT"),
		RateLimitMax:    v.GetInt("RATE_LIMIT_MAX"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate: tag struct + cek kredensial sesuai driver.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config tidak valid: %w", err)
	}
	switch c.BackendDriver {
	case DriverPostgREST:
		if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
			return fmt.Errorf("config tidak valid: driver %s butuh SUPABASE_URL dan SUPABASE_ANON_KEY", c.BackendDriver)
		}
	case DriverPostgres:
		if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
			return fmt.Errorf("config tidak valid: driver %s butuh DB_HOST, DB_USER dan DB_NAME", c.BackendDriver)
		}
	}
	return nil
}

// DSN Postgres (Supabase) + statement_timeout.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	q.Set("application_name", "diporani_web")
	q.Set("options", "-c statement_timeout=3000")
	u.RawQuery = q.Encode()
	return u.String()
}

// Origins memecah CORS_ORIGINS (dipisah koma).
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
