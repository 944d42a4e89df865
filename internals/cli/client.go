package cli

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"diporani_web/internals/configs"
	database "diporani_web/internals/databases"
	"diporani_web/internals/remote"
)

// backend: client remote + fungsi cleanup (tutup koneksi DB kalau ada).
type backend struct {
	Client remote.Client
	db     *gorm.DB
}

func (b backend) Close() error {
	if b.db == nil {
		return nil
	}
	return database.Close(b.db)
}

func newBackend(cfg configs.Config, log *zap.Logger) (backend, error) {
	switch cfg.BackendDriver {
	case configs.DriverPostgres:
		db, err := database.ConnectDB(cfg, log)
		if err != nil {
			return backend{}, err
		}
		database.WarmUp(db, log)
		return backend{Client: remote.NewGormStore(db), db: db}, nil

	case configs.DriverPostgREST:
		c, err := remote.NewPostgREST(remote.PostgRESTConfig{
			BaseURL: cfg.SupabaseURL,
			APIKey:  cfg.SupabaseAnonKey,
			Timeout: cfg.RemoteTimeout,
		})
		if err != nil {
			return backend{}, err
		}
		log.Info("🔌 PostgREST client siap", zap.String("url", cfg.SupabaseURL))
		return backend{Client: c}, nil
	}
	return backend{}, fmt.Errorf("driver backend tidak dikenal: %q", cfg.BackendDriver)
}
