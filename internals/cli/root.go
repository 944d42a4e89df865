// Package cli: entrypoint cobra (serve, members, check).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"diporani_web/internals/configs"
)

// flag → key ENV yang ditimpa
var flagKeys = map[string]string{
	"port":   "PORT",
	"driver": "BACKEND_DRIVER",
	"source": "CONTENT_SOURCE",
}

func NewRootCommand() *cobra.Command {
	v := configs.NewViper()

	root := &cobra.Command{
		Use:           "diporani",
		Short:         "Situs profil Ambalan DIPORANI SMA Negeri 1 Kasihan",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.Int("port", 0, "port HTTP (ENV PORT)")
	pf.String("driver", "", "backend data: postgrest | postgres (ENV BACKEND_DRIVER)")
	pf.String("source", "", "sumber materi/dokumentasi: remote | static (ENV CONTENT_SOURCE)")
	for flag, key := range flagKeys {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(newServeCommand(v), newMembersCommand(v), newCheckCommand(v))
	return root
}

// Execute dipanggil dari main.go.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

// bootstrap: .env → config → logger. Flag yang tidak di-set tidak menimpa ENV.
func bootstrap(v *viper.Viper) (configs.Config, *zap.Logger, error) {
	boot := zap.NewNop()
	if l, err := configs.NewLogger(os.Getenv("APP_ENV")); err == nil {
		boot = l
	}
	configs.LoadEnv(boot)

	cfg, err := configs.Load(v)
	if err != nil {
		return configs.Config{}, nil, err
	}
	log, err := configs.NewLogger(cfg.AppEnv)
	if err != nil {
		return configs.Config{}, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, log, nil
}
