package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	routes "diporani_web/internals/route"
	"diporani_web/internals/scheduler"
)

func newServeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Jalankan server HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(v)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			be, err := newBackend(cfg, log)
			if err != nil {
				log.Error("❌ backend gagal disiapkan", zap.Error(err))
				return err
			}
			defer func() { _ = be.Close() }()

			// ⏱ probe setelah backend siap
			probe := scheduler.NewBackendProbe(be.Client, log)
			cron, err := probe.Start(cfg.ProbeSchedule)
			if err != nil {
				return err
			}
			if cron != nil {
				defer cron.Stop()
			}

			app := NewApp(routes.Deps{Client: be.Client, Cfg: cfg, Log: log, Probe: probe})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info("🚀 Server running", zap.String("port", fmt.Sprint(cfg.Port)), zap.String("env", cfg.AppEnv))
			return runServer(ctx, app, fmt.Sprintf(":%d", cfg.Port), log)
		},
	}
}

// runServer: listen sampai ctx selesai (graceful shutdown) atau Listen gagal.
func runServer(ctx context.Context, app *fiber.App, addr string, log *zap.Logger) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			log.Error("❌ Server error", zap.String("addr", addr), zap.Error(err))
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("🛑 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("❌ Shutdown error", zap.Error(err))
	}
	return nil
}
