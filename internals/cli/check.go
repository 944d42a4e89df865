package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"diporani_web/internals/scheduler"
)

func newCheckCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validasi config lalu ping backend sekali",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(v)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			be, err := newBackend(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = be.Close() }()

			st := scheduler.NewBackendProbe(be.Client, log).RunOnce(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "driver=%s source=%s\n", cfg.BackendDriver, cfg.ContentSource)
			if !st.OK {
				fmt.Fprintf(out, "backend: DOWN (%s)\n", st.Error)
				return fmt.Errorf("backend tidak dapat dihubungi")
			}
			fmt.Fprintf(out, "backend: OK (%d ms)\n", st.LatencyMS)
			return nil
		},
	}
}
