package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"diporani_web/internals/features/members/dto"
	"diporani_web/internals/features/members/service"
)

func newMembersCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "Cetak struktur keanggotaan per role",
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

			svc := service.NewMemberService(be.Client, log)
			col := svc.Structure(cmd.Context())
			if col.Failed() {
				log.Error("❌ gagal memuat struktur", zap.Error(col.Err()))
				return col.Err()
			}
			PrintGroups(cmd.OutOrStdout(), col.Items())
			return nil
		},
	}
}

// PrintGroups: satu blok per role, urut tetap admin → anggota.
func PrintGroups(w io.Writer, groups []dto.RoleGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "Belum ada data anggota")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "== %s (%d)\n", g.Label, len(g.Members))
		for _, m := range g.Members {
			line := "  - " + m.FullName
			if m.ShowJabatan() {
				line += " · " + m.JabatanLabel
			}
			if m.TingkatanLabel != "" {
				line += " [" + m.TingkatanLabel + "]"
			}
			fmt.Fprintln(w, line)
		}
	}
}
