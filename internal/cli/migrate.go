package cli

import (
	"fmt"
	"os"

	"bibliolights/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var (
		dir      string
		atlasBin string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations with the atlas CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadDBConfig()
			if err != nil {
				return err
			}

			wd, err := atlasexec.NewWorkingDir(
				atlasexec.WithMigrations(os.DirFS(dir)),
			)
			if err != nil {
				return fmt.Errorf("preparing migration dir %s: %w", dir, err)
			}
			defer wd.Close()

			client, err := atlasexec.NewClient(wd.Path(), atlasBin)
			if err != nil {
				return fmt.Errorf("starting atlas client: %w", err)
			}

			res, err := client.MigrateApply(commandContext(cmd), &atlasexec.MigrateApplyParams{
				URL:    cfg.BuildDSN(),
				DryRun: dryRun,
			})
			if err != nil {
				return fmt.Errorf("applying migrations: %w", err)
			}

			if len(res.Applied) == 0 {
				ok("Schema is up to date (version %s)", res.Current)
				return nil
			}
			for _, f := range res.Applied {
				ok("Applied %s", f.Name)
			}
			ok("Migrated %s → %s", res.Current, res.Target)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "migrations", "Directory holding the migration files and atlas.sum")
	cmd.Flags().StringVar(&atlasBin, "atlas", "atlas", "Path to the atlas binary")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the statements without executing them")
	return cmd
}
