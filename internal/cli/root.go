// Package cli implements bookctl, the operator tool for migrations, catalog seeding,
// manual quota release and development tokens.
package cli

import (
	"context"
	"fmt"
	"os"

	"bibliolights/internal/infra/db"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/infra/uow"
	"bibliolights/internal/pkg/config"
	"bibliolights/internal/usecase/shared"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var flagNoColor bool

var rootCmd = &cobra.Command{
	Use:   "bookctl",
	Short: "Operate a Bibliolights database",
	Long: `bookctl applies schema migrations, seeds the catalog from YAML,
releases reserved request slots and mints development tokens.

Database settings come from the same DB_* variables as the API server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if flagNoColor {
			color.NoColor = true
		}
	}

	rootCmd.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newReleaseCmd(),
		newTokenCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...any) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

func warn(format string, a ...any) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// openStore connects to the configured database and returns a unit of work over it.
func openStore() (shared.UnitOfWork, func(), error) {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return nil, nil, err
	}
	pool, cleanup, err := db.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	return uow.NewPostgresUoW(pool, query.New()), cleanup, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
