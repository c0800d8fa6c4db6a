package cli

import (
	"fmt"

	"bibliolights/internal/pkg/clock"
	"bibliolights/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release <catalog-entry-id>",
		Short: "Return one reserved request slot to a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid catalog entry id %q: %w", args[0], err)
			}

			unitOfWork, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			ledger := commands.NewInventoryLedger(unitOfWork, clock.NewRealClock())
			counter, err := ledger.Release(commandContext(cmd), entryID)
			if err != nil {
				return err
			}
			ok("Released one slot of %s: %d/%d reserved", counter.EntryID, counter.Reserved, counter.Quota)
			return nil
		},
	}
}
