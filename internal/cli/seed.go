package cli

import (
	"fmt"
	"os"

	"bibliolights/internal/domain/catalog"
	"bibliolights/internal/pkg/clock"
	"bibliolights/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout read by `bookctl seed`.
type seedFile struct {
	Books []seedBook `yaml:"books"`
}

type seedBook struct {
	Title           string   `yaml:"title"`
	Author          string   `yaml:"author"`
	Description     *string  `yaml:"description"`
	CoverImage      *string  `yaml:"coverImage"`
	Price           string   `yaml:"price"`
	DeliveryOptions []string `yaml:"deliveryOptions"`
	Quota           int      `yaml:"quota"`
}

func (b seedBook) toInput() (catalog.EntryInput, error) {
	price, err := decimal.NewFromString(b.Price)
	if err != nil {
		return catalog.EntryInput{}, fmt.Errorf("book %q: invalid price %q: %w", b.Title, b.Price, err)
	}
	return catalog.EntryInput{
		Title:           b.Title,
		Author:          b.Author,
		Description:     b.Description,
		CoverImage:      b.CoverImage,
		Price:           price,
		DeliveryOptions: b.DeliveryOptions,
		Quota:           b.Quota,
	}, nil
}

func parseSeedFile(data []byte) ([]catalog.EntryInput, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	inputs := make([]catalog.EntryInput, 0, len(f.Books))
	for _, b := range f.Books {
		in, err := b.toInput()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func newSeedCmd() *cobra.Command {
	var (
		file     string
		stopOnce bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert catalog entries from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}
			inputs, err := parseSeedFile(data)
			if err != nil {
				return err
			}

			unitOfWork, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			cmds := commands.NewCatalogCommands(unitOfWork, clock.NewRealClock())
			ctx := commandContext(cmd)

			created := 0
			for _, in := range inputs {
				entry, cerr := cmds.Create(ctx, in)
				if cerr != nil {
					if stopOnce {
						return fmt.Errorf("seeding %q: %w", in.Title, cerr)
					}
					warn("Skipped %q: %v", in.Title, cerr)
					continue
				}
				created++
				ok("Created %s %q (quota %d)", entry.ID(), entry.Title(), entry.Quota())
			}
			ok("Seeded %d of %d entries", created, len(inputs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "catalog.yml", "YAML file with a top-level books list")
	cmd.Flags().BoolVar(&stopOnce, "strict", false, "Stop at the first entry that fails")
	return cmd
}
