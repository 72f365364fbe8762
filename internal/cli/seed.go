package cli

import (
	"context"
	"fmt"
	"os"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedFile is the layout of a catalog seed file:
//
//	entries:
//	  - name: Engine Tune
//	    category: Service
//	    price: 1500
type SeedFile struct {
	Entries []SeedEntry `yaml:"entries"`
}

type SeedEntry struct {
	Name     string    `yaml:"name"`
	Category string    `yaml:"category"`
	Price    seedPrice `yaml:"price"`
}

// seedPrice decodes a YAML scalar straight into a decimal so prices never
// pass through float64.
type seedPrice struct {
	decimal.Decimal
}

func (p *seedPrice) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a number", value.Line)
	}
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid price %q", value.Line, value.Value)
	}
	p.Decimal = d
	return nil
}

// ParseSeedFile decodes raw and converts every entry to a catalog entry.
func ParseSeedFile(raw []byte) ([]entities.CatalogEntry, error) {
	var f SeedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	out := make([]entities.CatalogEntry, 0, len(f.Entries))
	for i, e := range f.Entries {
		c, ok := entities.ParseCategory(e.Category)
		if !ok {
			return nil, fmt.Errorf("entry %d (%s): invalid category %q", i+1, e.Name, e.Category)
		}
		out = append(out, entities.CatalogEntry{Name: e.Name, Category: c, Price: e.Price.Decimal})
	}
	return out, nil
}

func newSeedCatalogCmd(load func(ctx context.Context) (*App, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-catalog",
		Short: "Add catalog entries from a YAML file; existing names are skipped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read seed file: %w", err)
			}
			entries, err := ParseSeedFile(raw)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := load(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			created, skipped := 0, 0
			for _, e := range entries {
				_, err := a.Catalog.Create(ctx, e)
				switch {
				case errs.IsDuplicateCatalogName(err):
					skipped++
					fmt.Fprintf(out, "skip   %s (already in catalog)\n", e.Name)
				case err != nil:
					return fmt.Errorf("failed to create %q: %w", e.Name, err)
				default:
					created++
					fmt.Fprintf(out, "added  %s\n", e.Name)
				}
			}
			fmt.Fprintf(out, "\n%d added, %d skipped\n", created, skipped)
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "catalog.yaml", "Seed file path")
	return cmd
}
