package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"logo-banner/app"
	"logo-banner/models"
	"logo-banner/service"
)

// NewCatalogCmd creates the catalog command
func NewCatalogCmd() *cobra.Command {
	var (
		search     string
		categories []string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print catalog statistics and the items matching a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			catalog, err := app.LoadCatalog(context.Background(), cfg)
			if err != nil {
				return err
			}

			presets := service.NewPresetProvider(cfg.Preset.Prefixes)
			return printCatalog(cmd.OutOrStdout(), catalog, presets, search, categories, limit)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search text, whitespace separated terms")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "category ids to restrict to")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum items to print (0 for all)")
	return cmd
}

func printCatalog(out io.Writer, catalog *service.CatalogStore, presets *service.PresetProvider, search string, categories []string, limit int) error {
	for _, id := range categories {
		if !catalog.HasCategory(models.CategoryID(id)) {
			return fmt.Errorf("%w: %q", models.ErrInvalidCategory, id)
		}
	}

	header := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)
	star := color.New(color.FgYellow)

	header.Fprintf(out, "Catalog: %d items\n", catalog.Len())
	for _, c := range catalog.Categories() {
		fmt.Fprintf(out, "  %-20s %s\n", c.Title, dim.Sprintf("%d", c.Count))
	}
	fmt.Fprintln(out)

	items := service.Filter(catalog.All(), search, categories)
	header.Fprintf(out, "Matching: %d items\n", len(items))

	for i, item := range items {
		if limit > 0 && i == limit {
			dim.Fprintf(out, "  ... %d more\n", len(items)-limit)
			break
		}
		marker := " "
		if presets.Match(item.ID) {
			marker = star.Sprint("*")
		}
		fmt.Fprintf(out, "%s %-28s %s\n", marker, item.ID, dim.Sprint(strings.Join(item.Category, ", ")))
	}
	return nil
}
