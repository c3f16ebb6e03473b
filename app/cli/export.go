package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"logo-banner/app"
	"logo-banner/models"
	"logo-banner/service"
)

type exportOptions struct {
	preset     bool
	all        bool
	random     bool
	search     string
	categories []string
	sort       string
	shuffle    bool
	width      int
	background string
	gradient   int
	out        string
}

// NewExportCmd creates the headless one-shot export command
func NewExportCmd() *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Compose a banner and write it as PNG without starting the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.preset, "preset", true, "select the preset items of the filtered set")
	cmd.Flags().BoolVar(&opts.all, "all", false, "select every item of the filtered set")
	cmd.Flags().BoolVar(&opts.random, "random", false, "select a random half of the filtered set")
	cmd.Flags().StringVar(&opts.search, "search", "", "search text")
	cmd.Flags().StringSliceVar(&opts.categories, "category", nil, "category ids to restrict to")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort the composition: asc or desc")
	cmd.Flags().BoolVar(&opts.shuffle, "shuffle", false, "shuffle the composition")
	cmd.Flags().IntVar(&opts.width, "width", models.DefaultWidth, "composition width in percent (5-100)")
	cmd.Flags().StringVar(&opts.background, "background", "", "CSS background (hex, rgb() or gradient)")
	cmd.Flags().IntVar(&opts.gradient, "gradient", -1, "index of a predefined gradient")
	cmd.Flags().StringVar(&opts.out, "out", "", "output file (default from config: banner.png)")
	return cmd
}

func runExport(ctx context.Context, opts exportOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	application, err := app.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer application.Close()

	session := application.Sessions.Create()
	if err := composeSession(session, opts); err != nil {
		return err
	}

	result, err := application.Exports.Export(ctx, session.BannerView(), session)
	if err != nil {
		return err
	}

	png, err := application.Exports.Get(ctx, result.ExportID)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = result.Filename
	}
	if err := os.WriteFile(out, png, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	color.Green("✓ Wrote %s (%dx%d, %d logos, %d bytes)", out, result.Width, result.Height, len(session.SelectedItems()), result.Bytes)
	if result.DriveID != "" {
		color.Cyan("  Drive file id: %s", result.DriveID)
	}
	return nil
}

// composeSession applies the command line options the way a client would drive the API
func composeSession(session *service.Session, opts exportOptions) error {
	if err := session.SetCategories(opts.categories); err != nil {
		return err
	}
	session.SearchNow(opts.search)

	switch {
	case opts.all:
		session.SelectAll()
	case opts.random:
		session.SelectRandomHalf()
	case opts.preset:
		session.SelectPreset()
	default:
		session.SelectNone()
	}

	if opts.shuffle {
		session.Randomize()
	}
	if opts.sort != "" {
		if err := session.Sort(models.SortDirection(opts.sort)); err != nil {
			return err
		}
	}

	if err := session.SetWidth(opts.width); err != nil {
		return err
	}

	switch {
	case opts.background != "":
		if _, err := session.SetBackground(opts.background); err != nil {
			return err
		}
	case opts.gradient >= 0:
		if _, err := session.PickGradient(opts.gradient); err != nil {
			return err
		}
	}
	return nil
}
