// Package generate implements program commands on top of render and pdfout.
package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"masterlist/config"
	"masterlist/render"
	"masterlist/state"
)

// Run is "render" command action.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	if dst := cmd.Args().Get(1); len(dst) > 0 {
		env.Cfg.Output.Directory = dst
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	applyFlags(cmd, env.Cfg)

	// last chance to stop, rendering itself is not interruptible
	if err := ctx.Err(); err != nil {
		return err
	}
	return process(env, src, log)
}

var backgroundFormats = []string{"png", "jpeg", "gif", "bmp", "tiff", "webp", "svg"}

// RenderFlags returns flags of "render" command. Every flag overrides
// configuration value when set.
func RenderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "pairs", Usage: "number of name/id column `PAIRS` on a page"},
		&cli.IntFlag{Name: "rows", Usage: "number of `ROWS` on a page"},
		&cli.IntFlag{Name: "alpha", Usage: "cell background opacity `VALUE` (0-255)"},
		&cli.FloatFlag{Name: "font-size", Usage: "body font `SIZE` in pixels"},
		&cli.FloatFlag{Name: "header-font-size", Usage: "header font `SIZE` in pixels"},
		&cli.StringFlag{Name: "text-color", Usage: "body text `COLOR` as R,G,B"},
		&cli.StringFlag{Name: "header-text-color", Usage: "header text `COLOR`"},
		&cli.StringFlag{Name: "row-a-color", Usage: "even rows background `COLOR`"},
		&cli.StringFlag{Name: "row-b-color", Usage: "odd rows background `COLOR`"},
		&cli.StringFlag{Name: "header-bg-color", Usage: "header background `COLOR`"},
		&cli.StringFlag{Name: "border-color", Usage: "cell border `COLOR`"},
		&cli.BoolFlag{Name: "match-table-to-bg", Aliases: []string{"match"}, Usage: "derive table colors from background image"},
		&cli.StringFlag{Name: "bg", Usage: "background image `FILE` (" + strings.Join(backgroundFormats, ", ") + ")"},
		&cli.StringFlag{Name: "font", Usage: "TrueType/OpenType font `FILE`"},
		&cli.BoolFlag{Name: "pdf", Usage: "bundle rendered pages into a single PDF file"},
		&cli.StringFlag{Name: "prefix", Usage: "page file name `PREFIX`"},
	}
}

// applyFlags overwrites configuration values with explicitly set flags.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	ints := []struct {
		name string
		dst  *int
	}{
		{"pairs", &cfg.Grid.PairsPerRow},
		{"rows", &cfg.Grid.RowsPerPage},
		{"alpha", &cfg.Style.CellAlpha},
	}
	for _, f := range ints {
		if cmd.IsSet(f.name) {
			*f.dst = int(cmd.Int(f.name))
		}
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"font-size", &cfg.Style.BodyFontSize},
		{"header-font-size", &cfg.Style.HeaderFontSize},
	}
	for _, f := range floats {
		if cmd.IsSet(f.name) {
			*f.dst = cmd.Float(f.name)
		}
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{"text-color", &cfg.Style.Colors.BodyText},
		{"header-text-color", &cfg.Style.Colors.HeaderText},
		{"row-a-color", &cfg.Style.Colors.RowA},
		{"row-b-color", &cfg.Style.Colors.RowB},
		{"header-bg-color", &cfg.Style.Colors.HeaderBG},
		{"border-color", &cfg.Style.Colors.Border},
		{"bg", &cfg.Style.Background},
		{"font", &cfg.Style.Font.Path},
		{"prefix", &cfg.Output.Prefix},
	}
	for _, f := range strs {
		if cmd.IsSet(f.name) {
			*f.dst = cmd.String(f.name)
		}
	}

	if cmd.IsSet("match-table-to-bg") {
		cfg.Style.MatchToBackground = cmd.Bool("match-table-to-bg")
	}
	if cmd.IsSet("pdf") {
		cfg.Output.PDF.Enable = cmd.Bool("pdf")
	}
}

// process renders pages from src according to env configuration and
// optionally bundles them into PDF. It does not depend on cli.
func process(env *state.LocalEnv, src string, log *zap.Logger) error {
	opts, err := render.NewOptions(env.Cfg)
	if err != nil {
		return err
	}

	if env.Rpt != nil {
		if fi, err := os.Stat(src); err == nil && fi.Mode().IsRegular() {
			if err := env.Rpt.StoreCopy("source/"+filepath.Base(src), src); err != nil {
				log.Warn("Unable to store source in debug report", zap.Error(err))
			}
		}
	}

	pages, total, err := render.Run(src, opts, log, func(page, total int) {
		log.Info("Page rendered", zap.Int("page", page), zap.Int("of", total))
	})
	if err != nil {
		return err
	}
	if total == 0 {
		log.Warn("No rows found, nothing to render", zap.String("source", src))
	}
	if pages > 0 && env.Rpt != nil {
		// first page is enough to see layout and colors
		first := render.PageFileName(opts.FilePrefix(), 1)
		env.Rpt.Store("result/"+first, filepath.Join(opts.OutputDir, first))
	}

	dir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		dir = opts.OutputDir
	}
	env.Printf("Done. Generated %d page(s) into: %s\n", pages, dir)

	if !env.Cfg.Output.PDF.Enable || pages == 0 {
		return nil
	}
	// only pages written by this run, directory may keep older ones
	prefix := opts.FilePrefix()
	files := make([]string, 0, pages)
	for page := 1; page <= pages; page++ {
		files = append(files, filepath.Join(opts.OutputDir, render.PageFileName(prefix, page)))
	}
	return bundle(env, opts.OutputDir, prefix, files, "", log)
}
