package generate

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"masterlist/pdfout"
	"masterlist/render"
	"masterlist/state"
)

// Bundle is "bundle" command action.
func Bundle(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("bundle")

	dir := cmd.Args().Get(0)
	if len(dir) == 0 {
		return errors.New("no source directory has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	filter := cmd.String("prefix")
	pages, err := pdfout.Collect(dir, filter)
	if err != nil {
		return err
	}

	// name template sees the same prefix page files are named with
	prefix := strings.TrimRight(filter, "_")
	if len(prefix) == 0 {
		prefix = (&render.Options{Prefix: env.Cfg.Output.Prefix, Transliterate: env.Cfg.Output.Transliterate}).FilePrefix()
	}
	return bundle(env, dir, prefix, pages, dst, log)
}

// bundle puts pages into dst. When dst is empty configured name template is
// expanded, relative names are placed into dir.
func bundle(env *state.LocalEnv, dir, prefix string, pages []string, dst string, log *zap.Logger) error {
	if len(dst) == 0 {
		values := NameValues{
			Prefix: prefix,
			Dir:    filepath.Base(dir),
			Pages:  len(pages),
		}
		name, err := expandName(env.Cfg.Output.PDF.Name, values)
		if err != nil {
			return err
		}
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		dst = name
	}

	log.Info("Bundling starting", zap.String("source", dir), zap.String("destination", dst), zap.Int("pages", len(pages)))
	defer func(start time.Time) {
		log.Info("Bundling completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	opts := pdfout.Options{
		Size:   env.Cfg.Output.PDF.Size,
		Margin: env.Cfg.Output.PDF.Margin,
	}
	if err := pdfout.Bundle(pages, dst, opts); err != nil {
		return err
	}
	if env.Rpt != nil {
		env.Rpt.Store("result/"+filepath.Base(dst), dst)
	}
	env.Printf("Done. Bundled %d page(s) into: %s\n", len(pages), dst)
	return nil
}
