package render

import (
	"time"

	"go.uber.org/zap"

	"masterlist/rows"
)

// Run loads rows from workbook at source and renders all pages. It returns
// number of written pages and number of rows read.
func Run(source string, opts *Options, log *zap.Logger, progress ProgressFunc) (pages, total int, err error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := opts.Validate(); err != nil {
		return 0, 0, err
	}

	src, err := rows.Load(source, opts.NameColumn, opts.IDColumn, log.Named("rows"))
	if err != nil {
		return 0, 0, err
	}
	total = src.Len()

	r, err := New(opts, log)
	if err != nil {
		return 0, total, err
	}

	log.Info("Rendering starting",
		zap.String("source", source),
		zap.String("destination", opts.OutputDir),
		zap.Int("rows", total),
		zap.Int("pages", r.Grid().Pages(total)))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Int("pages", pages), zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	pages, err = r.Render(src.All(), total, progress)
	return pages, total, err
}
