package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"wallpaper/internal/domain/wallconfig"
	"wallpaper/internal/raster"
	"wallpaper/internal/storage"
	"wallpaper/internal/token"
	"wallpaper/internal/wallpaper"
	"wallpaper/pkg/zip"
)

// bundleJob is one image inside a bundle.
type bundleJob struct {
	tok    string
	vector bool
	name   string
}

// bundleJobs lists what a bundle holds: both theme variants for Ramadan, the
// PNG plus its SVG source for life calendars.
func bundleJobs(tok string, cfg wallconfig.Config) ([]bundleJob, error) {
	switch c := cfg.(type) {
	case wallconfig.Ramadan:
		var jobs []bundleJob
		for _, th := range []wallconfig.Theme{wallconfig.ThemeClassic, wallconfig.ThemeGirly} {
			variant, err := token.Encode(c.WithTheme(th))
			if err != nil {
				return nil, fmt.Errorf("encode %s variant: %w", th, err)
			}
			jobs = append(jobs, bundleJob{tok: variant, name: "ramadan-" + string(th) + ".png"})
		}
		return jobs, nil
	case wallconfig.Life:
		return []bundleJob{
			{tok: tok, name: "life.png"},
			{tok: tok, vector: true, name: "life.svg"},
		}, nil
	}
	return nil, fmt.Errorf("unsupported config %T", cfg)
}

func (e *env) bundle(ctx context.Context, args []string) error {
	fs := newFlagSet("bundle")
	width := fs.Int("w", wallpaper.DefaultWidth, "width in pixels")
	height := fs.Int("h", wallpaper.DefaultHeight, "height in pixels")
	atFlag := fs.String("at", "", "render instant, RFC 3339 or YYYY-MM-DD (default now)")
	outDir := fs.String("out", ".", "output directory")
	name := fs.String("name", "", "archive name (default {mode}-calendar-{token prefix}.zip)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("bundle takes exactly one token")
	}
	tok := fs.Arg(0)
	cfg, ok := token.Decode(tok)
	if !ok {
		return errors.New("invalid token")
	}
	at, err := parseInstant(*atFlag, time.Now())
	if err != nil {
		return err
	}
	jobs, err := bundleJobs(tok, cfg)
	if err != nil {
		return err
	}

	timings, _ := e.upstreams()
	svc := wallpaper.NewService(timings, raster.New(e.logger), e.logger)
	entries := make([]zip.Entry, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			render := svc.Produce
			if job.vector {
				render = svc.Vector
			}
			img, err := render(gctx, job.tok, *width, *height, at)
			if err != nil {
				return fmt.Errorf("render %s: %w", job.name, err)
			}
			entries[i] = zip.Entry{Name: job.name, Data: img.Body, Modified: at}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	archive, err := zip.Archive(entries)
	if err != nil {
		return err
	}
	dir, err := storage.NewOutputDir(*outDir)
	if err != nil {
		return err
	}
	file := *name
	if file == "" {
		file = wallpaper.Filename(cfg.Mode(), tok, "zip")
	}
	path, err := dir.Save(ctx, file, archive)
	if err != nil {
		return err
	}
	e.row("wrote", path)
	e.row("entries", strconv.Itoa(len(entries)))
	return nil
}
