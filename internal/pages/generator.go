// Package pages turns a directory of numbered page images into linked,
// self-contained HTML pages.
package pages

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const pageFileMode = 0o644

// Options holds options for a generation run.
type Options struct {
	Dir       string       // Directory scanned for page images (default: ".")
	OutputDir string       // Directory pages are written to (default: Dir)
	Logger    *slog.Logger // nil discards log output
}

// Result summarizes a completed run.
type Result struct {
	Pages []string // Written file names in page order
}

// Generator writes one HTML page per page image.
type Generator struct {
	Options Options
	logger  *slog.Logger
}

// NewGenerator creates a generator, filling in option defaults.
func NewGenerator(opts Options) *Generator {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.OutputDir == "" {
		opts.OutputDir = opts.Dir
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Generator{Options: opts, logger: logger}
}

// Run scans the input directory and generates every page in order.
// It stops at the first error; pages written before it stay on disk.
func (g *Generator) Run() (*Result, error) {
	files, err := ScanImages(g.Options.Dir)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("scanned page images", "dir", g.Options.Dir, "count", len(files))

	result := &Result{Pages: make([]string, 0, len(files))}
	for i, file := range files {
		name, err := g.GeneratePage(i, file, len(files))
		if err != nil {
			return result, err
		}
		result.Pages = append(result.Pages, name)
	}

	return result, nil
}

// GeneratePage renders the image at zero-based position index and writes it
// to the output directory, replacing any existing page of the same name.
// It returns the written file name.
func (g *Generator) GeneratePage(index int, file ImageFile, total int) (string, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read image %q: %w", file.Path, err)
	}

	doc := NewDocument(index, total, data)
	outPath := filepath.Join(g.Options.OutputDir, doc.FileName())

	if err := os.WriteFile(outPath, []byte(doc.Render()), pageFileMode); err != nil {
		return "", fmt.Errorf("failed to write page %q: %w", outPath, err)
	}

	g.logger.Debug("wrote page",
		"page", doc.Number,
		"source", file.Name,
		"bytes", len(data),
		"output", outPath,
	)

	return doc.FileName(), nil
}
