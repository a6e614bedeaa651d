// Package bundle runs one select → read → write pass and reports the outcome.
package bundle

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"frontbundle/internal/config"
	"frontbundle/internal/logging"
	"frontbundle/internal/report"
	"frontbundle/internal/types"
	"frontbundle/internal/world"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap/zapcore"
)

// Bundler ties selection, reading and report writing together.
type Bundler struct {
	cfg      *config.Config
	selector *world.Selector
	reader   *world.Reader
	writer   *report.Writer
	stdout   io.Writer
}

// Result is what a completed run produced.
type Result struct {
	Entries    []types.PayloadEntry
	Selection  *world.SelectResult
	Summary    report.Summary
	OutputPath string
}

// New builds a Bundler. The success line is written to stdout.
func New(cfg *config.Config, stdout io.Writer) (*Bundler, error) {
	reader, err := world.NewReader(cfg.World.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	return &Bundler{
		cfg:      cfg,
		selector: world.NewSelector(world.SelectorConfigFrom(cfg.World)),
		reader:   reader,
		writer:   report.NewWriter(cfg.Report),
		stdout:   stdout,
	}, nil
}

// OutputPath is where the report lands: the configured file name under the root.
func (b *Bundler) OutputPath() string {
	if filepath.IsAbs(b.cfg.Report.OutputFile) {
		return b.cfg.Report.OutputFile
	}
	root := b.cfg.World.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, b.cfg.Report.OutputFile)
}

// Run performs one bundle. Read failures become placeholder entries; only a
// failure to write the output aborts the run.
func (b *Bundler) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	sel, err := b.selector.Select(ctx)
	if err != nil {
		return nil, fmt.Errorf("selection failed: %w", err)
	}

	entries := b.reader.LoadAll(sel.Candidates)

	out := b.OutputPath()
	sum, err := b.writer.WriteFile(out, entries)
	if err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintln(b.stdout, SuccessMessage(b.cfg.Report.Noun, len(entries), b.cfg.Report.OutputFile)); err != nil {
		return nil, fmt.Errorf("failed to print summary: %w", err)
	}

	logging.Get(logging.CategoryReport).StructuredLog(zapcore.InfoLevel, "bundle complete",
		"files", sum.Files,
		"large", sum.Large,
		"read_failures", sum.ReadFailures,
		"size", humanize.Bytes(uint64(sum.Bytes)),
		"elapsed", time.Since(start).String(),
	)

	return &Result{
		Entries:    entries,
		Selection:  sel,
		Summary:    sum,
		OutputPath: out,
	}, nil
}

// SuccessMessage is the single line printed after a completed run.
func SuccessMessage(noun string, count int, outputFile string) string {
	return fmt.Sprintf("✨ Success! %d %s files bundled into %s", count, noun, outputFile)
}
