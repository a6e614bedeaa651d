// Package report renders payload entries into the review document.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"frontbundle/internal/config"
	"frontbundle/internal/logging"
	"frontbundle/internal/types"

	"go.uber.org/multierr"
)

// ErrOutputUnavailable is returned when the output file cannot be created.
var ErrOutputUnavailable = errors.New("output file unavailable")

// Writer renders the bundle document.
type Writer struct {
	cfg  config.ReportConfig
	rule string
}

func NewWriter(cfg config.ReportConfig) *Writer {
	return &Writer{cfg: cfg, rule: strings.Repeat("=", cfg.RuleWidth)}
}

// Summary describes a rendered document.
type Summary struct {
	Files        int
	Large        int
	ReadFailures int
	Bytes        int64
}

// countingWriter tracks bytes and keeps the first write error.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) printf(format string, args ...interface{}) {
	if c.err != nil {
		return
	}
	n, err := fmt.Fprintf(c.w, format, args...)
	c.n += int64(n)
	c.err = err
}

// Render writes the banner and one batch per entry, numbered from 1.
func (w *Writer) Render(out io.Writer, entries []types.PayloadEntry) (Summary, error) {
	cw := &countingWriter{w: out}
	var sum Summary

	cw.printf("%s\n%s\n\n", w.cfg.Banner, w.rule)
	for i, e := range entries {
		lines := e.LineCount()
		status := Classify(lines, w.cfg.LargeThreshold)
		if status == StatusLarge {
			sum.Large++
		}
		if e.ReadFailed {
			sum.ReadFailures++
		}

		cw.printf("--- BATCH %d | %s ---\n", i+1, e.Path)
		cw.printf("STATUS: %s (%d lines)\n", status.Label(), lines)
		cw.printf("### FILE: %s\n", e.Path)
		cw.printf("```%s\n%s\n```\n", w.cfg.FenceLanguage, e.Content)
		cw.printf("\n%s\n\n", w.rule)
		if cw.err != nil {
			break
		}
		sum.Files++
		logging.ReportDebug("batch %d: %s %s (%d lines)", i+1, e.Path, status, lines)
	}

	sum.Bytes = cw.n
	if cw.err != nil {
		return sum, fmt.Errorf("failed to write report: %w", cw.err)
	}
	return sum, nil
}

// WriteFile creates (or truncates) path and renders entries into it.
// Any failure here is fatal to the run.
func (w *Writer) WriteFile(path string, entries []types.PayloadEntry) (sum Summary, err error) {
	f, err := os.Create(path)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrOutputUnavailable, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	buf := bufio.NewWriter(f)
	sum, err = w.Render(buf, entries)
	if err != nil {
		return sum, err
	}
	if err := buf.Flush(); err != nil {
		return sum, fmt.Errorf("failed to flush report: %w", err)
	}
	logging.Report("wrote %s (%d batches)", path, sum.Files)
	return sum, nil
}
