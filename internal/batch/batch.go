// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch resolves input PDFs and runs text extraction over them one
// file at a time. A failing file is skipped; it never aborts the batch.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/pdiddy/schedextract/internal/logging"
	"github.com/pdiddy/schedextract/pkg/types"
)

var (
	// ErrNoInputs reports that no files were resolved.
	ErrNoInputs = errors.New("no PDF files found")

	// ErrEmptyBatch reports that every resolved file failed extraction.
	ErrEmptyBatch = errors.New("no PDFs could be processed")
)

// TextExtractor turns one PDF path into an extraction result. The
// pdftext.Extractor implements it.
type TextExtractor interface {
	Extract(path string) (types.ExtractionResult, error)
}

// Result holds the outcome of a batch run.
type Result struct {
	Found   int
	Failed  int
	Results []types.ExtractionResult
}

// Processed returns the number of files extracted successfully.
func (r Result) Processed() int {
	return len(r.Results)
}

// HasFailures reports whether any file failed extraction.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Err returns ErrNoInputs when nothing was found, ErrEmptyBatch when nothing
// succeeded, and nil otherwise.
func (r Result) Err() error {
	switch {
	case r.Found == 0:
		return ErrNoInputs
	case r.Processed() == 0:
		return ErrEmptyBatch
	}
	return nil
}

// Resolve returns the files to process. When dir is set it wins over paths:
// regular files in dir matching pattern (default "*.pdf") are returned in
// lexicographic order. Otherwise paths are returned as given.
func Resolve(in types.InputConfig) ([]string, error) {
	if in.Directory == "" {
		return in.Paths, nil
	}

	fi, err := os.Stat(in.Directory)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", in.Directory, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", in.Directory)
	}

	pattern := in.Pattern
	if pattern == "" {
		pattern = types.DefaultPattern
	}

	matches, err := filepath.Glob(filepath.Join(in.Directory, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil || fi.IsDir() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}

// Runner extracts a list of files in order.
type Runner struct {
	ex  TextExtractor
	log *zap.Logger
}

// NewRunner returns a Runner using ex. A nil logger disables diagnostics.
func NewRunner(ex TextExtractor, log *zap.Logger) *Runner {
	return &Runner{ex: ex, log: logging.OrNop(log)}
}

// Run extracts each path, collecting successes and counting failures. The
// extractor reports individual failures; Run logs the totals.
func (r *Runner) Run(paths []string) Result {
	res := Result{Found: len(paths)}
	if len(paths) == 0 {
		return res
	}
	r.log.Info(fmt.Sprintf("Found %d PDF file(s)", len(paths)))

	for _, p := range paths {
		er, err := r.ex.Extract(p)
		if err != nil {
			res.Failed++
			continue
		}
		res.Results = append(res.Results, er)
	}

	r.log.Debug("batch summary",
		zap.Int("found", res.Found),
		zap.Int("processed", res.Processed()),
		zap.Int("failed", res.Failed))
	return res
}

// RunInputs resolves in and runs the batch. A resolution failure is
// returned as is; an empty result is reported through Result.Err.
func (r *Runner) RunInputs(in types.InputConfig) (Result, error) {
	paths, err := Resolve(in)
	if err != nil {
		return Result{}, err
	}
	if len(paths) == 0 && in.Directory != "" {
		r.log.Warn(fmt.Sprintf("No PDF files found in %s", in.Directory))
	}
	res := r.Run(paths)
	return res, res.Err()
}
