// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pdiddy/schedextract/internal/logging"
	"github.com/pdiddy/schedextract/pkg/types"
)

// Extractor reads PDFs through a Loader and reports progress on a logger.
type Extractor struct {
	loader Loader
	log    *zap.Logger
}

// NewExtractor returns an Extractor backed by loader. A nil logger disables
// diagnostics.
func NewExtractor(loader Loader, log *zap.Logger) *Extractor {
	return &Extractor{loader: loader, log: logging.OrNop(log)}
}

// Backend returns the name of the underlying loader.
func (e *Extractor) Backend() string {
	return e.loader.Name()
}

// Extract reads every page of the PDF at path and concatenates the text of
// each non-empty page followed by a newline. Failures are logged and
// returned: ErrNotFound for a missing file, ErrNoPages for an empty
// document, or the wrapped library error.
func (e *Extractor) Extract(path string) (types.ExtractionResult, error) {
	name := filepath.Base(path)
	text, err := e.extract(path, name)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			e.log.Error("file not found", zap.String("path", path))
		case errors.Is(err, ErrNoPages):
			e.log.Warn("document has no pages", zap.String("file", name))
		default:
			e.log.Error("extraction failed", zap.String("file", name), zap.Error(err))
		}
		return types.ExtractionResult{}, err
	}
	return types.ExtractionResult{
		Filename:   name,
		SourcePath: path,
		Text:       text,
	}, nil
}

func (e *Extractor) extract(path, name string) (text string, err error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	// The PDF libraries signal malformed input by panicking.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("reading %s with %s: %v", name, e.loader.Name(), r)
		}
	}()

	e.log.Debug("reading", zap.String("file", name), zap.String("backend", e.loader.Name()))
	doc, err := e.loader.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", name, err)
	}
	defer doc.Close()

	n := doc.NumPages()
	if n == 0 {
		return "", fmt.Errorf("%s: %w", name, ErrNoPages)
	}

	var b strings.Builder
	for i := 1; i <= n; i++ {
		e.log.Debug("extracting page", zap.String("file", name), zap.Int("page", i), zap.Int("pages", n))
		pageText, err := doc.PageText(i)
		if err != nil {
			return "", fmt.Errorf("extracting page %d of %s: %w", i, name, err)
		}
		if pageText == "" {
			continue
		}
		b.WriteString(pageText)
		b.WriteByte('\n')
	}

	e.log.Debug("extracted", zap.String("file", name), zap.Int("chars", utf8.RuneCountInString(b.String())))
	return b.String(), nil
}
