// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect reports the structure of PDF files (page count, version,
// Info dictionary) using pdfcpu. It does not extract text.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"

	"github.com/pdiddy/schedextract/internal/logging"
	"github.com/pdiddy/schedextract/pkg/types"
)

func init() {
	// Keep pdfcpu from creating or reading its user configuration
	// directory; it exits the process when that fails.
	model.ConfigPath = "disable"
}

// ErrNotFound reports that the input path does not exist.
var ErrNotFound = errors.New("file not found")

// Inspect reads and validates the PDF at path and returns its description.
func Inspect(path string) (info types.DocumentInfo, err error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.DocumentInfo{}, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return types.DocumentInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}

	defer func() {
		if r := recover(); r != nil {
			info = types.DocumentInfo{}
			err = fmt.Errorf("inspecting %s: %v", path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return types.DocumentInfo{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ctx, err := api.ReadContext(f, model.NewDefaultConfiguration())
	if err != nil {
		return types.DocumentInfo{}, fmt.Errorf("reading %s: %w", path, err)
	}
	// Validation fills the Info dictionary fields of the context.
	if err := api.ValidateContext(ctx); err != nil {
		return types.DocumentInfo{}, fmt.Errorf("validating %s: %w", path, err)
	}

	info = types.DocumentInfo{
		Path:      path,
		PageCount: ctx.PageCount,
		Title:     ctx.Title,
		Author:    ctx.Author,
		Producer:  ctx.Producer,
	}
	if ctx.HeaderVersion != nil {
		info.Version = ctx.HeaderVersion.String()
	}
	return info, nil
}

// InspectAll inspects each path in order, logging and skipping failures.
func InspectAll(paths []string, log *zap.Logger) []types.DocumentInfo {
	log = logging.OrNop(log)
	var out []types.DocumentInfo
	for _, p := range paths {
		info, err := Inspect(p)
		if err != nil {
			log.Error("inspection failed", zap.String("path", p), zap.Error(err))
			continue
		}
		out = append(out, info)
	}
	return out
}

// Write prints infos as an aligned text table.
func Write(w io.Writer, infos []types.DocumentInfo) {
	fmt.Fprintf(w, "%-40s  %5s  %-7s  %s\n", "File", "Pages", "Version", "Title")
	for _, i := range infos {
		fmt.Fprintf(w, "%-40s  %5d  %-7s  %s\n", i.Path, i.PageCount, i.Version, i.Title)
	}
}
