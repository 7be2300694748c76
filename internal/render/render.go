// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render presents extraction results as raw text, parsed schedule
// summaries, or a side-by-side comparison. Output is built in full before
// it is written anywhere.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/schedextract/internal/schedule"
	"github.com/pdiddy/schedextract/pkg/types"
)

// sampleSize is the number of courses listed per schedule in compare mode.
const sampleSize = 5

var (
	// ErrTooFewToCompare reports a comparison requested for fewer than two results.
	ErrTooFewToCompare = errors.New("need at least 2 PDFs to compare")

	// ErrUnsupportedFormat reports a format the selected mode cannot produce.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

var banner = strings.Repeat("=", 80)

// Render renders results in the given mode and format. Raw mode supports
// only the text format.
func Render(results []types.ExtractionResult, mode types.RenderMode, format types.OutputFormat) (string, error) {
	if format == "" {
		format = types.FormatText
	}
	switch mode {
	case types.ModeRaw, "":
		if format != types.FormatText {
			return "", fmt.Errorf("%w %q for raw mode", ErrUnsupportedFormat, format)
		}
		return Raw(results), nil
	case types.ModeParse:
		if format == types.FormatText {
			return Parsed(results), nil
		}
		return Encode(parseAll(results), format)
	case types.ModeCompare:
		if len(results) < 2 {
			return "", ErrTooFewToCompare
		}
		if format == types.FormatText {
			return Compare(results)
		}
		return Encode(parseAll(results), format)
	}
	return "", fmt.Errorf("unknown render mode %q", mode)
}

// Raw renders each result as a banner, its filename, and the full text.
func Raw(results []types.ExtractionResult) string {
	var lines []string
	for _, r := range results {
		lines = append(lines,
			"\n"+banner,
			"File: "+r.Filename,
			banner,
			r.Text,
		)
	}
	return strings.Join(lines, "\n")
}

// Parsed renders the parsed schedule fields of each result with the full
// numbered course list.
func Parsed(results []types.ExtractionResult) string {
	var lines []string
	for _, r := range results {
		info := schedule.Parse(r.Text)
		lines = append(lines,
			"\n"+banner,
			"File: "+r.Filename,
			banner,
			"Period: "+info.PeriodOrUnknown(),
			fmt.Sprintf("Courses: %d", len(info.Courses)),
		)
		if len(info.Courses) > 0 {
			lines = append(lines, "\nCourse List:")
			for i, c := range info.Courses {
				lines = append(lines, fmt.Sprintf("  %d. %s", i+1, c))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Compare renders a comparison of at least two results: period, course
// count, and the first few courses of each.
func Compare(results []types.ExtractionResult) (string, error) {
	if len(results) < 2 {
		return "", ErrTooFewToCompare
	}

	lines := []string{
		"\n" + banner,
		"SCHEDULE COMPARISON",
		banner + "\n",
	}
	for i, r := range results {
		info := schedule.Parse(r.Text)
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, r.Filename),
			"   Period: "+info.PeriodOrUnknown(),
			fmt.Sprintf("   Courses found: %d", len(info.Courses)),
		)
		if len(info.Courses) > 0 {
			lines = append(lines, "   Sample courses:")
			n := min(len(info.Courses), sampleSize)
			for _, c := range info.Courses[:n] {
				lines = append(lines, "     - "+c)
			}
			if rest := len(info.Courses) - n; rest > 0 {
				lines = append(lines, fmt.Sprintf("     ... and %d more", rest))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n"), nil
}

func parseAll(results []types.ExtractionResult) []types.ParsedSchedule {
	out := make([]types.ParsedSchedule, len(results))
	for i, r := range results {
		out[i] = types.ParsedSchedule{
			Filename:   r.Filename,
			SourcePath: r.SourcePath,
			Info:       schedule.Parse(r.Text),
		}
	}
	return out
}

// Encode serializes v as yaml or json.
func Encode(v any, format types.OutputFormat) (string, error) {
	var buf bytes.Buffer
	switch format {
	case types.FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return "", fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("encoding yaml: %w", err)
		}
	case types.FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return "", fmt.Errorf("encoding json: %w", err)
		}
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
	return buf.String(), nil
}
