// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sample writes schedule-shaped PDFs. The output follows the layout
// the schedule parser expects: a heading, a "Periodo" line, and one row per
// course with its time slot in a second column.
package sample

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// columnWidth is the width in mm of every column but the last.
const columnWidth = 70.0

// DefaultTitle is the heading written at the top of the first page.
const DefaultTitle = "HORARIO DE CLASES"

// Schedule describes the content of a sample PDF.
type Schedule struct {
	// Title is the first line of page one. Empty omits it.
	Title string

	// Period is written as "Periodo <period>". Empty omits the line.
	Period string

	// Courses are written one per row on page one.
	Courses []string

	// Slots[i] is printed in a second column beside Courses[i].
	Slots []string

	// Extra holds the lines of additional pages; a nil entry is a blank page.
	Extra [][]string

	// Author is stored in the document Info dictionary.
	Author string
}

// Demo returns the schedule written by the sample command.
func Demo() Schedule {
	return Schedule{
		Title:  DefaultTitle,
		Period: "2024-1",
		Courses: []string{
			"CALCULO DIFERENCIAL",
			"ALGEBRA LINEAL",
			"PROGRAMACION II",
			"FISICA MECANICA",
			"ESTRUCTURAS DE DATOS",
			"INGLES III",
		},
		Slots: []string{
			"07:00-09:00",
			"09:00-11:00",
			"11:00-13:00",
			"14:00-16:00",
			"16:00-18:00",
			"18:00-20:00",
		},
		Author: "schedextract",
	}
}

// Lines returns the lines of page one. Columns within a line are separated
// by a tab.
func (s Schedule) Lines() []string {
	var lines []string
	if s.Title != "" {
		lines = append(lines, s.Title)
	}
	if s.Period != "" {
		lines = append(lines, "Periodo "+s.Period)
	}
	for i, c := range s.Courses {
		if i < len(s.Slots) && s.Slots[i] != "" {
			c += "\t" + s.Slots[i]
		}
		lines = append(lines, c)
	}
	return lines
}

// Write renders s to a PDF at path, creating parent directories.
func Write(path string, s Schedule) error {
	pages := append([][]string{s.Lines()}, s.Extra...)
	return WritePages(path, pages, s.Author)
}

// WritePages renders one PDF page per entry in pages, one line per string.
// Tab-separated columns are written as separate cells on the same row.
func WritePages(path string, pages [][]string, author string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(DefaultTitle, false)
	if author != "" {
		pdf.SetAuthor(author, false)
	}
	pdf.SetFont("Helvetica", "", 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, lines := range pages {
		pdf.AddPage()
		for _, line := range lines {
			cells := strings.Split(line, "\t")
			for i, c := range cells {
				w, ln := columnWidth, 0
				if i == len(cells)-1 {
					w, ln = 0, 1
				}
				pdf.CellFormat(w, 8, tr(c), "", ln, "L", false, 0, "")
			}
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF %s: %w", path, err)
	}
	return nil
}
