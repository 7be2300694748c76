// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// UnknownPeriod is shown in place of a period the parser could not find.
const UnknownPeriod = "Unknown"

// ExtractionResult holds the linear text extracted from one PDF file.
type ExtractionResult struct {
	// Filename is the base name of the source file (e.g. "UScheduleSophie.pdf").
	Filename string `json:"filename" yaml:"filename"`

	// SourcePath is the path the file was read from, as given or resolved.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// Text is the concatenated text of every non-empty page, each followed
	// by a newline. It may be empty.
	Text string `json:"text" yaml:"text"`
}

// ScheduleInfo holds the structured fields recognized in a schedule's text.
// Title and Period are nil when the text does not contain them.
type ScheduleInfo struct {
	// Title is the fixed label "Horario de Clases" when the heading is present.
	Title *string `json:"title" yaml:"title"`

	// Period is the academic period token (e.g. "2024-1").
	Period *string `json:"period" yaml:"period"`

	// Courses lists course-name candidates in first-seen order, without duplicates.
	Courses []string `json:"courses" yaml:"courses"`
}

// PeriodOrUnknown returns the period, or UnknownPeriod when it is unset.
func (s ScheduleInfo) PeriodOrUnknown() string {
	if s.Period == nil {
		return UnknownPeriod
	}
	return *s.Period
}

// TitleOrEmpty returns the title, or "" when it is unset.
func (s ScheduleInfo) TitleOrEmpty() string {
	if s.Title == nil {
		return ""
	}
	return *s.Title
}

// ParsedSchedule pairs an extraction result with its parsed fields. It is the
// record emitted by the structured (yaml, json) output formats.
type ParsedSchedule struct {
	Filename   string       `json:"filename" yaml:"filename"`
	SourcePath string       `json:"source_path" yaml:"source_path"`
	Info       ScheduleInfo `json:"info" yaml:"info"`
}

// DocumentInfo describes a PDF file's structure as reported by the inspector.
type DocumentInfo struct {
	// Path is the file that was inspected.
	Path string `json:"path" yaml:"path"`

	// PageCount is the number of pages in the document.
	PageCount int `json:"page_count" yaml:"page_count"`

	// Version is the PDF header version (e.g. "1.4").
	Version string `json:"version" yaml:"version"`

	// Title, Author, and Producer come from the document Info dictionary
	// and are empty when absent.
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
	Producer string `json:"producer,omitempty" yaml:"producer,omitempty"`
}

// ArchivedSchedule is a parsed schedule as stored in the archive database.
type ArchivedSchedule struct {
	ID         int64     `json:"id" yaml:"id"`
	Filename   string    `json:"filename" yaml:"filename"`
	SourcePath string    `json:"source_path" yaml:"source_path"`
	Title      string    `json:"title,omitempty" yaml:"title,omitempty"`
	Period     string    `json:"period,omitempty" yaml:"period,omitempty"`
	Courses    []string  `json:"courses" yaml:"courses"`
	TextHash   string    `json:"text_hash" yaml:"text_hash"`
	StoredAt   time.Time `json:"stored_at" yaml:"stored_at"`
}
