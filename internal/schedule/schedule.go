// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schedule recognizes the title, academic period, and course-name
// candidates in the linear text of a class schedule. The course matcher is
// a heuristic tuned to one template: any run of uppercase words may match.
package schedule

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/schedextract/pkg/types"
)

// Title is the label reported when the schedule heading is found.
const Title = "Horario de Clases"

// minCourseLen is the rune length a candidate must exceed to be kept.
const minCourseLen = 5

// space is the Unicode whitespace class; RE2's \s is ASCII only.
const space = `\s\v\p{Z}\x{85}\x{1C}-\x{1F}`

var (
	titleRe  = regexp.MustCompile(`(?i)HORARIO[` + space + `]+DE[` + space + `]+CLASES`)
	periodRe = regexp.MustCompile(`Periodo[` + space + `]+(\p{Nd}{4}-\p{Nd})`)
	courseRe = regexp.MustCompile(`[A-ZÁÉÍÓÚÑ][A-ZÁÉÍÓÚÑ` + space + `]{2,}(?:I{1,3})?`)
)

// excluded words mark heading text that the course matcher also catches.
var excluded = []string{"HORARIO", "PERIODO"}

// Parse extracts a ScheduleInfo from text. It never fails: text without any
// recognizable field yields nil Title and Period and no courses.
func Parse(text string) types.ScheduleInfo {
	info := types.ScheduleInfo{Courses: []string{}}

	if titleRe.MatchString(text) {
		title := Title
		info.Title = &title
	}

	if m := periodRe.FindStringSubmatch(text); m != nil {
		period := m[1]
		info.Period = &period
	}

	seen := make(map[string]bool)
	for _, c := range courseRe.FindAllString(text, -1) {
		c = strings.TrimFunc(c, isSpace)
		if utf8.RuneCountInString(c) <= minCourseLen || seen[c] || isExcluded(c) {
			continue
		}
		seen[c] = true
		info.Courses = append(info.Courses, c)
	}

	return info
}

// isSpace matches the runes of the space class.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r) || (r >= 0x1C && r <= 0x1F)
}

func isExcluded(s string) bool {
	for _, w := range excluded {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
