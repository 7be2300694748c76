// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"math"
	"strings"
)

// textArg is a content stream operand converted out of a PDF library's
// value type. Strings are already decoded with the font encoding that was
// active when the operator ran.
type textArg struct {
	str    string
	num    float64
	number bool
	name   string
	items  []textArg
}

const (
	// kernSpace is the TJ adjustment, in thousandths of a text space
	// unit, beyond which a gap reads as a word break.
	kernSpace = 200

	// lineTolerance is the baseline change that starts a new line.
	lineTolerance = 0.5
)

// lineWriter rebuilds lines of text from the text-showing and
// text-positioning operators of a page content stream. Each positioned
// run of text on the same baseline is joined with a single space; a change
// of baseline (Td, TD, Tm) or a next-line operator (T*, ', ") starts a new
// line. Scaling in the text matrix is ignored.
type lineWriter struct {
	b       strings.Builder
	x, y    float64
	leading float64
	lastY   float64

	started      bool
	moved        bool
	breakNext    bool
	pendingSpace bool
}

// apply executes one content stream operator. Operators that do not affect
// text placement are ignored.
func (w *lineWriter) apply(op string, args []textArg) {
	switch op {
	case "BT":
		w.x, w.y = 0, 0
		w.moved = true
	case "Td", "TD":
		if len(args) != 2 {
			return
		}
		w.x += args[0].num
		w.y += args[1].num
		if op == "TD" {
			w.leading = -args[1].num
		}
		w.moved = true
	case "Tm":
		if len(args) != 6 {
			return
		}
		w.x, w.y = args[4].num, args[5].num
		w.moved = true
	case "TL":
		if len(args) == 1 {
			w.leading = args[0].num
		}
	case "T*":
		w.nextLine()
	case "'":
		w.nextLine()
		if len(args) == 1 {
			w.show(args[0].str)
		}
	case "\"":
		w.nextLine()
		if len(args) == 3 {
			w.show(args[2].str)
		}
	case "Tj":
		if len(args) == 1 {
			w.show(args[0].str)
		}
	case "TJ":
		if len(args) != 1 {
			return
		}
		for _, it := range args[0].items {
			if it.number {
				if -it.num > kernSpace {
					w.pendingSpace = true
				}
				continue
			}
			w.show(it.str)
		}
	}
}

func (w *lineWriter) nextLine() {
	w.y -= w.leading
	w.breakNext = true
}

func (w *lineWriter) show(s string) {
	if s == "" {
		return
	}
	if w.started {
		switch {
		case w.breakNext || math.Abs(w.y-w.lastY) > lineTolerance:
			w.b.WriteByte('\n')
		case w.moved || w.pendingSpace:
			if !strings.HasSuffix(w.b.String(), " ") && !strings.HasPrefix(s, " ") {
				w.b.WriteByte(' ')
			}
		}
	}
	w.b.WriteString(s)
	w.started = true
	w.lastY = w.y
	w.moved = false
	w.breakNext = false
	w.pendingSpace = false
}

// String returns the lines written so far with trailing blanks removed.
func (w *lineWriter) String() string {
	lines := strings.Split(w.b.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}
