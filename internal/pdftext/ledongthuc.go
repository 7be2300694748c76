// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !nopdf_ledongthuc

package pdftext

import (
	"os"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/pdiddy/schedextract/pkg/types"
)

func init() {
	Register(types.BackendLedongthuc, func() Loader { return LedongthucLoader{} })
}

// LedongthucLoader reads PDFs with github.com/ledongthuc/pdf.
type LedongthucLoader struct{}

// Name returns "ledongthuc".
func (LedongthucLoader) Name() string { return string(types.BackendLedongthuc) }

// Open opens the PDF at path.
func (LedongthucLoader) Open(path string) (Document, error) {
	f, size, err := openSized(path)
	if err != nil {
		return nil, err
	}
	r, err := lpdf.NewReader(f, size)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &ledongthucDoc{f: f, r: r}, nil
}

type ledongthucDoc struct {
	f *os.File
	r *lpdf.Reader
}

func (d *ledongthucDoc) NumPages() int { return d.r.NumPage() }

// PageText runs the page content through the library's interpreter and
// rebuilds lines from the text operators.
func (d *ledongthucDoc) PageText(n int) (string, error) {
	p := d.r.Page(n)
	if p.V.IsNull() {
		return "", nil
	}

	var (
		w     lineWriter
		enc   lpdf.TextEncoding
		fonts = make(map[string]lpdf.TextEncoding)
	)
	var arg func(v lpdf.Value) textArg
	arg = func(v lpdf.Value) textArg {
		switch v.Kind() {
		case lpdf.String:
			s := v.RawString()
			if enc != nil {
				s = enc.Decode(s)
			}
			return textArg{str: s}
		case lpdf.Integer, lpdf.Real:
			return textArg{num: v.Float64(), number: true}
		case lpdf.Name:
			return textArg{name: v.Name()}
		case lpdf.Array:
			items := make([]textArg, v.Len())
			for i := range items {
				items[i] = arg(v.Index(i))
			}
			return textArg{items: items}
		}
		return textArg{}
	}
	do := func(stk *lpdf.Stack, op string) {
		args := make([]textArg, stk.Len())
		for i := len(args) - 1; i >= 0; i-- {
			args[i] = arg(stk.Pop())
		}
		if op == "Tf" && len(args) == 2 {
			name := args[0].name
			if _, ok := fonts[name]; !ok {
				fonts[name] = p.Font(name).Encoder()
			}
			enc = fonts[name]
		}
		w.apply(op, args)
	}

	contents := p.V.Key("Contents")
	if contents.Kind() == lpdf.Array {
		for i := 0; i < contents.Len(); i++ {
			lpdf.Interpret(contents.Index(i), do)
		}
	} else {
		lpdf.Interpret(contents, do)
	}
	return w.String(), nil
}

func (d *ledongthucDoc) Close() error { return d.f.Close() }
