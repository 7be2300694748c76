// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !nopdf_rsc

package pdftext

import (
	"os"

	rpdf "rsc.io/pdf"

	"github.com/pdiddy/schedextract/pkg/types"
)

func init() {
	Register(types.BackendRSC, func() Loader { return RSCLoader{} })
}

// RSCLoader reads PDFs with rsc.io/pdf.
type RSCLoader struct{}

// Name returns "rsc".
func (RSCLoader) Name() string { return string(types.BackendRSC) }

// Open opens the PDF at path.
func (RSCLoader) Open(path string) (Document, error) {
	f, size, err := openSized(path)
	if err != nil {
		return nil, err
	}
	r, err := rpdf.NewReader(f, size)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &rscDoc{f: f, r: r}, nil
}

type rscDoc struct {
	f *os.File
	r *rpdf.Reader
}

func (d *rscDoc) NumPages() int { return d.r.NumPage() }

// PageText runs the page content through the library's interpreter and
// rebuilds lines from the text operators.
func (d *rscDoc) PageText(n int) (string, error) {
	p := d.r.Page(n)
	if p.V.IsNull() {
		return "", nil
	}

	var (
		w     lineWriter
		enc   rpdf.TextEncoding
		fonts = make(map[string]rpdf.TextEncoding)
	)
	var arg func(v rpdf.Value) textArg
	arg = func(v rpdf.Value) textArg {
		switch v.Kind() {
		case rpdf.String:
			s := v.RawString()
			if enc != nil {
				s = enc.Decode(s)
			}
			return textArg{str: s}
		case rpdf.Integer, rpdf.Real:
			return textArg{num: v.Float64(), number: true}
		case rpdf.Name:
			return textArg{name: v.Name()}
		case rpdf.Array:
			items := make([]textArg, v.Len())
			for i := range items {
				items[i] = arg(v.Index(i))
			}
			return textArg{items: items}
		}
		return textArg{}
	}
	do := func(stk *rpdf.Stack, op string) {
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
	if contents.Kind() == rpdf.Array {
		for i := 0; i < contents.Len(); i++ {
			rpdf.Interpret(contents.Index(i), do)
		}
	} else {
		rpdf.Interpret(contents, do)
	}
	return w.String(), nil
}

func (d *rscDoc) Close() error { return d.f.Close() }
