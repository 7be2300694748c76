// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !nopdf_dslipak

package pdftext

import (
	"os"

	dpdf "github.com/dslipak/pdf"

	"github.com/pdiddy/schedextract/pkg/types"
)

func init() {
	Register(types.BackendDslipak, func() Loader { return DslipakLoader{} })
}

// DslipakLoader reads PDFs with github.com/dslipak/pdf.
type DslipakLoader struct{}

// Name returns "dslipak".
func (DslipakLoader) Name() string { return string(types.BackendDslipak) }

// Open opens the PDF at path.
func (DslipakLoader) Open(path string) (Document, error) {
	f, size, err := openSized(path)
	if err != nil {
		return nil, err
	}
	r, err := dpdf.NewReader(f, size)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &dslipakDoc{f: f, r: r}, nil
}

type dslipakDoc struct {
	f *os.File
	r *dpdf.Reader
}

func (d *dslipakDoc) NumPages() int { return d.r.NumPage() }

// PageText runs the page content through the library's interpreter and
// rebuilds lines from the text operators.
func (d *dslipakDoc) PageText(n int) (string, error) {
	p := d.r.Page(n)
	if p.V.IsNull() {
		return "", nil
	}

	var (
		w     lineWriter
		enc   dpdf.TextEncoding
		fonts = make(map[string]dpdf.TextEncoding)
	)
	var arg func(v dpdf.Value) textArg
	arg = func(v dpdf.Value) textArg {
		switch v.Kind() {
		case dpdf.String:
			s := v.RawString()
			if enc != nil {
				s = enc.Decode(s)
			}
			return textArg{str: s}
		case dpdf.Integer, dpdf.Real:
			return textArg{num: v.Float64(), number: true}
		case dpdf.Name:
			return textArg{name: v.Name()}
		case dpdf.Array:
			items := make([]textArg, v.Len())
			for i := range items {
				items[i] = arg(v.Index(i))
			}
			return textArg{items: items}
		}
		return textArg{}
	}
	do := func(stk *dpdf.Stack, op string) {
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
	if contents.Kind() == dpdf.Array {
		for i := 0; i < contents.Len(); i++ {
			dpdf.Interpret(contents.Index(i), do)
		}
	} else {
		dpdf.Interpret(contents, do)
	}
	return w.String(), nil
}

func (d *dslipakDoc) Close() error { return d.f.Close() }
