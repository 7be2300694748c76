// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext turns PDF files into linear text through pluggable
// PDF libraries. Each library is wrapped by a Loader adapter that is
// compiled in unless excluded with a build tag (nopdf_ledongthuc,
// nopdf_dslipak, nopdf_rsc) and registered at init.
package pdftext

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/schedextract/pkg/types"
)

var (
	// ErrNotFound reports that the input path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrNoPages reports a document that parsed but has zero pages.
	ErrNoPages = errors.New("document has no pages")

	// ErrNoBackend reports that no PDF library was compiled into the binary.
	ErrNoBackend = errors.New("no PDF backend available")

	// ErrUnknownBackend reports a configured backend that is not compiled in.
	ErrUnknownBackend = errors.New("unknown PDF backend")
)

// Document is an open PDF. Pages are numbered from 1.
type Document interface {
	// NumPages returns the number of pages in the document.
	NumPages() int

	// PageText returns the linear text of page n.
	PageText(n int) (string, error)

	// Close releases the underlying file.
	Close() error
}

// Loader opens PDF files with one specific library.
type Loader interface {
	// Name returns the backend name (e.g. "ledongthuc").
	Name() string

	// Open opens the PDF at path.
	Open(path string) (Document, error)
}

// preference orders backends when none is configured.
var preference = []types.Backend{
	types.BackendLedongthuc,
	types.BackendDslipak,
	types.BackendRSC,
}

// Registry maps backend names to loader constructors.
type Registry struct {
	loaders map[types.Backend]func() Loader
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[types.Backend]func() Loader)}
}

// Register adds a loader constructor under name, replacing any previous one.
func (r *Registry) Register(name types.Backend, fn func() Loader) {
	r.loaders[name] = fn
}

// Names returns the registered backend names in preference order, followed
// by any others sorted alphabetically.
func (r *Registry) Names() []types.Backend {
	names := make([]types.Backend, 0, len(r.loaders))
	for _, b := range preference {
		if _, ok := r.loaders[b]; ok {
			names = append(names, b)
		}
	}
	var extra []types.Backend
	for b := range r.loaders {
		if !isPreferred(b) {
			extra = append(extra, b)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(names, extra...)
}

// Select returns the loader for name. An empty name selects the first
// registered backend in preference order.
func (r *Registry) Select(name types.Backend) (Loader, error) {
	names := r.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: rebuild without the nopdf_* build tags "+
			"(go build ./cmd/schedextract) to include ledongthuc, dslipak, or rsc", ErrNoBackend)
	}
	if name == "" {
		return r.loaders[names[0]](), nil
	}
	fn, ok := r.loaders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q: available backends are %s", ErrUnknownBackend, name, joinNames(names))
	}
	return fn(), nil
}

func isPreferred(b types.Backend) bool {
	for _, p := range preference {
		if p == b {
			return true
		}
	}
	return false
}

func joinNames(names []types.Backend) string {
	s := make([]string, len(names))
	for i, n := range names {
		s[i] = string(n)
	}
	return strings.Join(s, ", ")
}

var defaultRegistry = NewRegistry()

// Register adds a loader constructor to the default registry.
func Register(name types.Backend, fn func() Loader) {
	defaultRegistry.Register(name, fn)
}

// Select picks a loader from the default registry.
func Select(name types.Backend) (Loader, error) {
	return defaultRegistry.Select(name)
}

// Available lists the backends compiled into this binary.
func Available() []types.Backend {
	return defaultRegistry.Names()
}
