// Package font provides outline sources backed by real font files.
//
// A Face parses TTF/OTF data and implements textmesh.OutlineSource,
// emitting glyph outlines in em units scaled by the face size. Font
// parsing is pluggable: the default backend uses
// golang.org/x/image/font/sfnt, and a backend built on
// github.com/go-text/typesetting can be selected with WithParser("gotext").
package font

import (
	"fmt"

	"github.com/gogpu/textmesh"
)

// Parser is an interface for font parsing backends. This abstraction
// allows swapping the font parsing library.
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file, abstracting the underlying
// font representation. Coordinates handed out are Y-up and scaled so that
// one em equals the given size.
type ParsedFont interface {
	// Glyph returns the outline and advance for a character at the given
	// em size, or ok=false if the font does not cover it.
	Glyph(r rune, size float64) (textmesh.Glyph, bool)

	// Metrics returns the font-wide vertical metrics at the given em size.
	Metrics(size float64) textmesh.Metrics

	// UnitsPerEm returns the font's design units per em.
	UnitsPerEm() int
}

// parserRegistry holds registered font parsers.
var parserRegistry = map[string]Parser{
	"ximage": &ximageParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser under the given name.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser Parser) {
	parserRegistry[name] = parser
}

// Option configures a Face during parsing.
type Option func(*faceOptions)

type faceOptions struct {
	size   float64
	parser string
}

// WithSize sets the em size of the face: glyph geometry is scaled so one
// em spans this many world units. The default is 1.
func WithSize(size float64) Option {
	return func(o *faceOptions) {
		o.size = size
	}
}

// WithParser selects a parsing backend by registered name.
// Unknown names fall back to the default backend.
func WithParser(name string) Option {
	return func(o *faceOptions) {
		o.parser = name
	}
}

// Face is a parsed font at a fixed em size. It implements
// textmesh.OutlineSource and is safe for concurrent use.
type Face struct {
	parsed ParsedFont
	size   float64
}

// Parse parses TTF or OTF font data and returns a Face ready to feed
// textmesh builds.
func Parse(data []byte, opts ...Option) (*Face, error) {
	options := faceOptions{size: 1, parser: defaultParserName}
	for _, opt := range opts {
		opt(&options)
	}

	p, ok := parserRegistry[options.parser]
	if !ok {
		p = parserRegistry[defaultParserName]
	}
	parsed, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse: %w", err)
	}
	return &Face{parsed: parsed, size: options.size}, nil
}

// Glyph implements textmesh.OutlineSource.
func (f *Face) Glyph(r rune) (textmesh.Glyph, bool) {
	return f.parsed.Glyph(r, f.size)
}

// Metrics implements textmesh.OutlineSource.
func (f *Face) Metrics() textmesh.Metrics {
	return f.parsed.Metrics(f.size)
}

// Size returns the face's em size.
func (f *Face) Size() float64 {
	return f.size
}
