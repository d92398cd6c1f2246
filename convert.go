// Package xover converts XML-like markup documents into compact structural
// overviews: a render of the document tree with repeated sibling shapes
// collapsed to their richest representative.
package xover

import (
	"bytes"
	"strings"

	"github.com/xover-format/xover/debug"
	"github.com/xover-format/xover/encode"
	"github.com/xover-format/xover/parse"
)

type convertOpts struct {
	encOpts []encode.EncodeOption
}

type ConvertOption func(*convertOpts)

// Verbose keeps source comments in the overview and annotates collapsed
// elements with how many similar siblings were omitted.
func Verbose(v bool) ConvertOption {
	return func(c *convertOpts) {
		c.encOpts = append(c.encOpts, encode.EncodeComments(v))
	}
}

// Depth limits the rendered tree depth; zero means unlimited.
func Depth(n int) ConvertOption {
	return func(c *convertOpts) {
		c.encOpts = append(c.encOpts, encode.MaxDepth(n))
	}
}

// Colors renders the overview with the given color table.
func Colors(cs *encode.Colors) ConvertOption {
	return func(c *convertOpts) {
		c.encOpts = append(c.encOpts, encode.EncodeColors(cs))
	}
}

// Convert runs the whole pipeline on one document: scan, build, minimize,
// render, strip the synthetic root wrapper. Any stage failure is returned
// as is; there is no partial result.
func Convert(src []byte, opts ...ConvertOption) (string, error) {
	co := &convertOpts{}
	for _, opt := range opts {
		opt(co)
	}
	g, err := parse.Parse(src)
	if err != nil {
		return "", err
	}
	if debug.Graph() {
		debug.Logf("graph before minimize:\n%s", g.Dump())
	}
	g.Minimize()
	if debug.Graph() {
		debug.Logf("graph after minimize:\n%s", g.Dump())
	}
	var buf bytes.Buffer
	if err := encode.Encode(g, &buf, co.encOpts...); err != nil {
		return "", err
	}
	return StripRoot(buf.String()), nil
}

// StripRoot removes the wrapper tags of the synthetic root from a rendered
// overview: the leading "<>" and the trailing "</>". The root element is
// generated by the builder and was never in the document.
func StripRoot(s string) string {
	s = strings.TrimPrefix(s, "<>")
	s = strings.TrimSuffix(s, "</>")
	return s
}
