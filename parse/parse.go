// Package parse builds markup token streams into ir graphs.
package parse

import (
	"fmt"

	"github.com/xover-format/xover/debug"
	"github.com/xover-format/xover/ir"
	"github.com/xover-format/xover/token"
)

// Parse scans src and builds the document graph.
func Parse(src []byte) (*ir.Graph, error) {
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("%3d %s\n", i, toks[i].Info())
		}
	}
	return Build(toks)
}

// Build folds a token sequence into a graph in one left-to-right pass. A
// single cursor tracks the innermost open element; ascent follows the
// parent link rather than an explicit stack.
func Build(toks []token.Token) (*ir.Graph, error) {
	if len(toks) == 0 {
		return nil, ErrEmptyInput
	}
	g := ir.New()
	i := 0
scan:
	for i < len(toks) {
		t := &toks[i]
		switch t.Type {
		case token.TTagOpenStart:
			j, ok := seek(toks, i+1, token.TTagClosing, token.TTagSelfClosing)
			if !ok {
				return nil, fmt.Errorf("%w: <%s at %s", ErrNoClosingTag, t.Text, t.Pos)
			}
			var keys []string
			for k := i + 1; k < j; k++ {
				if toks[k].Type == token.TKey {
					keys = append(keys, toks[k].Text)
				}
			}
			g.OpenNode(t.Text, keys)
			// the boundary token decides self-closing vs body, so resume
			// on it rather than past it
			i = j
		case token.TTagCloseStart:
			j, ok := seek(toks, i+1, token.TTagClosing)
			if !ok {
				return nil, fmt.Errorf("%w: </%s at %s", ErrNoClosingTag, t.Text, t.Pos)
			}
			if t.Text != "" && t.Text != g.Current().Name {
				return nil, fmt.Errorf("%w: </%s> closes <%s> at %s",
					ErrMismatchedTag, t.Text, g.Current().Name, t.Pos)
			}
			g.CloseCurrent()
			i = j + 1
		case token.TTagClosing:
			// body of the element just opened: everything up to the next
			// tag start is leaf content
			j, ok := seekTagStart(toks, i+1)
			if !ok {
				// no tags ahead: end of document
				break scan
			}
			for k := i + 1; k < j; k++ {
				switch toks[k].Type {
				case token.TText, token.TWhitespace, token.TNewline, token.TComment:
					g.AddLeaf(toks[k])
				}
			}
			i = j
		case token.TTagSelfClosing:
			g.CloseCurrent()
			i++
		default:
			g.AddLeaf(*t)
			i++
		}
	}
	if !g.AtRoot() {
		return nil, fmt.Errorf("%w: <%s>", ErrUnclosedElement, g.Current().Name)
	}
	return g, nil
}

func seek(toks []token.Token, from int, types ...token.Type) (int, bool) {
	for i := from; i < len(toks); i++ {
		for _, tt := range types {
			if toks[i].Type == tt {
				return i, true
			}
		}
	}
	return 0, false
}

func seekTagStart(toks []token.Token, from int) (int, bool) {
	for i := from; i < len(toks); i++ {
		switch toks[i].Type {
		case token.TTagOpenStart, token.TTagCloseStart:
			return i, true
		}
	}
	return 0, false
}
