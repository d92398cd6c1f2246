// Package encode renders overview graphs to text.
package encode

import (
	"fmt"
	"io"

	"github.com/xover-format/xover/ir"
	"github.com/xover-format/xover/token"
)

type EncState struct {
	depth    int
	maxDepth int
	comments bool
	last     byte

	Color func(ColorAttr, string) string
}

// Encode writes the overview of g to w, depth first from the synthetic
// root. The root renders like any other element; stripping its wrapper
// tags is the caller's concern.
func Encode(g *ir.Graph, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encodeNode(g, g.Root(), w, es)
}

func encodeNode(g *ir.Graph, n *ir.Node, w io.Writer, es *EncState) error {
	if err := es.write(w, TagColor, "<"+n.Name); err != nil {
		return err
	}
	for _, k := range n.Keys {
		if err := es.write(w, TagColor, " "); err != nil {
			return err
		}
		if err := es.write(w, KeyColor, k); err != nil {
			return err
		}
		if err := es.write(w, TagColor, `=""`); err != nil {
			return err
		}
	}
	if len(n.Children) == 0 || es.pruned() {
		if err := es.write(w, TagColor, "/>"); err != nil {
			return err
		}
		return es.annotate(w, n)
	}
	if err := es.write(w, TagColor, ">"); err != nil {
		return err
	}
	es.depth++
	for _, c := range n.Children {
		if c.IsNode() {
			if err := encodeNode(g, g.Node(c.ID), w, es); err != nil {
				return err
			}
			continue
		}
		if err := encodeLeaf(c.Tok, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.write(w, TagColor, "</"+n.Name+">"); err != nil {
		return err
	}
	return es.annotate(w, n)
}

func encodeLeaf(t *token.Token, w io.Writer, es *EncState) error {
	switch t.Type {
	case token.TText:
		return es.write(w, TextColor, t.Text)
	case token.TWhitespace:
		return es.write(w, TextColor, " ")
	case token.TNewline:
		// consecutive newlines collapse to one
		if es.last == '\n' {
			return nil
		}
		return es.write(w, TextColor, "\n")
	case token.TComment:
		if !es.comments {
			return nil
		}
		return es.write(w, CommentColor, "<!--"+t.Text+"-->")
	case token.TKey:
		return es.write(w, TextColor, t.Text+"=")
	default:
		return es.write(w, TextColor, t.Text)
	}
}

// pruned reports whether the depth limit forbids descending into children
// at the current depth.
func (es *EncState) pruned() bool {
	return es.maxDepth > 0 && es.depth >= es.maxDepth
}

// annotate emits the omitted-siblings note after a collapsed element, in
// comment form, when comments are enabled.
func (es *EncState) annotate(w io.Writer, n *ir.Node) error {
	if !es.comments || n.Omitted == 0 {
		return nil
	}
	note := fmt.Sprintf("<!-- %d similar omitted -->", n.Omitted)
	return es.write(w, CommentColor, note)
}

func (es *EncState) write(w io.Writer, attr ColorAttr, s string) error {
	if s == "" {
		return nil
	}
	es.last = s[len(s)-1]
	if es.Color != nil {
		s = es.Color(attr, s)
	}
	_, err := io.WriteString(w, s)
	return err
}
