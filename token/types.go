package token

import "fmt"

type Type int

const (
	TTagOpenStart Type = iota
	TTagCloseStart
	TTagSelfClosing
	TTagClosing
	TKey
	TString
	TComment
	TWhitespace
	TNewline
	TText
)

var typeNames = map[Type]string{
	TTagOpenStart:   "TTagOpenStart",
	TTagCloseStart:  "TTagCloseStart",
	TTagSelfClosing: "TTagSelfClosing",
	TTagClosing:     "TTagClosing",
	TKey:            "TKey",
	TString:         "TString",
	TComment:        "TComment",
	TWhitespace:     "TWhitespace",
	TNewline:        "TNewline",
	TText:           "TText",
}

func (t Type) String() string {
	return typeNames[t]
}

// Token is one lexical unit of a markup document. Text holds the tag or
// attribute name, the string or comment contents, or the literal text run;
// it is empty for the punctuation tokens. A TString differs from a TText in
// that a TString was surrounded by double quotes in the input.
type Token struct {
	Type Type
	Text string
	Pos  Pos
}

func (t *Token) String() string {
	switch t.Type {
	case TTagOpenStart, TTagCloseStart, TKey, TString, TComment, TText:
		return fmt.Sprintf("%s(%q)", t.Type, t.Text)
	default:
		return t.Type.String()
	}
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t, t.Pos.String())
}
