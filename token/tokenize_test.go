package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func stripPos(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, t := range toks {
		t.Pos = Pos{}
		out[i] = t
	}
	return out
}

func TestTypeNames(t *testing.T) {
	for tt := TTagOpenStart; tt <= TText; tt++ {
		if tt.String() == "" {
			t.Errorf("Type(%d) has no name", int(tt))
		}
	}
	if got := TKey.String(); got != "TKey" {
		t.Errorf("TKey.String() = %q", got)
	}
}

func TestLexOne(t *testing.T) {
	tests := []struct {
		in        string
		want      Token
		remainder string
	}{
		{"<element />", Token{Type: TTagOpenStart, Text: "element"}, " />"},
		{"<element/>", Token{Type: TTagOpenStart, Text: "element"}, "/>"},
		{"</element />", Token{Type: TTagCloseStart, Text: "element"}, " />"},
		{"</element<!-- comment --> />", Token{Type: TTagCloseStart, Text: "element"}, "<!-- comment --> />"},
		{"/> ", Token{Type: TTagSelfClosing}, " "},
		{"><", Token{Type: TTagClosing}, "<"},
		{"<!-- This is a comment -->", Token{Type: TComment, Text: " This is a comment "}, ""},
		{`"string content" />`, Token{Type: TString, Text: "string content"}, " />"},
		{`key="1">`, Token{Type: TKey, Text: "key"}, `"1">`},
		{"\n<a>", Token{Type: TNewline}, "<a>"},
		{"\t<a>", Token{Type: TWhitespace}, "<a>"},
		{" <a>", Token{Type: TWhitespace}, "<a>"},
		{"Content</child>", Token{Type: TText, Text: "Content"}, "</child>"},
		{"More Content</child>", Token{Type: TText, Text: "More Content"}, "</child>"},
		// unterminated comment falls through to the open-tag recognizer
		{"<!-- x <a>", Token{Type: TTagOpenStart, Text: "!--"}, " x <a>"},
		// terminator inside the "</" prefix clamps to an empty name
		{"</>", Token{Type: TTagCloseStart, Text: ""}, ">"},
	}
	for _, tc := range tests {
		got, n, ok := lexOne([]byte(tc.in))
		if !ok {
			t.Errorf("lexOne(%q): no match", tc.in)
			continue
		}
		if got.Type != tc.want.Type || got.Text != tc.want.Text {
			t.Errorf("lexOne(%q) = %s, want %s", tc.in, got.String(), tc.want.String())
		}
		if rem := tc.in[n:]; rem != tc.remainder {
			t.Errorf("lexOne(%q) remainder %q, want %q", tc.in, rem, tc.remainder)
		}
	}
}

func TestTokenizeSelfClosing(t *testing.T) {
	toks, err := Tokenize(nil, []byte("<x/>"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Type: TTagOpenStart, Text: "x"},
		{Type: TTagSelfClosing},
	}
	if d := cmp.Diff(want, stripPos(toks)); d != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", d)
	}

	toks, err = Tokenize(nil, []byte("<x />"))
	if err != nil {
		t.Fatal(err)
	}
	want = []Token{
		{Type: TTagOpenStart, Text: "x"},
		{Type: TWhitespace},
		{Type: TTagSelfClosing},
	}
	if d := cmp.Diff(want, stripPos(toks)); d != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", d)
	}
}

func TestTokenizeSequence(t *testing.T) {
	toks, err := Tokenize(nil, []byte("</ <!-- comment --> >"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Type: TTagCloseStart, Text: ""},
		{Type: TWhitespace},
		{Type: TComment, Text: " comment "},
		{Type: TWhitespace},
		{Type: TTagClosing},
	}
	if d := cmp.Diff(want, stripPos(toks)); d != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", d)
	}
}

func TestTokenizeFile(t *testing.T) {
	src := `
	<tag>
		<child key="1">Content</child>
		<child>More Content</child>
		<selfclosingchild/>
	</tag>
	`
	if _, err := Tokenize(nil, []byte(src)); err != nil {
		t.Fatal(err)
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("<a>\n<b>"))
	if err != nil {
		t.Fatal(err)
	}
	// tokens: open a, >, newline, open b, >
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5", len(toks))
	}
	if p := toks[3].Pos; p.Line != 2 || p.Col != 1 || p.Offset != 4 {
		t.Errorf("pos of <b = %s (offset %d), want 2:1 (offset 4)", p, p.Offset)
	}
}

func TestTokenizeFails(t *testing.T) {
	for _, in := range []string{
		`"`,           // unterminated string, nothing to scan it as
		"abc",         // trailing text with no boundary ahead
		"<a>trailing", // text after the last tag
	} {
		_, err := Tokenize(nil, []byte(in))
		if err == nil {
			t.Errorf("Tokenize(%q): expected error", in)
			continue
		}
		if !errors.Is(err, ErrUnexpectedInput) {
			t.Errorf("Tokenize(%q): error %v does not wrap ErrUnexpectedInput", in, err)
		}
		var tkErr *TokenizeErr
		if !errors.As(err, &tkErr) {
			t.Errorf("Tokenize(%q): error %T is not a *TokenizeErr", in, err)
			continue
		}
		if tkErr.Remainder == "" {
			t.Errorf("Tokenize(%q): empty remainder", in)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	toks, err := Tokenize(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 0 {
		t.Errorf("got %d tokens for empty input, want 0", len(toks))
	}
}
