package token

import "bytes"

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// A lexFn recognizes one token at the start of the unconsumed suffix d and
// reports the token and the number of bytes it spans.
type lexFn func(d []byte) (Token, int, bool)

// lexers in priority order. Each recognizer relies on the earlier ones
// never matching first, so the order must not change.
var lexers = []lexFn{
	lexComment,
	lexString,
	lexTagCloseStart,
	lexTagOpenStart,
	lexTagSelfClosing,
	lexTagClosing,
	lexWhitespace,
	lexNewline,
	lexKey,
	lexText,
}

func lexOne(d []byte) (Token, int, bool) {
	for _, lex := range lexers {
		if tok, n, ok := lex(d); ok {
			return tok, n, true
		}
	}
	return Token{}, 0, false
}

// lexComment requires a close marker; an unterminated comment is not a
// match and falls through to the recognizers after it. The close marker is
// searched after the opener, so "<!-->" is not a comment.
func lexComment(d []byte) (Token, int, bool) {
	if !bytes.HasPrefix(d, []byte(commentOpen)) {
		return Token{}, 0, false
	}
	end := bytes.Index(d[len(commentOpen):], []byte(commentClose))
	if end < 0 {
		return Token{}, 0, false
	}
	end += len(commentOpen)
	return Token{Type: TComment, Text: string(d[len(commentOpen):end])}, end + len(commentClose), true
}

// lexString matches a double-quoted literal. Quotes are not escapable.
func lexString(d []byte) (Token, int, bool) {
	if len(d) == 0 || d[0] != '"' {
		return Token{}, 0, false
	}
	end := bytes.IndexByte(d[1:], '"')
	if end < 0 {
		return Token{}, 0, false
	}
	return Token{Type: TString, Text: string(d[1 : 1+end])}, end + 2, true
}

func lexTagCloseStart(d []byte) (Token, int, bool) {
	name, n, ok := lexTagName(d, "</")
	if !ok {
		return Token{}, 0, false
	}
	return Token{Type: TTagCloseStart, Text: name}, n, true
}

func lexTagOpenStart(d []byte) (Token, int, bool) {
	name, n, ok := lexTagName(d, "<")
	if !ok {
		return Token{}, 0, false
	}
	return Token{Type: TTagOpenStart, Text: name}, n, true
}

// lexTagName scans the tag name following prefix. The name ends where one
// of the self-closing, closing, comment, whitespace or newline recognizers
// would match, which is what lets a name be followed directly by "/>", ">",
// a comment, or inline space. The terminator itself is not consumed.
func lexTagName(d []byte, prefix string) (string, int, bool) {
	if !bytes.HasPrefix(d, []byte(prefix)) {
		return "", 0, false
	}
	k := 0
	for k < len(d) && !nameTerminator(d[k:]) {
		k++
	}
	if k < len(prefix) {
		// terminator inside the prefix itself, as in "</>"
		k = len(prefix)
	}
	return string(d[len(prefix):k]), k, true
}

func nameTerminator(d []byte) bool {
	if _, _, ok := lexTagSelfClosing(d); ok {
		return true
	}
	if _, _, ok := lexTagClosing(d); ok {
		return true
	}
	if _, _, ok := lexComment(d); ok {
		return true
	}
	if _, _, ok := lexWhitespace(d); ok {
		return true
	}
	_, _, ok := lexNewline(d)
	return ok
}

func lexTagSelfClosing(d []byte) (Token, int, bool) {
	if !bytes.HasPrefix(d, []byte("/>")) {
		return Token{}, 0, false
	}
	return Token{Type: TTagSelfClosing}, 2, true
}

func lexTagClosing(d []byte) (Token, int, bool) {
	if len(d) == 0 || d[0] != '>' {
		return Token{}, 0, false
	}
	return Token{Type: TTagClosing}, 1, true
}

// lexWhitespace matches a single space or tab; runs produce one token per
// character.
func lexWhitespace(d []byte) (Token, int, bool) {
	if len(d) == 0 || (d[0] != ' ' && d[0] != '\t') {
		return Token{}, 0, false
	}
	return Token{Type: TWhitespace}, 1, true
}

func lexNewline(d []byte) (Token, int, bool) {
	if len(d) == 0 || d[0] != '\n' {
		return Token{}, 0, false
	}
	return Token{Type: TNewline}, 1, true
}

// lexKey scans for an attribute key: the text before a '='. It bails out
// without matching as soon as any tag, comment or string recognizer would
// match before the '=' is reached, so a '=' inside tag structure proper is
// never misread as a key. Reaching end of input without a '=' is not a
// match either.
func lexKey(d []byte) (Token, int, bool) {
	for k := 0; k < len(d); k++ {
		if keyBoundary(d[k:]) {
			return Token{}, 0, false
		}
		if d[k] == '=' {
			return Token{Type: TKey, Text: string(d[:k])}, k + 1, true
		}
	}
	return Token{}, 0, false
}

func keyBoundary(d []byte) bool {
	if _, _, ok := lexTagOpenStart(d); ok {
		return true
	}
	if _, _, ok := lexTagCloseStart(d); ok {
		return true
	}
	if _, _, ok := lexTagSelfClosing(d); ok {
		return true
	}
	if _, _, ok := lexTagClosing(d); ok {
		return true
	}
	if _, _, ok := lexComment(d); ok {
		return true
	}
	_, _, ok := lexString(d)
	return ok
}

// lexText is the fallback: everything up to the next position where a tag
// or comment recognizer would match is literal text. With no such boundary
// ahead the recognizer does not match at all, so trailing unstructured
// bytes fail the scan instead of silently becoming text.
func lexText(d []byte) (Token, int, bool) {
	for k := 1; k < len(d); k++ {
		if textBoundary(d[k:]) {
			return Token{Type: TText, Text: string(d[:k])}, k, true
		}
	}
	return Token{}, 0, false
}

func textBoundary(d []byte) bool {
	if _, _, ok := lexTagOpenStart(d); ok {
		return true
	}
	if _, _, ok := lexTagCloseStart(d); ok {
		return true
	}
	if _, _, ok := lexTagSelfClosing(d); ok {
		return true
	}
	if _, _, ok := lexTagClosing(d); ok {
		return true
	}
	_, _, ok := lexComment(d)
	return ok
}
