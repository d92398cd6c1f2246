package token

// Tokenize scans src into dst and returns the extended slice. The cursor
// moves over the unconsumed suffix; at each position the first matching
// recognizer wins and its token is appended. When no recognizer matches,
// the scan fails with a *TokenizeErr carrying the unconsumed remainder.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pos := Pos{Line: 1, Col: 1}
	i := 0
	for i < len(src) {
		tok, n, ok := lexOne(src[i:])
		if !ok {
			return nil, NewTokenizeErr(ErrUnexpectedInput, pos, string(src[i:]))
		}
		tok.Pos = pos
		dst = append(dst, tok)
		pos = pos.advance(src[i : i+n])
		i += n
	}
	return dst, nil
}
