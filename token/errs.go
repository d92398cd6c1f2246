package token

import (
	"errors"
	"fmt"
)

// ErrUnexpectedInput reports that no recognizer matched at the current
// position.
var ErrUnexpectedInput = errors.New("no token matches input")

// TokenizeErr carries the position of a scan failure and the unconsumed
// remainder of the input.
type TokenizeErr struct {
	Err       error
	Pos       Pos
	Remainder string
}

func NewTokenizeErr(e error, p Pos, remainder string) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p, Remainder: remainder}
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func (t *TokenizeErr) Error() string {
	r := t.Remainder
	if len(r) > 24 {
		r = r[:24] + "..."
	}
	return fmt.Sprintf("%v at %s near %q", t.Err, t.Pos, r)
}
