package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse           = errors.New("parse error")
	ErrEmptyInput      = fmt.Errorf("%w: empty input", ErrParse)
	ErrNoClosingTag    = fmt.Errorf("%w: no closing tag", ErrParse)
	ErrMismatchedTag   = fmt.Errorf("%w: mismatched closing tag", ErrParse)
	ErrUnclosedElement = fmt.Errorf("%w: unclosed element", ErrParse)
)
