package token

import "fmt"

// Pos is a position in the input document. Line and Col are 1-based,
// Offset is the byte offset of the position.
type Pos struct {
	Line, Col int
	Offset    int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// advance moves p past d.
func (p Pos) advance(d []byte) Pos {
	for _, c := range d {
		if c == '\n' {
			p.Line++
			p.Col = 1
			continue
		}
		p.Col++
	}
	p.Offset += len(d)
	return p
}
