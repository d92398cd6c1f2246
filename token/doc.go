// Package token provides tokenization support for XML-like markup.
//
// [Tokenize] scans a whole document into a flat token sequence by trying a
// fixed, priority-ordered list of recognizers at every position. The order
// is load-bearing: later recognizers are only correct because earlier ones
// never match first, and the tag-name and attribute-key scans terminate by
// looking ahead for other recognizers rather than for fixed delimiters.
package token
