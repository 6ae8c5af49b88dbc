// SPDX-License-Identifier: MIT

// Package textio reads alphabet and sequence text files into the sfecode
// data model and writes results back as text.
//
// Alphabet files hold one "<symbol> <probability>" pair per line. Blank lines
// are skipped, fields are separated by spaces or tabs, and probabilities use
// '.' as the decimal separator whatever the host locale.
//
// Sequence files hold whitespace separated tokens, any number per line. A
// token is either an alphabet symbol or a string of '0' and '1'.
//
// Line-level failures are reported as *ParseError, which unwraps to one of
// the sentinels below or to an alphabet sentinel:
//
//	ErrFormat, ErrInvalidProbability, ErrInvalidToken, ErrEmptySequence,
//	alphabet.ErrInvalidSymbol, alphabet.ErrDuplicateSymbol,
//	alphabet.ErrProbabilityRange, alphabet.ErrProbabilitySum.
//
// Reports render a code table and its metrics as text or YAML; Save writes
// the output blob, a blank line and the report to a file.
package textio
