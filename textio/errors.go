// SPDX-License-Identifier: MIT

package textio

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat indicates an alphabet line without exactly two fields.
	ErrFormat = errors.New("textio: expected \"<symbol> <probability>\"")

	// ErrInvalidProbability indicates a probability field that is not a number.
	ErrInvalidProbability = errors.New("textio: invalid probability")

	// ErrInvalidToken indicates a sequence token that is neither a symbol nor a binary string.
	ErrInvalidToken = errors.New("textio: invalid token")

	// ErrEmptySequence indicates a sequence file without tokens.
	ErrEmptySequence = errors.New("textio: sequence is empty")

	// ErrUnknownFormat indicates an unsupported report format name.
	ErrUnknownFormat = errors.New("textio: unknown report format")
)

// ParseError reports a failure on a specific input line.
type ParseError struct {
	Source string // file path, empty for readers
	Line   int    // 1-based
	Text   string // offending line or token
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
	}

	return fmt.Sprintf("%s:%d: %v (%q)", e.Source, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// withSource stamps path onto a ParseError inside err, or prefixes other
// errors with it.
func withSource(err error, path string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		if pe.Source == "" {
			pe.Source = path
		}
		return err
	}

	return fmt.Errorf("%s: %w", path, err)
}
