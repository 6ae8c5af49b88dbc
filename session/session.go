// SPDX-License-Identifier: MIT

// Package session is the stateful shell around the stateless codec.
//
// A Session remembers the loaded alphabet, the loaded sequence and the last
// result, and exposes the four steps of the workflow as independent calls:
//
//	s := session.New(session.WithLogger(logger))
//	if err := s.LoadAlphabet("alphabet.txt"); err != nil { ... }
//	if err := s.LoadSequence("message.txt"); err != nil { ... }
//	res, err := s.Encode()               // or s.Decode()
//	err = s.Save("encoded.txt")
//
// Encode and Decode need both inputs (ErrNoAlphabet, ErrNoSequence); Save
// needs a previous run (ErrNoResult). The code table is rebuilt on every run.
//
// A failed load clears the slot it targeted. Any load, failed or not, drops
// the last result because it no longer describes the current inputs.
//
// All methods are safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/katalvlaran/sfecode/alphabet"
	"github.com/katalvlaran/sfecode/internal/logging"
	"github.com/katalvlaran/sfecode/sfe"
	"github.com/katalvlaran/sfecode/textio"
)

// Sentinel errors for call-order violations.
var (
	// ErrNoAlphabet indicates Encode/Decode ran before an alphabet was loaded.
	ErrNoAlphabet = errors.New("session: alphabet not loaded")

	// ErrNoSequence indicates Encode/Decode ran before a sequence was loaded.
	ErrNoSequence = errors.New("session: sequence not loaded")

	// ErrNoResult indicates Save ran before Encode/Decode.
	ErrNoResult = errors.New("session: nothing to save, run encode or decode first")

	// ErrUnknownMode indicates an unsupported Mode value or name.
	ErrUnknownMode = errors.New("session: unknown mode")
)

// Mode selects the direction of a run.
type Mode int

const (
	// ModeEncode maps symbols to codewords.
	ModeEncode Mode = iota
	// ModeDecode maps codewords to symbols.
	ModeDecode
)

// String returns "encode" or "decode".
func (m Mode) String() string {
	switch m {
	case ModeEncode:
		return "encode"
	case ModeDecode:
		return "decode"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "encode" or "decode" (any case) to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "encode":
		return ModeEncode, nil
	case "decode":
		return ModeDecode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Result is the outcome of one Encode or Decode.
type Result struct {
	Mode    Mode
	Input   []string
	Output  []string
	Code    *sfe.Code
	Metrics sfe.Metrics
}

// Blob joins the output tokens with sep (textio.DefaultSeparator when empty).
func (r *Result) Blob(sep string) string {
	return textio.JoinTokens(r.Output, sep)
}

// Report returns the code table and metrics of r with the given precision.
func (r *Result) Report(precision int) *textio.Report {
	rep := textio.NewReport(r.Code)
	rep.Mode = r.Mode.String()
	rep.Precision = precision

	return rep
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Default: a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSeparator sets the separator used to join output tokens on Save.
func WithSeparator(sep string) Option {
	return func(s *Session) { s.sep = sep }
}

// WithPrecision sets the number of decimals in saved text reports.
func WithPrecision(p int) Option {
	return func(s *Session) { s.precision = p }
}

// WithFormat sets the report format used by Save.
func WithFormat(f textio.Format) Option {
	return func(s *Session) { s.format = f }
}

// Session holds the inputs and the last result of the codec workflow.
type Session struct {
	mu sync.RWMutex

	log       *slog.Logger
	sep       string
	precision int
	format    textio.Format

	alpha *alphabet.Alphabet
	seq   []string
	last  *Result
	// gen increases on every load; a run only publishes its result if no
	// load happened while it was computing.
	gen uint64
}

// New returns an empty Session.
func New(opts ...Option) *Session {
	s := &Session{
		log:       logging.Discard(),
		sep:       textio.DefaultSeparator,
		precision: textio.DefaultPrecision,
		format:    textio.FormatText,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// LoadAlphabet parses the alphabet file at path and makes it current.
// On failure the alphabet slot is cleared and the error is returned.
func (s *Session) LoadAlphabet(path string) error {
	a, err := textio.LoadAlphabet(path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.last = nil
	if err != nil {
		s.alpha = nil
		s.log.Debug("alphabet load failed", "path", path, "error", err)
		return err
	}
	s.alpha = a
	s.log.Info("alphabet loaded", "path", path, "symbols", a.Len())

	return nil
}

// LoadSequence parses the sequence file at path and makes it current.
// On failure the sequence slot is cleared and the error is returned.
func (s *Session) LoadSequence(path string) error {
	seq, err := textio.LoadSequence(path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.last = nil
	if err != nil {
		s.seq = nil
		s.log.Debug("sequence load failed", "path", path, "error", err)
		return err
	}
	s.seq = seq
	s.log.Info("sequence loaded", "path", path, "tokens", len(seq))

	return nil
}

// SetAlphabet installs an already validated alphabet. A nil a clears the slot.
func (s *Session) SetAlphabet(a *alphabet.Alphabet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.last = nil
	s.alpha = a
}

// SetSequence installs an in-memory sequence after checking it with
// textio.ValidateTokens. On failure the sequence slot is cleared.
func (s *Session) SetSequence(seq []string) error {
	err := textio.ValidateTokens(seq)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.last = nil
	if err != nil {
		s.seq = nil
		return err
	}
	s.seq = append([]string(nil), seq...)

	return nil
}

// Alphabet returns the current alphabet or nil.
func (s *Session) Alphabet() *alphabet.Alphabet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.alpha
}

// Sequence returns a copy of the current sequence or nil.
func (s *Session) Sequence() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.seq == nil {
		return nil
	}

	return append([]string(nil), s.seq...)
}

// Last returns the result of the most recent successful run, or nil.
func (s *Session) Last() *Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.last
}

// Encode maps the current sequence to codewords.
func (s *Session) Encode() (*Result, error) { return s.Run(ModeEncode) }

// Decode maps the current sequence of codewords back to symbols.
func (s *Session) Decode() (*Result, error) { return s.Run(ModeDecode) }

// Run builds the code for the current alphabet and applies it to the
// current sequence in direction m. A failed run leaves the last result
// untouched.
func (s *Session) Run(m Mode) (*Result, error) {
	s.mu.RLock()
	a, seq, gen := s.alpha, s.seq, s.gen
	s.mu.RUnlock()

	if m != ModeEncode && m != ModeDecode {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, m)
	}
	if a == nil {
		return nil, ErrNoAlphabet
	}
	if seq == nil {
		return nil, ErrNoSequence
	}

	code, err := sfe.Build(a)
	if err != nil {
		s.log.Warn("code construction failed", "error", err)
		return nil, err
	}

	var out []string
	if m == ModeEncode {
		out, err = code.Encode(seq)
	} else {
		out, err = code.Decode(seq)
	}
	if err != nil {
		s.log.Debug(m.String()+" failed", "error", err)
		return nil, err
	}

	res := &Result{
		Mode:    m,
		Input:   append([]string(nil), seq...),
		Output:  out,
		Code:    code,
		Metrics: code.Metrics(),
	}

	s.mu.Lock()
	if s.gen == gen {
		s.last = res
	}
	s.mu.Unlock()

	s.log.Info(m.String()+" done",
		"tokens", len(out),
		"avg_length", res.Metrics.AvgLength,
		"kraft_sum", res.Metrics.KraftSum,
	)

	return res, nil
}

// Save writes the last result to path as the joined output followed by the
// report in the session's format.
func (s *Session) Save(path string) error {
	s.mu.RLock()
	last, sep, prec, format := s.last, s.sep, s.precision, s.format
	s.mu.RUnlock()

	if last == nil {
		return ErrNoResult
	}
	if err := textio.Save(path, last.Blob(sep), last.Report(prec), format); err != nil {
		return err
	}
	s.log.Info("result saved", "path", path, "mode", last.Mode.String())

	return nil
}
