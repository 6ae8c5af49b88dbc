// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sfecode/sfe"
	"gopkg.in/yaml.v3"
)

// DefaultPrecision is the number of decimals used for metrics in text reports.
const DefaultPrecision = 4

// DefaultSeparator joins output tokens into a blob.
const DefaultSeparator = " "

// Format selects how a Report is rendered.
type Format string

const (
	// FormatText is the human-readable report.
	FormatText Format = "text"
	// FormatYAML is the machine-readable report.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a name to a Format; the empty name means FormatText.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Row is one line of the code table.
type Row struct {
	Symbol      string  `yaml:"symbol"`
	Probability float64 `yaml:"probability"`
	Codeword    string  `yaml:"codeword"`
	Length      int     `yaml:"length"`
}

// Report is the code table of a run together with its metrics.
type Report struct {
	Mode    string      `yaml:"mode,omitempty"`
	Table   []Row       `yaml:"codewords"`
	Metrics sfe.Metrics `yaml:"metrics"`
	KraftOK bool        `yaml:"kraft_ok"`

	// Precision is the number of decimals in text output.
	Precision int `yaml:"-"`
}

// NewReport builds a report for code c, rows in alphabet order.
func NewReport(c *sfe.Code) *Report {
	r := &Report{
		Table:     make([]Row, c.Len()),
		Metrics:   c.Metrics(),
		Precision: DefaultPrecision,
	}
	for i := range r.Table {
		r.Table[i] = Row{
			Symbol:      c.Symbols[i],
			Probability: c.Probabilities[i],
			Codeword:    c.Codewords[i],
			Length:      c.Lengths[i],
		}
	}
	r.KraftOK = r.Metrics.KraftOK()

	return r
}

// KraftMark returns "✓" when the Kraft inequality holds and "✗" otherwise.
func (r *Report) KraftMark() string {
	if r.KraftOK {
		return "✓"
	}

	return "✗"
}

// Decimal formats v with the report precision.
func (r *Report) Decimal(v float64) string {
	prec := r.Precision
	if prec < 0 {
		prec = DefaultPrecision
	}

	return fmt.Sprintf("%.*f", prec, v)
}

// WriteText renders the plain text report:
//
//	Codewords:
//	+: 01
//	-: 11
//
//	Average codeword length: 2.0000 bits
//	Entropy: 1.0000 bits
//	Redundancy: 1.0000 bits
//	Kraft inequality: 0.5000 ✓
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Codewords:")
	for _, row := range r.Table {
		fmt.Fprintf(bw, "%s: %s\n", row.Symbol, row.Codeword)
	}
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Average codeword length: %s bits\n", r.Decimal(r.Metrics.AvgLength))
	fmt.Fprintf(bw, "Entropy: %s bits\n", r.Decimal(r.Metrics.Entropy))
	fmt.Fprintf(bw, "Redundancy: %s bits\n", r.Decimal(r.Metrics.Redundancy))
	fmt.Fprintf(bw, "Kraft inequality: %s %s\n", r.Decimal(r.Metrics.KraftSum), r.KraftMark())

	return bw.Flush()
}

// WriteYAML renders the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("textio: encode report: %w", err)
	}

	return enc.Close()
}

// Write renders the report in format f.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText, "":
		return r.WriteText(w)
	case FormatYAML:
		return r.WriteYAML(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// JoinTokens joins output tokens with sep, or DefaultSeparator when sep is empty.
func JoinTokens(tokens []string, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}

	return strings.Join(tokens, sep)
}
