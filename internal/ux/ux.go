// SPDX-License-Identifier: MIT

// Package ux renders codec results for a terminal.
//
// When stdout is a terminal the report is drawn with lipgloss styles: a
// bordered code table, aligned metrics and a colored Kraft verdict. When
// output is redirected the plain textio layout is used so files and pipes
// get stable text.
package ux

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/sfecode/textio"
	"github.com/mattn/go-isatty"
)

// Palette.
var (
	ColorAccent  = lipgloss.Color("#20B9B4")
	ColorBorder  = lipgloss.Color("#16858E")
	ColorMuted   = lipgloss.Color("#5C7A84")
	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles groups the styles used by RenderReport.
var Styles = struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Symbol  lipgloss.Style
	Code    lipgloss.Style
	Output  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Label:   lipgloss.NewStyle().Foreground(ColorMuted),
	Symbol:  lipgloss.NewStyle().Bold(true),
	Code:    lipgloss.NewStyle().Foreground(ColorAccent),
	Output:  lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1),
}

// IsTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RenderReport returns the styled form of blob and r.
func RenderReport(blob string, r *textio.Report) string {
	var b strings.Builder

	if blob != "" {
		b.WriteString(Styles.Title.Render("Output"))
		b.WriteByte('\n')
		b.WriteString(Styles.Output.Render(blob))
		b.WriteString("\n\n")
	}

	var table strings.Builder
	table.WriteString(Styles.Title.Render("Codewords"))
	width := 0
	for _, row := range r.Table {
		if len(row.Codeword) > width {
			width = len(row.Codeword)
		}
	}
	for _, row := range r.Table {
		table.WriteByte('\n')
		fmt.Fprintf(&table, "%s  %s  %s",
			Styles.Symbol.Render(row.Symbol),
			Styles.Code.Render(fmt.Sprintf("%-*s", width, row.Codeword)),
			Styles.Label.Render(fmt.Sprintf("p=%s", r.Decimal(row.Probability))),
		)
	}
	b.WriteString(Styles.Box.Render(table.String()))
	b.WriteByte('\n')

	kraft := Styles.Success.Render(r.Decimal(r.Metrics.KraftSum) + " " + r.KraftMark())
	if !r.KraftOK {
		kraft = Styles.Error.Render(r.Decimal(r.Metrics.KraftSum) + " " + r.KraftMark())
	}
	lines := [][2]string{
		{"Average codeword length", r.Decimal(r.Metrics.AvgLength) + " bits"},
		{"Entropy", r.Decimal(r.Metrics.Entropy) + " bits"},
		{"Redundancy", r.Decimal(r.Metrics.Redundancy) + " bits"},
		{"Kraft inequality", kraft},
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "%s %s\n", Styles.Label.Render(fmt.Sprintf("%-24s", l[0]+":")), l[1])
	}

	return b.String()
}

// WriteResult writes blob and r to w: styled when w is a terminal, otherwise
// the plain textio rendering in format f.
func WriteResult(w io.Writer, blob string, r *textio.Report, f textio.Format) error {
	if f == textio.FormatText && IsTerminal(w) {
		_, err := io.WriteString(w, RenderReport(blob, r))
		return err
	}

	var buf bytes.Buffer
	if blob != "" {
		data, err := textio.Render(blob, r, f)
		if err != nil {
			return err
		}
		buf.Write(data)
	} else if err := r.Write(&buf, f); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())

	return err
}
