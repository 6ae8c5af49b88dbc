// SPDX-License-Identifier: MIT
package textio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sfecode/alphabet"
	"github.com/katalvlaran/sfecode/sfe"
	"github.com/katalvlaran/sfecode/textio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const halfHalfReport = `Codewords:
+: 01
-: 11

Average codeword length: 2.0000 bits
Entropy: 1.0000 bits
Redundancy: 1.0000 bits
Kraft inequality: 0.5000 ✓
`

func halfHalfCode(t *testing.T) *sfe.Code {
	t.Helper()
	c, err := sfe.Build(alphabet.MustNew([]alphabet.Entry{{Symbol: "+", P: 0.5}, {Symbol: "-", P: 0.5}}))
	require.NoError(t, err)

	return c
}

// TestReport_WriteText pins the text layout.
func TestReport_WriteText(t *testing.T) {
	r := textio.NewReport(halfHalfCode(t))

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	assert.Equal(t, halfHalfReport, buf.String())
}

// TestReport_Precision honors the configured number of decimals.
func TestReport_Precision(t *testing.T) {
	r := textio.NewReport(halfHalfCode(t))
	r.Precision = 2
	assert.Equal(t, "2.00", r.Decimal(2))

	r.Precision = -1
	assert.Equal(t, "2.0000", r.Decimal(2))
}

// TestReport_KraftMark shows a cross when the inequality fails.
func TestReport_KraftMark(t *testing.T) {
	assert.Equal(t, "✓", (&textio.Report{KraftOK: true}).KraftMark())
	assert.Equal(t, "✗", (&textio.Report{KraftOK: false}).KraftMark())
}

// TestReport_WriteYAML produces a document with the table and metrics.
func TestReport_WriteYAML(t *testing.T) {
	r := textio.NewReport(halfHalfCode(t))
	r.Mode = "encode"

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, textio.FormatYAML))

	var doc struct {
		Mode  string       `yaml:"mode"`
		Table []textio.Row `yaml:"codewords"`
		Metrics struct {
			AvgLength float64 `yaml:"average_length"`
			KraftSum  float64 `yaml:"kraft_sum"`
		} `yaml:"metrics"`
		KraftOK bool `yaml:"kraft_ok"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "encode", doc.Mode)
	assert.Equal(t, []textio.Row{
		{Symbol: "+", Probability: 0.5, Codeword: "01", Length: 2},
		{Symbol: "-", Probability: 0.5, Codeword: "11", Length: 2},
	}, doc.Table)
	assert.Equal(t, 2.0, doc.Metrics.AvgLength)
	assert.Equal(t, 0.5, doc.Metrics.KraftSum)
	assert.True(t, doc.KraftOK)
	assert.NotContains(t, buf.String(), "precision")
}

// TestParseFormat accepts known names only.
func TestParseFormat(t *testing.T) {
	for in, want := range map[string]textio.Format{
		"":      textio.FormatText,
		"text":  textio.FormatText,
		"YAML":  textio.FormatYAML,
		" yml ": textio.FormatYAML,
	} {
		got, err := textio.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := textio.ParseFormat("json")
	assert.ErrorIs(t, err, textio.ErrUnknownFormat)

	var buf bytes.Buffer
	err = (&textio.Report{}).Write(&buf, textio.Format("xml"))
	assert.ErrorIs(t, err, textio.ErrUnknownFormat)
}

// TestSave writes blob, blank line and report, overwriting the target.
func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the result"), 0o644))

	r := textio.NewReport(halfHalfCode(t))
	blob := textio.JoinTokens([]string{"01", "11", "01"}, "")
	require.NoError(t, textio.Save(path, blob, r, textio.FormatText))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "01 11 01\n\n"+halfHalfReport, string(got))
}

// TestSave_BadPath propagates I/O errors.
func TestSave_BadPath(t *testing.T) {
	r := textio.NewReport(halfHalfCode(t))
	err := textio.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt"), "01", r, textio.FormatText)
	assert.Error(t, err)
}

// TestJoinTokens uses the given separator.
func TestJoinTokens(t *testing.T) {
	assert.Equal(t, "+,-", textio.JoinTokens([]string{"+", "-"}, ","))
	assert.Equal(t, "+ -", textio.JoinTokens([]string{"+", "-"}, ""))
	assert.Equal(t, "", textio.JoinTokens(nil, " "))
}
