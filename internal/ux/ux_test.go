// SPDX-License-Identifier: MIT
package ux_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sfecode/alphabet"
	"github.com/katalvlaran/sfecode/internal/ux"
	"github.com/katalvlaran/sfecode/sfe"
	"github.com/katalvlaran/sfecode/textio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func report(t *testing.T) *textio.Report {
	t.Helper()
	c, err := sfe.Build(alphabet.MustNew([]alphabet.Entry{{Symbol: "+", P: 0.25}, {Symbol: "-", P: 0.25}, {Symbol: "*", P: 0.5}}))
	require.NoError(t, err)

	return textio.NewReport(c)
}

func TestRenderReport_ContainsTableAndMetrics(t *testing.T) {
	out := ux.RenderReport("001 11", report(t))

	for _, want := range []string{"Output", "001 11", "Codewords", "011", "p=0.5000",
		"Average codeword length", "2.5000 bits", "Entropy", "1.5000 bits", "0.5000 ✓"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderReport_KraftFailure(t *testing.T) {
	r := report(t)
	r.Metrics.KraftSum = 1.5
	r.KraftOK = false

	out := ux.RenderReport("", r)
	assert.Contains(t, out, "1.5000 ✗")
	assert.NotContains(t, out, "Output")
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, ux.IsTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, ux.IsTerminal(f))
}

func TestWriteResult_PlainWhenRedirected(t *testing.T) {
	r := report(t)

	var buf bytes.Buffer
	require.NoError(t, ux.WriteResult(&buf, "001 11", r, textio.FormatText))

	want, err := textio.Render("001 11", r, textio.FormatText)
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String())

	buf.Reset()
	require.NoError(t, ux.WriteResult(&buf, "", r, textio.FormatText))
	assert.Contains(t, buf.String(), "Codewords:\n+: 001\n")
	assert.NotContains(t, buf.String(), "\n\n\n")
}

func TestWriteResult_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ux.WriteResult(&buf, "", report(t), textio.FormatYAML))
	assert.Contains(t, buf.String(), "kraft_ok: true")
}
