// SPDX-License-Identifier: MIT
package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/sfecode/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sfe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, " ", cfg.Output.Separator)
	assert.Equal(t, 4, cfg.Output.Precision)
	assert.Equal(t, 0, cfg.Batch.Workers)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  json: true
output:
  format: yaml
  precision: 6
batch:
  workers: 3
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 6, cfg.Output.Precision)
	assert.Equal(t, " ", cfg.Output.Separator, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Batch.Workers)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "output:\n  format: json\n"},
		{"empty separator", "output:\n  separator: \"\"\n"},
		{"precision too high", "output:\n  precision: 40\n"},
		{"negative workers", "batch:\n  workers: -1\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.content))
			require.Error(t, err)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := config.Load(writeConfig(t, "output:\n  colour: teal\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
