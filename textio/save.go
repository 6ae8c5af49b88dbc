// SPDX-License-Identifier: MIT

package textio

import (
	"bytes"
	"fmt"
	"os"
)

// Render returns blob, a blank line and the report in format f.
func Render(blob string, r *Report, f Format) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(blob)
	buf.WriteString("\n\n")
	if err := r.Write(&buf, f); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Save writes Render(blob, r, f) to path, replacing any existing file.
func Save(path, blob string, r *Report, f Format) error {
	data, err := Render(blob, r, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("textio: save %s: %w", path, err)
	}

	return nil
}
