// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrWriteOutput reports a failure to write rendered output to its file.
var ErrWriteOutput = errors.New("writing output")

// WriteOutput writes content to the file at path, or to stdout when path is
// empty. Empty content writes nothing. A file write failure wraps
// ErrWriteOutput and leaves content with the caller, which may print it
// elsewhere.
func WriteOutput(content, path string, stdout io.Writer) error {
	if content == "" {
		return nil
	}
	if path == "" {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		_, err := io.WriteString(stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w to %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}
