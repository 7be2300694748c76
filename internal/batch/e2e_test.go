// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !nopdf_ledongthuc

package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/schedextract/internal/logging"
	"github.com/pdiddy/schedextract/internal/pdftext"
	"github.com/pdiddy/schedextract/internal/sample"
	"github.com/pdiddy/schedextract/pkg/types"
)

func TestRunInputs_DirectoryWithCorruptFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "c.pdf"} {
		require.NoError(t, sample.Write(filepath.Join(dir, name), sample.Demo()))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("corrupt"), 0o644))
	writeFiles(t, dir, "notes.txt", "schedule.docx")

	var log bytes.Buffer
	logger := logging.New(&log, false)
	runner := NewRunner(pdftext.NewExtractor(pdftext.LedongthucLoader{}, logger), logger)

	res, err := runner.RunInputs(types.InputConfig{Directory: dir})

	require.NoError(t, err)
	assert.Equal(t, 3, res.Found)
	assert.Equal(t, 2, res.Processed())
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "a.pdf", res.Results[0].Filename)
	assert.Equal(t, "c.pdf", res.Results[1].Filename)
	assert.Contains(t, res.Results[0].Text, "HORARIO DE CLASES")
	assert.Contains(t, log.String(), "ERROR extraction failed")
	assert.Contains(t, log.String(), "b.pdf")
}
