// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutput_Stdout(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteOutput("hello", "", &out))
	assert.Equal(t, "hello\n", out.String())
}

func TestWriteOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	var out bytes.Buffer

	require.NoError(t, WriteOutput("line one\nline two", path, &out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", string(data))
	assert.Empty(t, out.String(), "nothing should reach stdout")
}

func TestWriteOutput_FileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "output.txt")

	err := WriteOutput("content", path, &bytes.Buffer{})

	require.ErrorIs(t, err, ErrWriteOutput)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestWriteOutput_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	var out bytes.Buffer

	require.NoError(t, WriteOutput("", path, &out))

	assert.Empty(t, out.String())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
