// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/schedextract/internal/pdftext"
)

// execute runs the root command with args and captures its streams.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		require.NoError(t, rootCmd.PersistentFlags().Set("backend", ""))
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_NoInputPrintsHelp(t *testing.T) {
	stdout, _, err := execute(t)

	require.ErrorIs(t, err, errNoInput)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "schedextract [files...]")
	assert.Contains(t, stdout, "--directory")
}

func TestRoot_UnknownBackend(t *testing.T) {
	_, _, err := execute(t, "--backend", "pypdf2", "schedule.pdf")

	require.ErrorIs(t, err, pdftext.ErrUnknownBackend)
	assert.Contains(t, err.Error(), `"pypdf2"`)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "schedextract dev\n", stdout)
}
