// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sample

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		in   Schedule
		want []string
	}{
		{
			name: "full schedule",
			in:   Schedule{Title: "HORARIO DE CLASES", Period: "2024-1", Courses: []string{"ALGEBRA LINEAL"}},
			want: []string{"HORARIO DE CLASES", "Periodo 2024-1", "ALGEBRA LINEAL"},
		},
		{
			name: "slots in a second column",
			in: Schedule{
				Courses: []string{"CALCULO DIFERENCIAL", "INGLES III", "TALLER"},
				Slots:   []string{"07:00-09:00", ""},
			},
			want: []string{"CALCULO DIFERENCIAL\t07:00-09:00", "INGLES III", "TALLER"},
		},
		{
			name: "no title or period",
			in:   Schedule{Courses: []string{"FISICA MECANICA"}},
			want: []string{"FISICA MECANICA"},
		},
		{
			name: "empty",
			in:   Schedule{},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Lines())
		})
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "demo.pdf")
	require.NoError(t, Write(path, Demo()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 100, "PDF should not be trivially small")
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestWritePages_BadDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := WritePages(filepath.Join(blocker, "out.pdf"), [][]string{{"x"}}, "")
	assert.Error(t, err)
}
