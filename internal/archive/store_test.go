// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/schedextract/internal/schedule"
	"github.com/pdiddy/schedextract/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.ArchiveConfig{DBPath: filepath.Join(t.TempDir(), "db", "schedules.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	s.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) }
	return s
}

func result(name, text string) types.ExtractionResult {
	return types.ExtractionResult{Filename: name, SourcePath: "Schedules/" + name, Text: text}
}

const sophie = "HORARIO DE CLASES\nPeriodo 2024-1\nCALCULO lunes ALGEBRA LINEAL martes"

func TestSave(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	r := result("sophie.pdf", sophie)

	status, err := s.Save(ctx, r, schedule.Parse(r.Text))
	require.NoError(t, err)
	assert.Equal(t, StatusStored, status)

	status, err = s.Save(ctx, r, schedule.Parse(r.Text))
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, status, "unchanged text should be skipped")

	r.Text += " QUIMICA"
	status, err = s.Save(ctx, r, schedule.Parse(r.Text))
	require.NoError(t, err)
	assert.Equal(t, StatusUpdated, status)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"CALCULO", "ALGEBRA LINEAL", "QUIMICA"}, list[0].Courses)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	for _, r := range []types.ExtractionResult{
		result("sergio.pdf", "sin titulo ESTADISTICA"),
		result("sophie.pdf", sophie),
	} {
		_, err := s.Save(ctx, r, schedule.Parse(r.Text))
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "sergio.pdf", list[0].Filename)
	assert.Empty(t, list[0].Title)
	assert.Empty(t, list[0].Period)
	assert.Equal(t, []string{"ESTADISTICA"}, list[0].Courses)

	assert.Equal(t, "sophie.pdf", list[1].Filename)
	assert.Equal(t, "Schedules/sophie.pdf", list[1].SourcePath)
	assert.Equal(t, "Horario de Clases", list[1].Title)
	assert.Equal(t, "2024-1", list[1].Period)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), list[1].StoredAt)
	assert.Len(t, list[1].TextHash, 64)
}

func TestList_Empty(t *testing.T) {
	list, err := testStore(t).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	r := result("sophie.pdf", sophie)
	_, err := s.Save(ctx, r, schedule.Parse(r.Text))
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got, err := s.Get(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, list[0], got)

	_, err = s.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIngest(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	results := []types.ExtractionResult{
		result("sophie.pdf", sophie),
		result("sergio.pdf", "ESTADISTICA"),
	}

	var out bytes.Buffer
	summary, err := s.Ingest(ctx, results, &out)
	require.NoError(t, err)
	assert.Equal(t, IngestSummary{Stored: 2}, summary)
	assert.Contains(t, out.String(), "stored  sophie.pdf (2024-1, 2 courses)")
	assert.Contains(t, out.String(), "stored  sergio.pdf (Unknown, 1 courses)")

	out.Reset()
	summary, err = s.Ingest(ctx, results, &out)
	require.NoError(t, err)
	assert.Equal(t, IngestSummary{Skipped: 2}, summary)
	assert.Equal(t, 2, summary.Total())
	assert.Contains(t, out.String(), "stored: 0, updated: 0, skipped: 2, failed: 0")
}

func TestIngest_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testStore(t).Ingest(ctx, []types.ExtractionResult{result("a.pdf", "")}, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}
