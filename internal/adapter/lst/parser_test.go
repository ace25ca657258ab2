package lst

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/omni-storm-viz/internal/domain"
)

const (
	// Day 131 of 2024 is May 10th.
	goodLine1 = "2024 131 12  0   5.40  -3.20   1.10   4.00  400.1    5.3  100000.0   2.10   0.80   8.10  120.0  -80.0   60.0  -10.0  -20.0"
	goodLine2 = "2024 131 12  1   6.10  -2.90   0.90   4.40  410.5    5.1   98000.0   2.00   0.70   7.90  130.0  -85.0   62.0  -11.0  -21.0"
	// Day 400 cannot compose into a calendar instant.
	badDayLine = "2024 400 12  2   7.00  -2.00   0.50   4.90  420.0    4.8   95000.0   1.90   0.60   7.50  140.0  -90.0   64.0  -12.0  -22.0"
	// Truncated: only four fields.
	shortLine = "2024 131 12 3"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestParser() *Parser {
	return NewParser(slog.New(slog.DiscardHandler))
}

func TestParse(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeFixture(t, "omni.lst", goodLine1+"\n"+goodLine2+"\n")

		ds, stats, err := newTestParser().Parse(path)

		require.NoError(t, err)
		require.Equal(t, 2, ds.Len())
		assert.Equal(t, 2, stats.Rows)
		assert.Equal(t, 0, stats.Skipped)
		assert.Equal(t, 0, stats.NullTimestamps)
		assert.Equal(t, path, ds.SourcePath)

		first := ds.Records[0]
		assert.Equal(t, 2024, first.Year)
		assert.Equal(t, 131, first.Day)
		assert.Equal(t, 5.40, first.FieldMagnitudeAvg)
		assert.Equal(t, -3.20, first.BX)
		assert.Equal(t, 1.10, first.BY)
		assert.Equal(t, 4.00, first.BZ)
		assert.Equal(t, -20.0, first.SYMH)
		assert.Equal(t, time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC), first.DateTime)
	})

	t.Run("bad timestamp row retained with null datetime", func(t *testing.T) {
		path := writeFixture(t, "omni.lst", goodLine1+"\n"+badDayLine+"\n"+goodLine2+"\n")

		ds, stats, err := newTestParser().Parse(path)

		require.NoError(t, err)
		require.Equal(t, 3, ds.Len())
		assert.Equal(t, 1, stats.NullTimestamps)

		// The bad row keeps its measurements and only loses its timestamp.
		assert.True(t, ds.Records[1].DateTime.IsZero())
		assert.Equal(t, 7.00, ds.Records[1].FieldMagnitudeAvg)

		// Siblings are unaffected.
		assert.False(t, ds.Records[0].DateTime.IsZero())
		assert.False(t, ds.Records[2].DateTime.IsZero())
	})

	t.Run("non-numeric measurement coerces to NaN", func(t *testing.T) {
		line := "2024 131 12  0   ****  -3.20   1.10   4.00  400.1    5.3  100000.0   2.10   0.80   8.10  120.0  -80.0   60.0  -10.0  -20.0"
		path := writeFixture(t, "omni.lst", line+"\n")

		ds, _, err := newTestParser().Parse(path)

		require.NoError(t, err)
		require.Equal(t, 1, ds.Len())
		assert.True(t, math.IsNaN(ds.Records[0].FieldMagnitudeAvg))
		assert.Equal(t, -3.20, ds.Records[0].BX)
		assert.False(t, ds.Records[0].DateTime.IsZero())
	})

	t.Run("wrong field count skipped", func(t *testing.T) {
		path := writeFixture(t, "omni.lst", goodLine1+"\n"+shortLine+"\n"+goodLine2+"\n")

		ds, stats, err := newTestParser().Parse(path)

		require.NoError(t, err)
		assert.Equal(t, 2, ds.Len())
		assert.Equal(t, 1, stats.Skipped)
		assert.Equal(t, 3, stats.Lines)
	})

	t.Run("blank lines ignored", func(t *testing.T) {
		path := writeFixture(t, "omni.lst", "\n"+goodLine1+"\n\n   \n"+goodLine2+"\n")

		ds, stats, err := newTestParser().Parse(path)

		require.NoError(t, err)
		assert.Equal(t, 2, ds.Len())
		assert.Equal(t, 2, stats.Lines)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := newTestParser().Parse(filepath.Join(t.TempDir(), "absent.lst"))
		require.ErrorIs(t, err, ErrDatasetUnavailable)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFixture(t, "omni.lst", "")
		_, _, err := newTestParser().Parse(path)
		require.ErrorIs(t, err, ErrDatasetUnavailable)
	})

	t.Run("only malformed lines", func(t *testing.T) {
		path := writeFixture(t, "omni.lst", shortLine+"\n"+shortLine+"\n")
		_, stats, err := newTestParser().Parse(path)
		require.ErrorIs(t, err, ErrDatasetUnavailable)
		assert.Equal(t, 2, stats.Skipped)
	})

	t.Run("gzip file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "omni.lst.gz")
		f, err := os.Create(path)
		require.NoError(t, err)
		gz := gzip.NewWriter(f)
		_, err = gz.Write([]byte(goodLine1 + "\n" + goodLine2 + "\n"))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		require.NoError(t, f.Close())

		ds, _, err := newTestParser().Parse(path)

		require.NoError(t, err)
		assert.Equal(t, 2, ds.Len())
	})

	t.Run("corrupt gzip", func(t *testing.T) {
		path := writeFixture(t, "omni.lst.gz", "not gzip data")
		_, _, err := newTestParser().Parse(path)
		require.ErrorIs(t, err, ErrDatasetUnavailable)
	})

	t.Run("loaded at uses package clock", func(t *testing.T) {
		fixed := time.Date(2024, 5, 11, 8, 0, 0, 0, time.UTC)
		domain.SetClock(clockwork.NewFakeClockAt(fixed))
		defer domain.SetClock(nil)

		path := writeFixture(t, "omni.lst", goodLine1+"\n")
		ds, _, err := newTestParser().Parse(path)

		require.NoError(t, err)
		assert.Equal(t, fixed, ds.LoadedAt)
	})
}
