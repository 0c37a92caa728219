package report_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/report"
)

func TestWriteText_Layout(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteText(&buf, []int{10, 100, 1000}, []int64{1, 12, 180}, "Merge Sort", "random")
	require.NoError(t, err)

	want := "\n--- Results for Merge Sort on random data ---\n" +
		"Size\tTime (μs)\n" +
		"10\t1\n" +
		"100\t12\n" +
		"1000\t180\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, nil, nil, "Hybrid", "reverse"))
	assert.Equal(t, "\n--- Results for Hybrid on reverse data ---\nSize\tTime (μs)\n\n", buf.String())
}

func TestWriteTable_Content(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteTable(&buf, []int{10, 2500}, []int64{3, 40210}, "Merge Sort", "almost_sorted")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "--- Results for Merge Sort on almost_sorted data ---")
	assert.Contains(t, out, "Size")
	assert.Contains(t, out, "Time (μs)")
	assert.Contains(t, out, "2500")
	assert.Contains(t, out, "40210")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5, "title, header, divider and two rows")
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_Errors(t *testing.T) {
	err := report.WriteText(&bytes.Buffer{}, []int{1, 2}, []int64{1}, "a", "b")
	assert.ErrorIs(t, err, report.ErrLengthMismatch)

	err = report.WriteTable(&bytes.Buffer{}, []int{1}, nil, "a", "b")
	assert.ErrorIs(t, err, report.ErrLengthMismatch)

	err = report.WriteText(failingWriter{}, []int{1}, []int64{1}, "a", "b")
	assert.EqualError(t, err, "disk full")
}

// TestWriteTable_PlainOutsideTerminal renders into a regular file and a
// buffer; neither is a terminal, so no escape sequences may appear.
func TestWriteTable_PlainOutsideTerminal(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")

	f, err := os.Create(filepath.Join(t.TempDir(), "table.txt"))
	require.NoError(t, err)
	require.NoError(t, report.WriteTable(f, []int{10, 100}, []int64{1, 12}, "Merge Sort", "random"))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\x1b[", "file output must be plain text")
	assert.Contains(t, string(data), "--- Results for Merge Sort on random data ---")

	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, []int{10}, []int64{1}, "Merge Sort", "random"))
	assert.NotContains(t, buf.String(), "\x1b[")
}
