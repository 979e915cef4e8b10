package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
	"github.com/yumyai/cgcfinder/pkg/cgc"
	"github.com/yumyai/cgcfinder/pkg/db"
	"github.com/yumyai/cgcfinder/pkg/model"
)

// standardResult runs the finder over testdata/cgc_standard.gff with tp, distance 1
// and a 5000 bp limit.
func standardResult(t *testing.T) cgc.Result {
	t.Helper()

	contigs, err := db.LoadAnnotationFile(filepath.Join("testdata", "cgc_standard.gff"))
	require.NoError(t, err)

	return cgc.Finder{Mode: model.ModeTP, Distance: 1, BasePair: 5000}.Find(contigs)
}

// assertGolden fails with a unified diff when got differs from the golden file.
func assertGolden(t *testing.T, golden string, got []byte) {
	t.Helper()

	want, err := os.ReadFile(filepath.Join("testdata", golden))
	require.NoError(t, err)

	if bytes.Equal(want, got) {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(string(got)),
		FromFile: golden,
		ToFile:   "got",
		Context:  2,
	})
	t.Fatalf("output differs from %s:\n%s", golden, diff)
}

func TestWriteClustersUnfiltered(t *testing.T) {
	res := standardResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteClusters(&buf, res.Clusters, StreamUnfiltered))

	assertGolden(t, "output.golden", buf.Bytes())
}

func TestWriteClustersFiltered(t *testing.T) {
	res := standardResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteClusters(&buf, res.Filtered, StreamFiltered))

	assertGolden(t, "filtered_output.golden", buf.Bytes())
}

func TestWriteClustersEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteClusters(&buf, nil, StreamUnfiltered))
	require.Empty(t, buf.String())
}

func TestWriteResult(t *testing.T) {
	res := standardResult(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "output.txt")
	filtered := filepath.Join(dir, "filtered_output.txt")

	require.NoError(t, WriteResult(out, filtered, res))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assertGolden(t, "output.golden", got)

	got, err = os.ReadFile(filtered)
	require.NoError(t, err)
	assertGolden(t, "filtered_output.golden", got)
}

func TestWriteResultBadPath(t *testing.T) {
	res := standardResult(t)
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "output.txt")

	err := WriteResult(missing, missing, res)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "unfiltered"), err.Error())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, os.ErrClosed }

func TestWriteClustersPropagatesWriteError(t *testing.T) {
	res := standardResult(t)
	require.ErrorIs(t, WriteClusters(failingWriter{}, res.Clusters, StreamUnfiltered), os.ErrClosed)
}
