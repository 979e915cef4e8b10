package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumyai/cgcfinder/config"
	"github.com/yumyai/cgcfinder/pkg/db"
)

var standardInput = filepath.Join("testdata", "cgc_standard.gff")

// execute runs a fresh root command with args and returns its error.
func execute(t *testing.T, args ...string) error {
	t.Helper()

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func assertSameFile(t *testing.T, golden, path string) {
	t.Helper()

	want, err := os.ReadFile(filepath.Join("testdata", golden))
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)

	if bytes.Equal(want, got) {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(string(got)),
		FromFile: golden,
		ToFile:   path,
		Context:  2,
	})
	t.Fatalf("%s differs from %s:\n%s", path, golden, diff)
}

func TestRootEndToEnd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "output.txt")
	filtered := filepath.Join(dir, "filtered_output.txt")
	logFile := filepath.Join(dir, "cgc_finder.log")
	dbPath := filepath.Join(dir, "cgc.db")
	svg := filepath.Join(dir, "genes.svg")

	err := execute(t,
		"-s", "tp", "-d", "1", "-b", "5000",
		"-o", out, "-f", filtered,
		"--log-file", logFile,
		"--db", dbPath,
		"--plot", svg,
		standardInput)
	require.NoError(t, err)

	assertSameFile(t, "output.golden", out)
	assertSameFile(t, "filtered_output.golden", filtered)

	log, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(log), "Done")

	plot, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(plot), "<svg"))

	store, err := db.OpenClusterDB(dbPath)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.ListRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "tp", runs[0].Mode)
	assert.Equal(t, 3, runs[0].Clusters)
	assert.Equal(t, 2, runs[0].Filtered)
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "cgc.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("siggenes: tp\ndistance: 1\nbase_pair: 5000\n"), 0o644))

	out := filepath.Join(dir, "output.txt")
	filtered := filepath.Join(dir, "filtered_output.txt")

	err := execute(t,
		"--config", settings,
		"--log-file", "",
		"-o", out, "-f", filtered,
		standardInput)
	require.NoError(t, err)

	assertSameFile(t, "output.golden", out)
	assertSameFile(t, "filtered_output.golden", filtered)
}

func TestRootInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative distance", []string{"--distance=-1"}},
		{"negative base pair", []string{"--base_pair=-5"}},
		{"unknown mode", []string{"-s", "tp+xx"}},
		{"same outputs", []string{"-f", "SAME"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			out := filepath.Join(dir, "output.txt")

			args := []string{"--log-file", "", "-o", out}
			for _, a := range tt.args {
				if a == "SAME" {
					a = out
				}
				args = append(args, a)
			}
			if !contains(args, "-f") {
				args = append(args, "-f", filepath.Join(dir, "filtered.txt"))
			}
			args = append(args, standardInput)

			err := execute(t, args...)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.NoFileExists(t, out)
		})
	}
}

func TestRootMissingInput(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, "--log-file", "", "-o", filepath.Join(dir, "o.txt"), "-f", filepath.Join(dir, "f.txt"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	err = execute(t, "--log-file", "", filepath.Join(dir, "absent.gff"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRootMalformedInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.gff")
	require.NoError(t, os.WriteFile(input, []byte("C1\tdbCAN\tCAZyme\tabc\t200\t.\t+\t.\tID=g1\n"), 0o644))
	out := filepath.Join(dir, "output.txt")

	err := execute(t, "--log-file", "", "-o", out, "-f", filepath.Join(dir, "f.txt"), input)
	require.ErrorIs(t, err, db.ErrMalformedRow)
	assert.NoFileExists(t, out)
}

func TestServeNeedsDatabase(t *testing.T) {
	err := execute(t, "serve", "--log-file", "")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	err = execute(t, "serve", "--log-file", "", "--db", filepath.Join(t.TempDir(), "absent.db"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewServer(t *testing.T) {
	store, err := db.OpenClusterDB(filepath.Join(t.TempDir(), "cgc.db"))
	require.NoError(t, err)
	defer store.Close()

	srv := newServer("127.0.0.1:0", store)

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("X-Request-ID"), "req-"))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
