package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlaylist(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseConfig([]string{"a.m3u8", "b.m3u8"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Threads)
	assert.False(t, cfg.Summary)
	assert.Empty(t, cfg.MetricsFile)
	assert.Equal(t, []string{"a.m3u8", "b.m3u8"}, cfg.Files)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("M3U8LINT_THREADS", "3")
	t.Setenv("M3U8LINT_SUMMARY", "yes")
	t.Setenv("M3U8LINT_METRICS_FILE", "/tmp/m3u8.prom")

	var stderr bytes.Buffer
	cfg, err := parseConfig([]string{"a.m3u8"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Threads)
	assert.True(t, cfg.Summary)
	assert.Equal(t, "/tmp/m3u8.prom", cfg.MetricsFile)

	cfg, err = parseConfig([]string{"-threads", "5", "-summary=false", "a.m3u8"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Threads)
	assert.False(t, cfg.Summary)
}

func TestParseConfigErrors(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseConfig(nil, &stderr)
	assert.ErrorIs(t, err, errNoFiles)
	assert.Contains(t, stderr.String(), "usage: m3u8lint")

	_, err = parseConfig([]string{"-v", "-q", "a.m3u8"}, &stderr)
	assert.Error(t, err)

	cfg, err := parseConfig([]string{"-threads", "0", "a.m3u8"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Threads)
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("M3U8LINT_TEST_INT", "nope")
	assert.Equal(t, 7, getEnvInt("M3U8LINT_TEST_INT", 7))
	t.Setenv("M3U8LINT_TEST_INT", "12")
	assert.Equal(t, 12, getEnvInt("M3U8LINT_TEST_INT", 7))
}

func TestRunPrintsLines(t *testing.T) {
	dir := t.TempDir()
	path := writePlaylist(t, dir, "good.m3u8", "#EXTM3U\n#EXTINF:10,\nsegment1.ts\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-q", path}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t,
		path+":0\ttag\t#EXTM3U\n"+
			path+":1\ttag\t#EXTINF:10,\n"+
			path+":2\turi\tsegment1.ts\n",
		stdout.String())
}

func TestRunSummaryAndFailures(t *testing.T) {
	dir := t.TempDir()
	good := writePlaylist(t, dir, "good.m3u8", "#EXTM3U\n# note\n\xC3\nsegment1.ts\n")
	bad := writePlaylist(t, dir, "bad.m3u8", "\xEF\xBB\xBF#EXTM3U\n")
	metricsFile := filepath.Join(dir, "m3u8.prom")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-summary", "-metrics-file", metricsFile, good, bad}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Equal(t, good+": 3 lines (1 tags, 1 comments, 1 uris, 0 blank), 1 warnings\n", stdout.String())
	assert.Contains(t, stderr.String(), good+": warning: line 3: byte 0: invalid utf-8")
	assert.Contains(t, stderr.String(), bad+": ")
	assert.Contains(t, stderr.String(), "byte order mark")

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `m3u8_passes_total{outcome="bom"}`)
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Equal(t, 0, run([]string{"-h"}, &stdout, &stderr))
}
