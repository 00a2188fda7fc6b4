package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"deliveryfilter/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesConsoleAndFile(t *testing.T) {
	console := &bytes.Buffer{}
	logPath := filepath.Join(t.TempDir(), "ConfigurationFiles", "log.txt")

	logger := logging.New(console, logPath, slog.LevelInfo)
	logger.With("component", "test").Info("program started", "orders", 2)
	logger.Debug("hidden")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	for _, out := range []string{console.String(), string(content)} {
		assert.Contains(t, out, `msg="program started"`)
		assert.Contains(t, out, "component=test")
		assert.Contains(t, out, "orders=2")
		assert.NotContains(t, out, "hidden")
		assert.Regexp(t, regexp.MustCompile(`time="\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}"`), out)
	}
}

func TestNew_ConsoleOnly(t *testing.T) {
	console := &bytes.Buffer{}

	logger := logging.New(console, "", slog.LevelDebug)
	logger.Debug("details")

	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.Contains(t, console.String(), "details")
}

func TestAppendFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	f := logging.NewAppendFile(path)

	_, err := f.Write([]byte("first\n"))
	require.NoError(t, err)
	_, err = f.Write([]byte("second\n"))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", ""}, strings.Split(string(content), "\n"))
}

func TestAppendFile_ReportsFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := logging.NewAppendFile(filepath.Join(blocker, "log.txt")).Write([]byte("x"))

	require.Error(t, err)
}
