package cmd_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"deliveryfilter/cmd"
	"deliveryfilter/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runOrders = "11111111-1111-1111-1111-111111111111,5.0,123456,2024-01-01 10:00:00\n" +
	"22222222-2222-2222-2222-222222222222,5.0,999999,2024-01-01 10:10:00\n"

func newRunEnv(t *testing.T) (cmd.Env, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	return cmd.Env{
		ConfigPath: filepath.Join(dir, "config.json"),
		LogPath:    filepath.Join(dir, "log.txt"),
		TimeZone:   "UTC",
	}, &bytes.Buffer{}
}

func TestRun_WritesResult(t *testing.T) {
	env, console := newRunEnv(t)
	dir := filepath.Dir(env.LogPath)
	input := filepath.Join(dir, "orders.txt")
	result := filepath.Join(dir, "result.txt")
	require.NoError(t, os.WriteFile(input, []byte(runOrders), 0o600))
	require.NoError(t, os.WriteFile(env.ConfigPath, []byte(`{
		"DeliveryOrders": "`+filepath.ToSlash(input)+`",
		"IndexRegion": 123456,
		"FirstDeliveryTime": "2024-01-01 10:00:00",
		"ResultFilePath": "`+filepath.ToSlash(result)+`"
	}`), 0o600))

	code := cmd.Run(t.Context(), nil, env, logging.New(console, env.LogPath, slog.LevelInfo))

	assert.Equal(t, cmd.ExitOK, code)
	content, err := os.ReadFile(result)
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111, 5,123456, 2024-01-01 10:00:00\n", string(content))
}

func TestRun_LogsConfigurationErrorToFile(t *testing.T) {
	env, console := newRunEnv(t)

	code := cmd.Run(t.Context(), []string{"orders.txt", "north", "2024-01-01 10:00:00", ","}, env,
		logging.New(console, env.LogPath, slog.LevelInfo))

	assert.Equal(t, cmd.ExitFailure, code)
	logged, err := os.ReadFile(env.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "failed to load configuration")
	assert.Contains(t, string(logged), "invalid region index")
	assert.Contains(t, console.String(), "failed to load configuration")
}

func TestRun_MissingConfigFileFails(t *testing.T) {
	env, console := newRunEnv(t)

	code := cmd.Run(t.Context(), nil, env, logging.New(console, env.LogPath, slog.LevelInfo))

	assert.Equal(t, cmd.ExitFailure, code)
	assert.Contains(t, console.String(), "failed to load configuration")
}

func TestRun_InvalidRegionFails(t *testing.T) {
	env, console := newRunEnv(t)
	input := filepath.Join(filepath.Dir(env.LogPath), "orders.txt")
	require.NoError(t, os.WriteFile(input, []byte(runOrders), 0o600))

	code := cmd.Run(t.Context(), []string{input, "12345", "2024-01-01 10:00:00", ","}, env,
		logging.New(console, "", slog.LevelInfo))

	assert.Equal(t, cmd.ExitFailure, code)
	assert.Contains(t, console.String(), "run failed")
}

func TestRun_WriteFailureEndsCleanly(t *testing.T) {
	env, console := newRunEnv(t)
	dir := filepath.Dir(env.LogPath)
	input := filepath.Join(dir, "orders.txt")
	require.NoError(t, os.WriteFile(input, []byte(runOrders), 0o600))
	require.NoError(t, os.WriteFile(env.ConfigPath, []byte(`{
		"DeliveryOrders": "`+filepath.ToSlash(input)+`",
		"IndexRegion": 123456,
		"FirstDeliveryTime": "2024-01-01 10:00:00",
		"ResultFilePath": "`+filepath.ToSlash(filepath.Join(dir, "missing", "result.txt"))+`"
	}`), 0o600))

	code := cmd.Run(t.Context(), nil, env, logging.New(console, env.LogPath, slog.LevelInfo))

	assert.Equal(t, cmd.ExitOK, code)
	assert.Contains(t, console.String(), "failed to save orders")
	assert.Contains(t, console.String(), "stage=Stopped")
}
