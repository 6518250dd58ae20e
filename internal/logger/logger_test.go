package logger

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Run fn with stderr redirected to a pipe and return what was written
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err, "failed to create stderr pipe")

	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

// Decode JSON log line or extract key=value pairs from text line
func parseLine(t *testing.T, env string, line string) map[string]any {
	t.Helper()

	entry := map[string]any{}
	if env == EnvProduction {
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "prod logs must be JSON: %s", line)
		return entry
	}

	rest := line
	for {
		rest = strings.TrimLeft(rest, " ")
		key, value, ok := strings.Cut(rest, "=")
		if !ok {
			return entry
		}

		if strings.HasPrefix(value, `"`) {
			quoted, err := strconv.QuotedPrefix(value)
			require.NoError(t, err)
			entry[key], err = strconv.Unquote(quoted)
			require.NoError(t, err)
			rest = value[len(quoted):]
			continue
		}

		entry[key], rest, _ = strings.Cut(value, " ")
	}
}

func TestNew(t *testing.T) {
	for _, env := range []string{EnvDevelopment, EnvProduction} {
		t.Run(env, func(t *testing.T) {
			t.Run("writes fields with caller source", func(t *testing.T) {
				out := captureStderr(t, func() {
					l, err := New(env, LevelInfo)
					require.NoError(t, err)

					l.With("component", "board").Info("Post liked", "username", "alice")
				})

				entry := parseLine(t, env, strings.TrimSpace(out))
				require.Equal(t, "INFO", entry["level"])
				require.Equal(t, "Post liked", entry["msg"])
				require.Equal(t, "alice", entry["username"])
				require.Equal(t, "board", entry["component"])
				require.Contains(t, out, "logger_test.go", "source should point to the caller, not the wrapper")
			})

			levels := []struct {
				level  string
				logged []string
			}{
				{LevelDebug, []string{"debug", "info", "warn", "error"}},
				{LevelInfo, []string{"info", "warn", "error"}},
				{LevelWarn, []string{"warn", "error"}},
				{LevelError, []string{"error"}},
			}
			for _, tt := range levels {
				t.Run("level "+tt.level, func(t *testing.T) {
					out := captureStderr(t, func() {
						l, err := New(env, tt.level)
						require.NoError(t, err)

						l.Debug("debug")
						l.Info("info")
						l.Warn("warn")
						l.Error("error")
					})

					var got []string
					for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
						if line == "" {
							continue
						}
						got = append(got, parseLine(t, env, line)["msg"].(string))
					}
					require.Equal(t, tt.logged, got)
				})
			}
		})
	}

	t.Run("prod groups attributes", func(t *testing.T) {
		out := captureStderr(t, func() {
			l, err := New(EnvProduction, LevelInfo)
			require.NoError(t, err)

			l.WithGroup("request").Error("Internal error", "status", 500)
		})

		entry := parseLine(t, EnvProduction, out)
		require.Equal(t, map[string]any{"status": float64(500)}, entry["request"])
	})

	t.Run("unknown environment", func(t *testing.T) {
		_, err := New("staging", LevelInfo)
		require.Error(t, err)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := New(EnvDevelopment, "verbose")
		require.Error(t, err)
	})
}

func TestNewNoOpLogger(t *testing.T) {
	out := captureStderr(t, func() {
		l := NewNoOpLogger().With("username", "alice")
		l.Error("never shown")
	})

	require.Empty(t, out)
}

func Test_parseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"Warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"", slog.LevelInfo, true},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLevel(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}
