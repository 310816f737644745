package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/five82/taqvim/internal/logging"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taqvim.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func messages(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func TestTail(t *testing.T) {
	var lines []string
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("2023-03-21T10:00:0%dZ\tINFO\tapp/app.go:1\tline %d", i%10, i))
	}
	path := writeLog(t, lines...)

	tests := []struct {
		name string
		n    int
		want int
		last string
	}{
		{"all", 0, 10, "line 10"},
		{"negative", -1, 10, "line 10"},
		{"partial", 4, 4, "line 10"},
		{"exact", 10, 10, "line 10"},
		{"more than file", 20, 10, "line 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(path, tt.n, zapcore.DebugLevel)
			require.NoError(t, err)
			require.Len(t, got, tt.want)
			assert.Equal(t, tt.last, got[len(got)-1].Message)
		})
	}

	got, err := Tail(path, 3, zapcore.DebugLevel)
	require.NoError(t, err)
	assert.Equal(t, []string{"line 8", "line 9", "line 10"}, messages(got))
}

func TestTail_FiltersByLevel(t *testing.T) {
	path := writeLog(t,
		"2023-03-21T10:00:00Z\tDEBUG\tapp/poller.go:40\trefreshed",
		"2023-03-21T10:00:01Z\tWARN\tui/app.go:300\tsave prefs\t{\"path\": \"/tmp/x\"}",
		"2023-03-21T10:00:02Z\tINFO\tapp/poller.go:50\tday rolled over\t{\"component\": \"poller\"}",
		"2023-03-21T10:00:03Z\tERROR\tserver/server.go:90\trequest failed",
	)

	got, err := Tail(path, 0, zapcore.WarnLevel)
	require.NoError(t, err)
	assert.Equal(t, []string{"save prefs", "request failed"}, messages(got))

	got, err = Tail(path, 1, zapcore.InfoLevel)
	require.NoError(t, err)
	assert.Equal(t, []string{"request failed"}, messages(got))
}

func TestTail_MissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "none.log"), 10, zapcore.DebugLevel)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParse(t *testing.T) {
	e := Parse("2023-03-21T10:00:02.000Z\tINFO\tapp/poller.go:50\tday rolled over\t{\"component\": \"poller\", \"rollovers\": 1}")
	assert.Equal(t, zapcore.InfoLevel, e.Level)
	assert.Equal(t, "2023-03-21T10:00:02.000Z", e.Time)
	assert.Equal(t, "day rolled over", e.Message)
	assert.Equal(t, "poller", e.Component)

	noCaller := Parse("2023-03-21T10:00:02.000Z\tWARN\tjump rejected")
	assert.Equal(t, zapcore.WarnLevel, noCaller.Level)
	assert.Equal(t, "jump rejected", noCaller.Message)

	plain := Parse("panic: something odd")
	assert.Equal(t, zapcore.InfoLevel, plain.Level)
	assert.Empty(t, plain.Message)
	assert.Equal(t, "panic: something odd", plain.Raw)
}

func TestParse_JSON(t *testing.T) {
	e := Parse(`{"level":"error","ts":1679392800.5,"caller":"server/server.go:90","msg":"request failed","component":"server"}`)
	assert.Equal(t, zapcore.ErrorLevel, e.Level)
	assert.Equal(t, "1679392800.5", e.Time)
	assert.Equal(t, "request failed", e.Message)
	assert.Equal(t, "server", e.Component)
}

func TestTail_ReadsLoggerOutput(t *testing.T) {
	for _, asJSON := range []bool{false, true} {
		t.Run(fmt.Sprintf("json=%v", asJSON), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "taqvim.log")
			logger, err := logging.New(logging.Options{Level: "debug", JSON: asJSON, File: path})
			require.NoError(t, err)

			logging.WithComponent(logger, "poller").Info("day rolled over", zap.Int("rollovers", 1))
			logger.Debug("tick")
			_ = logger.Sync()

			got, err := Tail(path, 5, zapcore.InfoLevel)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "day rolled over", got[0].Message)
			assert.Equal(t, "poller", got[0].Component)
		})
	}
}

func TestColorize(t *testing.T) {
	e := Entry{Time: "10:00", Level: zapcore.WarnLevel, Component: "ui", Message: "save prefs"}
	got := Colorize(e)
	assert.Contains(t, got, "WARN")
	assert.Contains(t, got, "[ui]")
	assert.Contains(t, got, "save prefs")

	assert.Equal(t, "raw line", Colorize(Entry{Raw: "raw line"}))
}
