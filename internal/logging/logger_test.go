package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, DEBUG, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, INFO, level, "пустая строка означает INFO")

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLoggerConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("world", Options{ConsoleLevel: WARN, FileLevel: ERROR, Console: &buf})
	require.NoError(t, err)

	l.Info("не должно попасть в вывод")
	l.Warn("очередь %d", 42)

	out := buf.String()
	assert.NotContains(t, out, "не должно")
	assert.Contains(t, out, "[WARN] [world] очередь 42")
}

func TestLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	l, err := NewLogger("sandbox", Options{Dir: dir, ConsoleLevel: ERROR, FileLevel: DEBUG, Console: &buf})
	require.NoError(t, err)

	l.Debug("чанк %s создан", "(0,0)")
	require.NoError(t, l.Close())

	files, err := filepath.Glob(filepath.Join(dir, "sandbox_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "[DEBUG] [sandbox] чанк (0,0) создан"))
	assert.Empty(t, buf.String(), "DEBUG не должен попадать в консоль при уровне ERROR")
}

func TestLoggerManagerReusesLoggers(t *testing.T) {
	lm := NewLoggerManager(Options{Console: &bytes.Buffer{}})

	a, err := lm.GetLogger("world")
	require.NoError(t, err)
	b, err := lm.GetLogger("world")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.ElementsMatch(t, []string{"world"}, lm.ListComponents())

	assert.Error(t, lm.SetLogLevel("missing", INFO, INFO))
	assert.NoError(t, lm.SetLogLevel("world", DEBUG, DEBUG))
	assert.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}
