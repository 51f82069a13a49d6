package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogKeepsLinesAndAppendsToFile(t *testing.T) {
	chdir(t, t.TempDir())
	l := New()
	l.Log("tick 0: 2 bodies")
	l.Log("pos:{0 100 0} mass:200 vel:{10 0 0}")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "tick 0: 2 bodies")
	assert.Contains(t, lines[1], "mass:200")

	data, err := os.ReadFile(LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick 0: 2 bodies")
}

func TestLinesReturnsCopy(t *testing.T) {
	chdir(t, t.TempDir())
	l := New()
	l.Log("one")
	lines := l.Lines()
	lines[0] = "mutated"
	assert.Contains(t, l.Lines()[0], "one")
}

// chdir is the Go <1.24 equivalent of t.Chdir: change into dir for the
// duration of the test and restore the previous working directory after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
