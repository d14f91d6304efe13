package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture redirects logger output to a buffer for the duration of a test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return buf
}

func TestVerboseToggle(t *testing.T) {
	buf := capture(t)

	SetVerbose(false)
	assert.False(t, IsVerbose())
	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")
	Section("hidden")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	assert.True(t, IsVerbose())
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "[DEBUG] shown 2")
}

func TestLevels(t *testing.T) {
	buf := capture(t)
	SetVerbose(true)

	Info("info %s", "msg")
	Warn("warn %s", "msg")
	Section("Team Run")

	out := buf.String()
	assert.Contains(t, out, "[INFO] info msg")
	assert.Contains(t, out, "[WARN] warn msg")
	assert.Contains(t, out, "=== Team Run ===")
}
