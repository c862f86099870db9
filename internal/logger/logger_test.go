package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	captureOutput(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name     string
		log      func()
		expected string
	}{
		{"debug", func() { Debug("rule %s matched", "rate") }, "[DEBUG] rule rate matched\n"},
		{"info", func() { Info("extracted %d documents", 2) }, "[INFO] extracted 2 documents\n"},
		{"warn", func() { Warn("skipping %s", "p1.txt") }, "[WARN] skipping p1.txt\n"},
		{"error", func() { Error("write failed") }, "[ERROR] write failed\n"},
		{"section", func() { Section("Extraction") }, "\n=== Extraction ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t, true)
			tt.log()
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := captureOutput(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := captureOutput(t, false)

	Error("table %s is malformed", "data.csv")

	assert.Equal(t, "[ERROR] table data.csv is malformed\n", buf.String())
}

func TestConcurrentAccess(t *testing.T) {
	buf := captureOutput(t, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Debug("concurrent %d", n)
			IsVerbose()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, bytes.Count(buf.Bytes(), []byte("\n")))
}
