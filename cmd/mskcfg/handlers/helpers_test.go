package handlers

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureOutput redirects stdout while fn runs and returns what was printed.
func captureOutput(fn func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrintRow(t *testing.T) {
	output := captureOutput(func() {
		printRow("kafka version", true, "2.8.1")
		printRow("brokers", false, "count must be positive")
	})

	assert.Contains(t, output, "ok")
	assert.Contains(t, output, "kafka version")
	assert.Contains(t, output, "2.8.1")
	assert.Contains(t, output, "FAIL")
	assert.Contains(t, output, "count must be positive")
}
