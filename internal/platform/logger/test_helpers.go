package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Capture collects the JSON lines written by a test logger. It is safe
// for concurrent writers.
type Capture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (c *Capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *Capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Entries decodes every captured record.
func (c *Capture) Entries() ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewBufferString(c.String()))
	var entries []map[string]any
	for {
		var entry map[string]any
		err := dec.Decode(&entry)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}

// GetTestLogger returns a debug level JSON logger and the capture it writes to.
func GetTestLogger(t *testing.T) (*slog.Logger, *Capture) {
	t.Helper()
	capture := &Capture{}
	return New(capture, slog.LevelDebug), capture
}

// NewTestContext returns a context carrying a capturing logger.
func NewTestContext(t *testing.T) (context.Context, *Capture) {
	t.Helper()
	log, capture := GetTestLogger(t)
	return WithLogger(context.Background(), log), capture
}

func AssertLogContains(t *testing.T, capture *Capture, content string) {
	t.Helper()
	assert.Contains(t, capture.String(), content, "captured log output")
}

// AssertLogField fails unless some record has field set to expected.
// Numbers decode as float64.
func AssertLogField(t *testing.T, capture *Capture, field string, expected any) {
	t.Helper()

	entries, err := capture.Entries()
	require.NoError(t, err)
	require.NotEmpty(t, entries, "no log records captured")

	for _, entry := range entries {
		if value, ok := entry[field]; ok && value == expected {
			return
		}
	}
	assert.Failf(t, "log field not found", "no record has %s=%v\n%s", field, expected, capture.String())
}
