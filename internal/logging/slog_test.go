package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger_WritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(&buf)

	log.Info(context.Background(), "listing fetched", "count", 3)

	out := buf.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, `msg="listing fetched"`)
	require.Contains(t, out, "count=3")
}

func TestSlogLogger_WithAddsPersistentFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(&buf).With("component", "session")

	log.Warn(context.Background(), "token lookup failed")

	out := buf.String()
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "component=session")
}

func TestSlogLogger_DefaultLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(&buf)

	log.Debug(context.Background(), "noisy detail")
	require.Empty(t, buf.String())
}
