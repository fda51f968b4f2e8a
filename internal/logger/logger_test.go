package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("production", "", &buf)
	require.NoError(t, err)

	l.Info("hello", slog.String("key", "value"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestNew_DevelopmentEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("development", "", &buf)
	require.NoError(t, err)

	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestNew_LevelOverride(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("development", "warn", &buf)
	require.NoError(t, err)

	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelWarn))
}

func TestNew_Errors(t *testing.T) {
	_, err := New("staging", "", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("production", "loud", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTraceIDContext(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "abc-123")

	assert.Equal(t, "abc-123", TraceIDFromContext(ctx))
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
	assert.Equal(t, "", TraceIDFromContext(nil))
}
