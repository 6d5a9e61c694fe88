package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"codeberg.org/algopatterns/apierrors/apierr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := Default()
	SetDefault(New("production", &buf))
	t.Cleanup(func() { SetDefault(previous) })

	return &buf
}

func TestNew_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	New("production", &buf).Info("hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "v", line["k"])
}

func TestNew_DevelopmentIsTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	New("development", &buf).Debug("hello")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestAPIError_SensitiveIncludesStackAndInfo(t *testing.T) {
	buf := captureJSON(t)

	err := apierr.NewConnectionError("dial tcp: connection refused").
		WithInfo(map[string]any{"host": "db.internal"})
	APIError(context.Background(), err, "request failed", "path", "/things")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "request failed", line["msg"])
	assert.Equal(t, "/things", line["path"])
	assert.Equal(t, "ConnectionError", line["kind"])
	assert.Equal(t, float64(503), line["status"])
	assert.Equal(t, "ERR_CONNECTION_ERROR", line["code"])
	assert.Equal(t, "dial tcp: connection refused", line["error"])
	assert.Equal(t, map[string]any{"host": "db.internal"}, line["info"])

	stack, ok := line["stack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, stack)
	assert.Equal(t, "ConnectionError: dial tcp: connection refused", stack[0])
}

func TestAPIError_SafeLoggedAtDebug(t *testing.T) {
	buf := captureJSON(t)

	APIError(context.Background(), apierr.NewNotFoundError("no such user"), "request failed")

	// production handler runs at INFO, so the debug entry is dropped
	assert.Empty(t, strings.TrimSpace(buf.String()))
}

func TestAPIError_NilIsIgnored(t *testing.T) {
	buf := captureJSON(t)

	APIError(context.Background(), nil, "request failed")

	assert.Empty(t, buf.String())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New("production", &buf)

	ctx := WithContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
	assert.Same(t, Default(), FromContext(context.Background()))
}
