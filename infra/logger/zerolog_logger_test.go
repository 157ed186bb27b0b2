package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := NewZerologLogger("test", Config{Level: "debug"})
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newZerolog(&buf, "search", Config{Level: "info", Format: "json"})
	l.Debugf("hidden")
	l.Infof("grid %d", 8)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "search", line["component"])
	assert.Equal(t, "grid 8", line["message"])
	assert.Equal(t, "info", line["level"])
}

func TestZerologLoggerBadLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newZerolog(&buf, "x", Config{Level: "loud", Format: "json"})
	l.Debugf("hidden")
	assert.Zero(t, buf.Len())
	l.Warnf("shown")
	assert.NotZero(t, buf.Len())
}
