package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithWriter_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "warn", "json")
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept", zap.String("page", "home"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "home", entry["page"])
}

func TestNewWithWriter_Defaults(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "", "")
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_RejectsBadInput(t *testing.T) {
	_, err := New("loud", "console")
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.Error(t, err)
}

func TestInstall_RoutesGlobals(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "info", "console")
	require.NoError(t, err)

	restore := Install(l)
	zap.S().Info("via globals")
	restore()

	assert.Contains(t, buf.String(), "via globals")
}
