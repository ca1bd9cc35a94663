package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitToJSON(t *testing.T) {
	var buf bytes.Buffer
	InitTo(&buf, "debug", "json")
	t.Cleanup(func() { InitTo(&bytes.Buffer{}, "info", "text") })

	System("mode").WithField("to", "level").Debug("transition")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "mode", entry["system"])
	assert.Equal(t, "level", entry["to"])
	assert.Equal(t, "transition", entry["msg"])
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitTo(&buf, "loud", "text")
	t.Cleanup(func() { InitTo(&bytes.Buffer{}, "info", "text") })

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	Log.Debug("hidden")
	assert.Empty(t, buf.String())
}
