package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info().Str("stage", "parse").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "parse", entry["stage"])
	assert.NotEmpty(t, entry["time"])
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	ctx := WithContext(context.Background(), log)
	got := FromContext(ctx)
	got.Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}

func TestFromContextWithoutLogger(t *testing.T) {
	// Must not panic; falls back to a default logger.
	log := FromContext(context.Background())
	log.Debug().Msg("default logger works")
}
