package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/fixhook/fixhook/internal/adapters/outbound/logging"
)

func TestNew_WritesPlainConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf)

	log.Debug().Str("endpoint", "http://localhost:5678/webhook/fix").Msg("sending fix request")

	out := buf.String()
	assert.Contains(t, out, "sending fix request")
	assert.Contains(t, out, "endpoint=http://localhost:5678/webhook/fix")
	assert.NotContains(t, out, "\x1b[", "buffers are not terminals")
}

func TestNew_LevelCanBeNarrowed(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf).Level(zerolog.WarnLevel)

	log.Debug().Msg("hidden")
	log.Error().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
