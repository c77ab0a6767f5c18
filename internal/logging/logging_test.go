package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONLevels(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := New(Config{JSON: true, Level: "warn"}, &buf, "numerado")
	require.NoError(t, err)
	defer closeFn()

	log.Info().Msg("hidden")
	log.Warn().Str(Format, "roman").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"format":"roman"`)
	assert.Contains(t, out, `"app":"numerado"`)
}

func TestNew_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Config{JSON: true}, &buf, "")
	require.NoError(t, err)

	log.Debug().Msg("debug line")
	log.Info().Msg("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "numerado.log")
	log, closeFn, err := New(Config{JSON: true, File: path}, nil, "numerado")
	require.NoError(t, err)

	log.Info().Msg("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
