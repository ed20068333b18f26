//go:build !integration

package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	tests := []struct {
		name          string
		level         string
		pretty        bool
		expectedLevel zerolog.Level
	}{
		{name: "debug level", level: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", level: "info", expectedLevel: zerolog.InfoLevel},
		{name: "warn level", level: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "error level", level: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "empty level defaults to info", level: "", expectedLevel: zerolog.InfoLevel},
		{name: "invalid level defaults to info", level: "loud", expectedLevel: zerolog.InfoLevel},
		{name: "pretty output", level: "info", pretty: true, expectedLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func TestFor(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).With().Str("service", ServiceName).Logger()

	For("catalog").Info().Msg("catalog saved")

	assert.Contains(t, buf.String(), `"service":"container-quote"`)
	assert.Contains(t, buf.String(), `"component":"catalog"`)
	assert.Contains(t, buf.String(), `"message":"catalog saved"`)
}

func TestLogger(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	l := Logger()
	l.Info().Str("path", "/api/quotes").Msg("request")

	assert.Contains(t, buf.String(), `"path":"/api/quotes"`)
}
