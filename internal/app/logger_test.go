//go:build !integration

package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/container-quote/config"
)

func TestInitializeLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		name          string
		cfg           config.LogConfig
		expectedLevel zerolog.Level
	}{
		{"empty level defaults to info", config.LogConfig{}, zerolog.InfoLevel},
		{"debug", config.LogConfig{Level: "debug"}, zerolog.DebugLevel},
		{"warn with pretty output", config.LogConfig{Level: "warn", Pretty: true}, zerolog.WarnLevel},
		{"error", config.LogConfig{Level: "error"}, zerolog.ErrorLevel},
		{"unknown level falls back to info", config.LogConfig{Level: "verbose"}, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
