//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/container-quote/config"
	"github.com/guttosm/container-quote/internal/repository"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	assert.Nil(t, InitializeDatabase(config.DatabaseConfig{Enabled: false}))
}

func TestBreakerConfig(t *testing.T) {
	tests := []struct {
		name             string
		cfg              config.DatabaseConfig
		expectedFailures int
		expectedSuccess  int
		expectedTimeout  time.Duration
	}{
		{
			name: "configured thresholds",
			cfg: config.DatabaseConfig{
				CircuitBreakerFailureThreshold: 3,
				CircuitBreakerSuccessThreshold: 1,
				CircuitBreakerTimeout:          time.Second,
			},
			expectedFailures: 3,
			expectedSuccess:  1,
			expectedTimeout:  time.Second,
		},
		{
			name:             "zero values use defaults",
			cfg:              config.DatabaseConfig{},
			expectedFailures: 5,
			expectedSuccess:  2,
			expectedTimeout:  30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := breakerConfig(tt.cfg, "mongodb-test")
			assert.Equal(t, "mongodb-test", c.Name)
			assert.Equal(t, tt.expectedFailures, c.FailureThreshold)
			assert.Equal(t, tt.expectedSuccess, c.SuccessThreshold)
			assert.Equal(t, tt.expectedTimeout, c.Timeout)

			assert.False(t, c.IsFailure(repository.ErrScenarioNotFound))
			assert.False(t, c.IsFailure(context.Canceled))
			assert.True(t, c.IsFailure(errors.New("connection refused")))
		})
	}
}

func TestDatabaseComponents_CloseNil(t *testing.T) {
	var components *DatabaseComponents
	assert.NoError(t, components.Close(context.Background()))
}
