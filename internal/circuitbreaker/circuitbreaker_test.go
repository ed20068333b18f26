//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

func fail() error    { return errStore }
func succeed() error { return nil }

func newTestBreaker(failures, successes int) *CircuitBreaker {
	return New(Config{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          50 * time.Millisecond,
		Name:             "test",
	})
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig())

	err := cb.Execute(context.Background(), succeed)

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := newTestBreaker(2, 1)

	assert.ErrorIs(t, cb.Execute(context.Background(), fail), errStore)
	assert.Equal(t, StateClosed, cb.State())

	assert.ErrorIs(t, cb.Execute(context.Background(), fail), errStore)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := newTestBreaker(2, 1)

	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), succeed)
	_ = cb.Execute(context.Background(), fail)

	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := newTestBreaker(1, 2)

	_ = cb.Execute(context.Background(), fail)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	require.NoError(t, cb.Execute(context.Background(), succeed))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(context.Background(), succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := newTestBreaker(2, 2)

	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), fail)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	assert.Error(t, cb.Execute(context.Background(), fail))
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_IgnoredErrors(t *testing.T) {
	errMissing := errors.New("missing")
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
		IsFailure:        func(err error) bool { return !errors.Is(err, errMissing) },
	})

	err := cb.Execute(context.Background(), func() error { return errMissing })

	assert.ErrorIs(t, err, errMissing)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_CancelledContext(t *testing.T) {
	cb := newTestBreaker(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := newTestBreaker(3, 1)

	stats := cb.GetStats()
	assert.Equal(t, "test", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Zero(t, stats.FailureCount)

	_ = cb.Execute(context.Background(), fail)

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestCircuitBreaker_IsOpen(t *testing.T) {
	cb := newTestBreaker(1, 1)
	assert.False(t, cb.IsOpen())

	_ = cb.Execute(context.Background(), fail)

	assert.True(t, cb.IsOpen())
}

func TestNew_NormalizesThresholds(t *testing.T) {
	cb := New(Config{Name: "test"})

	_ = cb.Execute(context.Background(), fail)
	assert.True(t, cb.IsOpen())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.FailureThreshold)
	assert.Equal(t, 2, config.SuccessThreshold)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "mongodb", config.Name)
}
