package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func failingConfig() Config {
	return Config{
		FailureThreshold:    3,
		SuccessThreshold:    2,
		Timeout:             50 * time.Millisecond,
		HalfOpenMaxRequests: 2,
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := New(failingConfig())

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return errBoom })
		assert.ErrorIs(t, err, errBoom)
	}

	err := cb.Execute(func() error { return nil })
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.Equal(t, StateOpen, cb.GetState())
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := New(failingConfig())

	require.Error(t, cb.Execute(func() error { return errBoom }))
	require.Error(t, cb.Execute(func() error { return errBoom }))
	require.NoError(t, cb.Execute(func() error { return nil }))

	// counter was reset, two more failures are not enough to open
	require.Error(t, cb.Execute(func() error { return errBoom }))
	require.Error(t, cb.Execute(func() error { return errBoom }))
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestBreaker_RecoversThroughHalfOpen(t *testing.T) {
	cb := New(failingConfig())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errBoom })
	}
	require.Equal(t, StateOpen, cb.GetState())

	time.Sleep(60 * time.Millisecond)

	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))

	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(failingConfig())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errBoom })
	}

	time.Sleep(60 * time.Millisecond)

	require.ErrorIs(t, cb.Execute(func() error { return errBoom }), errBoom)
	assert.Equal(t, StateOpen, cb.GetState())
}

func TestBreaker_OpenWindowStartsAtOpeningFailure(t *testing.T) {
	cb := New(failingConfig())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errBoom })
	}
	// open is observable right away, without another Execute
	require.Equal(t, StateOpen, cb.GetState())

	time.Sleep(60 * time.Millisecond)

	// the timeout is measured from the opening failure, so the first
	// retry afterwards must probe instead of being rejected
	ran := false
	assert.NoError(t, cb.Execute(func() error { ran = true; return nil }))
	assert.True(t, ran)
}

func TestBreaker_Reset(t *testing.T) {
	cb := New(failingConfig())
	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errBoom })
	}
	require.Equal(t, StateOpen, cb.GetState())

	cb.Reset()
	assert.Equal(t, StateClosed, cb.GetState())
	assert.NoError(t, cb.Execute(func() error { return nil }))
}
