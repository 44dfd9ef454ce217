package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastellanos/flotilla/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zl, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"}, nil)
	require.NoError(t, err)
	return zl
}

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, testLogger(t), 8080)
	require.NotNil(t, gs)
}

func TestGracefulServer_Shutdown(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, testLogger(t), 0)

	go func() {
		if err := e.Start(":0"); err != nil && err != http.ErrServerClosed {
			t.Errorf("unexpected server error: %v", err)
		}
	}()
	time.Sleep(50 * time.Millisecond)

	assert.NoError(t, gs.Shutdown())
}

func TestShutdownManager_RunsInRegistrationOrder(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var order []string
	sm.Register(func(ctx context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, "redis")
		return nil
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, "nats")
		return nil
	})

	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []string{"postgres", "redis", "nats"}, order)
}

func TestShutdownManager_ContinuesPastFailures(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var order []string
	sm.Register(func(ctx context.Context) error {
		order = append(order, "first")
		return errors.New("close failed")
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	// A failing component must not block the ones behind it.
	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestShutdownManager_Empty(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))
	assert.NoError(t, sm.Shutdown(context.Background()))
}
