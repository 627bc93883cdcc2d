package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/ergo/internal/config"
	"github.com/MKhiriev/ergo/internal/handler"
	myGRPC "github.com/MKhiriev/ergo/internal/handler/grpc"
	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPinger struct{}

func (nopPinger) PingContext(context.Context) error { return nil }

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nopPinger{}, logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "256.0.0.1:-1"}, logger.Nop())

	assert.Error(t, err)
}

func TestNewHTTPServer_UsesRequestTimeout(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:0", RequestTimeout: 7 * time.Second}

	s := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	assert.Equal(t, "localhost:0", s.server.Addr)
	assert.Equal(t, 7*time.Second, s.server.ReadTimeout)
	assert.Equal(t, 7*time.Second, s.server.WriteTimeout)
	assert.Equal(t, 14*time.Second, s.server.IdleTimeout)
}

func TestHTTPServer_ShutdownStopsRunServer(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())

	done := make(chan struct{})
	go func() {
		s.RunServer()
		close(done)
	}()

	// Shutdown before or after ListenAndServe starts both end RunServer.
	time.Sleep(50 * time.Millisecond)
	s.Shutdown()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}

func TestGRPCServer_RunAndShutdown(t *testing.T) {
	h := myGRPC.NewHandler(nopPinger{}, logger.Nop())
	s, err := newGRPCServer(h, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		s.RunServer()
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	s.Shutdown()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}
