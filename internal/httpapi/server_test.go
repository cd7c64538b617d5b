package httpapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/studyhub/internal/logging"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := &Server{address: "127.0.0.1:0", handler: http.NotFoundHandler(), logger: logging.NopLogger{}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := &Server{address: "127.0.0.1:99999", handler: http.NotFoundHandler(), logger: logging.NopLogger{}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

func TestNewServer_UsesConfiguredAddress(t *testing.T) {
	api := newTestAPI(t, nil)
	srv := NewServer(api.core, logging.NopLogger{})
	if srv.address != "127.0.0.1:8088" {
		t.Fatalf("unexpected address %q", srv.address)
	}
}
