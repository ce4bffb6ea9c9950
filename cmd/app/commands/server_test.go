package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	startErr error
	stopped  chan struct{}
	shutdown atomic.Int32
}

func newFakeServer(startErr error) *fakeServer {
	return &fakeServer{startErr: startErr, stopped: make(chan struct{})}
}

func (f *fakeServer) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return nil
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	if f.shutdown.Add(1) == 1 && f.startErr == nil {
		close(f.stopped)
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	api, metricsSrv := newFakeServer(nil), newFakeServer(nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, discardLogger(), map[string]server{"api": api, "metrics": metricsSrv})
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
	assert.EqualValues(t, 1, api.shutdown.Load())
	assert.EqualValues(t, 1, metricsSrv.shutdown.Load())
}

func TestServe_StartFailureShutsDownOthers(t *testing.T) {
	api := newFakeServer(nil)
	broken := newFakeServer(errors.New("address already in use"))

	err := serve(context.Background(), discardLogger(), map[string]server{"api": api, "metrics": broken})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics server error: address already in use")
	assert.EqualValues(t, 1, api.shutdown.Load())
}
