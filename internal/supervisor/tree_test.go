// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lctflights/flightmap/internal/logging"
)

// mockService runs until canceled, failing the first failFirst calls.
type mockService struct {
	name      string
	failFirst int32
	starts    atomic.Int32
}

func (m *mockService) Serve(ctx context.Context) error {
	if n := m.starts.Add(1); n <= m.failFirst {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string { return m.name }

func testLogger() *slog.Logger {
	return logging.NewSlogLogger("supervisor-test")
}

func TestNewSupervisorTree(t *testing.T) {
	t.Parallel()

	t.Run("requires logger", func(t *testing.T) {
		t.Parallel()
		if _, err := NewSupervisorTree(nil, TreeConfig{}); !errors.Is(err, ErrNilLogger) {
			t.Errorf("err = %v, want ErrNilLogger", err)
		}
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{ShutdownTimeout: 3 * time.Second})
		if err != nil {
			t.Fatal(err)
		}
		got := tree.Config()
		want := DefaultTreeConfig()
		want.ShutdownTimeout = 3 * time.Second
		if got != want {
			t.Errorf("Config() = %+v, want %+v", got, want)
		}
		if tree.Root() == nil {
			t.Error("Root() is nil")
		}
	})
}

func TestSupervisorTreeRunsAndStops(t *testing.T) {
	t.Parallel()

	tree, err := NewSupervisorTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	svc := &mockService{name: "api"}
	tree.AddAPIService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(time.Second)
	for svc.starts.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if svc.starts.Load() == 0 {
		t.Fatal("service was not started")
	}
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down in time")
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport() error = %v", err)
	}
	if len(report) != 0 {
		t.Errorf("unstopped services = %v", report)
	}
}

func TestSupervisorTreeRestartsFailingService(t *testing.T) {
	t.Parallel()

	tree, err := NewSupervisorTree(testLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}
	svc := &mockService{name: "flaky", failFirst: 2}
	tree.AddAPIService(svc)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(time.Second)
	for svc.starts.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := svc.starts.Load(); got < 3 {
		t.Errorf("starts = %d, want at least 3", got)
	}
	cancel()
	<-errCh
}

func TestRemoveAPIService(t *testing.T) {
	t.Parallel()

	tree, err := NewSupervisorTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	token := tree.AddAPIService(&mockService{name: "short-lived"})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)
	defer func() {
		cancel()
		<-errCh
	}()

	if err := tree.RemoveAPIService(token); err != nil {
		t.Errorf("RemoveAPIService() error = %v", err)
	}
}
