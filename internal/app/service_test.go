package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeService struct {
	name     string
	startErr error
	block    bool
	stopped  atomic.Bool
}

func (s *fakeService) Name() string { return s.name }

func (s *fakeService) Start(ctx context.Context) error {
	if s.block {
		<-ctx.Done()
		return nil
	}
	return s.startErr
}

func (s *fakeService) Stop(ctx context.Context) error {
	s.stopped.Store(true)
	return nil
}

func TestRunnerStopsAllServicesOnStartError(t *testing.T) {
	failing := &fakeService{name: "failing", startErr: errors.New("bind failed")}
	blocking := &fakeService{name: "blocking", block: true}

	err := NewRunner(failing, blocking).Run(context.Background(), time.Second, nil)
	if err == nil || err.Error() != "bind failed" {
		t.Fatalf("expected start error, got %v", err)
	}
	if !failing.stopped.Load() || !blocking.stopped.Load() {
		t.Fatalf("all services should be stopped")
	}
}

func TestRunnerCancelledContextIsCleanExit(t *testing.T) {
	blocking := &fakeService{name: "blocking", block: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewRunner(blocking).Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("cancelled context should exit cleanly, got %v", err)
	}
	if !blocking.stopped.Load() {
		t.Fatalf("service should be stopped")
	}
}

func TestRunnerWithoutServices(t *testing.T) {
	if err := NewRunner().Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("expected error for empty runner")
	}
}

func TestRunWithOptionsRejectsNilRunner(t *testing.T) {
	if err := RunWithOptions(nil, Options{}); err == nil {
		t.Fatalf("expected error for nil runner")
	}
}

func TestShutdownReason(t *testing.T) {
	if got := shutdownReason(context.Canceled); got != "signal" {
		t.Fatalf("cancel should map to signal, got %s", got)
	}
	if got := shutdownReason(nil); got != "service_exit" {
		t.Fatalf("nil should map to service_exit, got %s", got)
	}
	if got := shutdownReason(errors.New("boom")); got != "boom" {
		t.Fatalf("unexpected reason: %s", got)
	}
}

func TestHTTPServiceName(t *testing.T) {
	if got := NewHTTPService(":0", nil).Name(); got != "web" {
		t.Fatalf("unexpected service name: %s", got)
	}
}
