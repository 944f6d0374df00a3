package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type fakePortals struct {
	calls  atomic.Int64
	closed int64
	err    error
}

func (f *fakePortals) CloseExpiredPortals(ctx context.Context, now time.Time) (int64, error) {
	f.calls.Add(1)
	return f.closed, f.err
}

func TestSweeperRunsImmediatelyAndStopsOnCancel(t *testing.T) {
	portals := &fakePortals{closed: 2}
	sweeper := NewSweeper(portals, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for portals.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("sweeper never ran the initial sweep")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

func TestSweeperDisabledWithoutInterval(t *testing.T) {
	portals := &fakePortals{}
	sweeper := NewSweeper(portals, 0, nil)

	done := make(chan struct{})
	go func() {
		sweeper.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper with zero interval should return immediately")
	}
	if portals.calls.Load() != 0 {
		t.Fatalf("expected no sweeps, got %d", portals.calls.Load())
	}
}
