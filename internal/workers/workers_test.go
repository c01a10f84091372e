// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

type countingLocker struct {
	calls atomic.Int64
}

func (c *countingLocker) EnforceIdleTimeout() {
	c.calls.Add(1)
}

type countingSweeper struct {
	calls atomic.Int64
}

func (c *countingSweeper) Sweep() int {
	c.calls.Add(1)
	return 1
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on empty workers list
	NewWorkers().Run()
}

func TestAutoLockWorker_TicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	locker := &countingLocker{}

	NewAutoLockWorker(ctx, locker, 5*time.Millisecond, logger.Nop()).Run()

	deadline := time.After(time.Second)
	for locker.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 ticks, got %d", locker.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	time.Sleep(20 * time.Millisecond)
	settled := locker.calls.Load()
	time.Sleep(30 * time.Millisecond)

	if got := locker.calls.Load(); got != settled {
		t.Errorf("worker kept ticking after cancel: %d -> %d", settled, got)
	}
}

func TestAutoLockWorker_DisabledOnZeroInterval(t *testing.T) {
	locker := &countingLocker{}

	NewAutoLockWorker(context.Background(), locker, 0, logger.Nop()).Run()

	time.Sleep(20 * time.Millisecond)
	if got := locker.calls.Load(); got != 0 {
		t.Errorf("expected no ticks with zero interval, got %d", got)
	}
}

func TestOTPSweepWorker_TicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sweeper := &countingSweeper{}

	NewOTPSweepWorker(ctx, sweeper, 5*time.Millisecond, logger.Nop()).Run()

	deadline := time.After(time.Second)
	for sweeper.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 sweeps, got %d", sweeper.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	time.Sleep(20 * time.Millisecond)
	settled := sweeper.calls.Load()
	time.Sleep(30 * time.Millisecond)

	if got := sweeper.calls.Load(); got != settled {
		t.Errorf("worker kept sweeping after cancel: %d -> %d", settled, got)
	}
}
