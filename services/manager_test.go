package services

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestMonitorManagerRunsChecks(t *testing.T) {
	m := NewMonitorManager()
	defer m.StopAll()

	var count atomic.Int32
	m.Start("chan", 10*time.Millisecond, func() { count.Add(1) })

	deadline := time.After(2 * time.Second)
	for count.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("only %d checks ran", count.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestMonitorManagerStartReplaces(t *testing.T) {
	m := NewMonitorManager()
	defer m.StopAll()

	var first, second atomic.Int32
	m.Start("chan", 10*time.Millisecond, func() { first.Add(1) })
	m.Start("chan", 10*time.Millisecond, func() { second.Add(1) })

	deadline := time.After(2 * time.Second)
	for second.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("replacement loop ran %d times", second.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}

	snapshot := first.Load()
	time.Sleep(50 * time.Millisecond)
	if first.Load() != snapshot {
		t.Error("replaced loop is still running")
	}
}

func TestMonitorManagerStop(t *testing.T) {
	m := NewMonitorManager()

	var count atomic.Int32
	m.Start("chan", 10*time.Millisecond, func() { count.Add(1) })
	time.Sleep(35 * time.Millisecond)
	m.Stop("chan")

	// Let any in-flight check drain before sampling.
	time.Sleep(20 * time.Millisecond)
	snapshot := count.Load()
	time.Sleep(50 * time.Millisecond)
	if count.Load() != snapshot {
		t.Error("loop kept running after Stop")
	}

	// Stopping an unknown channel is a no-op.
	m.Stop("ghost")
}

func TestMonitorManagerPanicRecovery(t *testing.T) {
	m := NewMonitorManager()
	defer m.StopAll()

	var count atomic.Int32
	m.Start("chan", 10*time.Millisecond, func() {
		count.Add(1)
		panic("boom")
	})

	deadline := time.After(2 * time.Second)
	for count.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("loop died after panic; ran %d times", count.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}
