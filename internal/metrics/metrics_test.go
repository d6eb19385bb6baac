package metrics

import (
	"sync"
	"testing"
)

func TestIncAndSnapshot(t *testing.T) {
	m := New(Config{Enabled: true})
	m.Inc(LoginSuccess)
	m.Inc(LoginSuccess)
	m.Inc(GateDenied)

	snap := m.Snapshot()
	if snap.Counters[LoginSuccess] != 2 {
		t.Fatalf("expected 2 login successes, got %d", snap.Counters[LoginSuccess])
	}
	if snap.Counters[GateDenied] != 1 {
		t.Fatalf("expected 1 gate denial, got %d", snap.Counters[GateDenied])
	}
	if snap.Counters[Logout] != 0 {
		t.Fatalf("untouched counter must be zero, got %d", snap.Counters[Logout])
	}
	if len(snap.Counters) != int(MetricIDCount) {
		t.Fatalf("snapshot must cover every slot, got %d", len(snap.Counters))
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := New(Config{Enabled: true})
	m.Inc(Logout)
	snap := m.Snapshot()
	m.Inc(Logout)
	if snap.Counters[Logout] != 1 {
		t.Fatalf("snapshot must not track later increments, got %d", snap.Counters[Logout])
	}
}

func TestDisabledMetricsAreInert(t *testing.T) {
	m := New(Config{Enabled: false})
	m.Inc(LoginSuccess)
	if snap := m.Snapshot(); len(snap.Counters) != 0 {
		t.Fatalf("disabled metrics must snapshot empty, got %v", snap.Counters)
	}

	var nilMetrics *Metrics
	nilMetrics.Inc(LoginSuccess)
	if snap := nilMetrics.Snapshot(); len(snap.Counters) != 0 {
		t.Fatal("nil metrics must snapshot empty")
	}
}

func TestOutOfRangeIDsIgnored(t *testing.T) {
	m := New(Config{Enabled: true})
	m.Inc(MetricID(-1))
	m.Inc(MetricIDCount)
	m.Inc(MetricID(999))
	for id, v := range m.Snapshot().Counters {
		if v != 0 {
			t.Fatalf("slot %d unexpectedly incremented", id)
		}
	}
}

func TestConcurrentIncrements(t *testing.T) {
	m := New(Config{Enabled: true})

	const goroutines, perGoroutine = 8, 1000
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				m.Inc(TransportFault)
			}
		}()
	}
	wg.Wait()

	if got := m.Snapshot().Counters[TransportFault]; got != goroutines*perGoroutine {
		t.Fatalf("expected %d, got %d", goroutines*perGoroutine, got)
	}
}
