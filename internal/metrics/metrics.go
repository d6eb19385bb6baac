// Package metrics provides lock-free counters for goAuthClient observability.
//
// Counters are stored in cache-line-padded slots and incremented atomically.
// The write path is allocation-free. Metric export (Prometheus, OTel) lives in
// metrics/export/ and reads Snapshot values; this package performs no I/O and
// exposes no global registries.
package metrics

import "sync/atomic"

// MetricID identifies one counter slot.
type MetricID int

const (
	// LoginSuccess counts logins that persisted a session.
	LoginSuccess MetricID = iota
	// LoginFailure counts declined or faulted login attempts.
	LoginFailure
	// Logout counts logout attempts.
	Logout
	// ForcedLogout counts 401-driven session teardowns.
	ForcedLogout
	// SignupSuccess counts accepted registrations.
	SignupSuccess
	// SignupFailure counts declined or faulted registrations.
	SignupFailure
	// PasswordChangeSuccess counts accepted password changes.
	PasswordChangeSuccess
	// PasswordChangeFailure counts declined or faulted password changes.
	PasswordChangeFailure
	// PasswordResetRequest counts forgot-password submissions.
	PasswordResetRequest
	// PasswordResetConfirm counts reset-password submissions.
	PasswordResetConfirm
	// EmailVerification counts verify-email submissions.
	EmailVerification
	// AdminCreateUser counts create-user attempts.
	AdminCreateUser
	// AdminCreateAdmin counts create-admin attempts.
	AdminCreateAdmin
	// AdminChangeRole counts change-role attempts.
	AdminChangeRole
	// GateDenied counts route guard denials.
	GateDenied
	// TransportFault counts requests with no structured response.
	TransportFault

	// MetricIDCount is the number of counter slots.
	MetricIDCount
)

// Config controls metric collection. When Enabled is false all operations are
// no-ops.
type Config struct {
	Enabled bool
}

type paddedCounter struct {
	value atomic.Uint64
	_     [56]byte
}

// Metrics holds atomic counters. The zero value is unusable; construct via
// New.
type Metrics struct {
	enabled  bool
	counters [MetricIDCount]paddedCounter
}

// New creates a Metrics instance configured by cfg.
func New(cfg Config) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc increments the counter identified by id. Out-of-range IDs are ignored.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled {
		return
	}
	if id < 0 || id >= MetricIDCount {
		return
	}
	m.counters[id].value.Add(1)
}

// Snapshot is a point-in-time deep copy of all counters.
type Snapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot returns the current counter values. Disabled instances return an
// empty snapshot.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{Counters: make(map[MetricID]uint64, MetricIDCount)}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < MetricIDCount; id++ {
		snap.Counters[id] = m.counters[id].value.Load()
	}
	return snap
}
