// Package otel bridges goAuthClient metrics onto OpenTelemetry observable
// instruments. Counter values are read from snapshots at collection time, so
// the client's hot paths stay free of exporter cost.
package otel

import (
	"context"
	"errors"
	"fmt"

	goAuthClient "github.com/MrEthical07/goAuthClient"
	"github.com/MrEthical07/goAuthClient/metrics/export/internaldefs"
	"go.opentelemetry.io/otel/metric"
)

var (
	ErrNilMeter  = errors.New("nil meter")
	ErrNilSource = errors.New("nil metrics source")
)

type metricsSource interface {
	MetricsSnapshot() goAuthClient.MetricsSnapshot
	AuditDropped() uint64
}

type observedCounter struct {
	id         goAuthClient.MetricID
	instrument metric.Int64ObservableCounter
}

// OTelExporter registers one observable counter per metric and feeds them
// from snapshots during collection.
type OTelExporter struct {
	source       metricsSource
	registration metric.Registration
	counters     []observedCounter
	auditDropped metric.Int64ObservableCounter
}

// NewOTelExporter creates an exporter reading from the given
// [goAuthClient.Client].
func NewOTelExporter(meter metric.Meter, client *goAuthClient.Client) (*OTelExporter, error) {
	return NewOTelExporterFromSource(meter, client)
}

// NewOTelExporterFromSource creates an exporter from a custom source.
func NewOTelExporterFromSource(meter metric.Meter, source metricsSource) (*OTelExporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if source == nil {
		return nil, ErrNilSource
	}

	exporter := &OTelExporter{
		source:   source,
		counters: make([]observedCounter, 0, len(internaldefs.CounterDefs)),
	}

	observables := make([]metric.Observable, 0, len(internaldefs.CounterDefs)+1)

	for _, def := range internaldefs.CounterDefs {
		instrument, err := meter.Int64ObservableCounter(def.Name, metric.WithDescription(def.Help))
		if err != nil {
			return nil, fmt.Errorf("create counter %s: %w", def.Name, err)
		}
		exporter.counters = append(exporter.counters, observedCounter{
			id:         def.ID,
			instrument: instrument,
		})
		observables = append(observables, instrument)
	}

	dropped, err := meter.Int64ObservableCounter(
		"goauthclient_audit_dropped_total",
		metric.WithDescription("Dropped audit events due to dispatcher backpressure."),
	)
	if err != nil {
		return nil, fmt.Errorf("create counter goauthclient_audit_dropped_total: %w", err)
	}
	exporter.auditDropped = dropped
	observables = append(observables, dropped)

	registration, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		snapshot := exporter.source.MetricsSnapshot()
		for _, c := range exporter.counters {
			o.ObserveInt64(c.instrument, int64(snapshot.Counters[c.id]))
		}
		o.ObserveInt64(exporter.auditDropped, int64(exporter.source.AuditDropped()))
		return nil
	}, observables...)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}
	exporter.registration = registration

	return exporter, nil
}

// Shutdown unregisters the collection callback.
func (e *OTelExporter) Shutdown() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}
