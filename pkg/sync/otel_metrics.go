/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sync

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope used for integration metrics.
const MeterName = "tailscale-inventory/sync"

const (
	metricDiscoveryAttemptsName = "inventory_discovery_attempts_total"
	metricDiscoveryFailuresName = "inventory_discovery_failures_total"
	metricDevicesDiscoveredName = "inventory_devices_discovered_total"
	metricDiscoveryDurationName = "inventory_discovery_duration_ms"
	metricAPICallsName          = "inventory_api_calls_total"
	metricAPIFailuresName       = "inventory_api_failures_total"
	metricAPIDurationName       = "inventory_api_duration_ms"
)

// OTelMetrics mirrors every recording onto OpenTelemetry instruments and
// forwards it to an inner Metrics, which still answers GetMetrics.
type OTelMetrics struct {
	Metrics

	discoveryAttempts metric.Int64Counter
	discoveryFailures metric.Int64Counter
	devicesDiscovered metric.Int64Counter
	discoveryDuration metric.Float64Histogram
	apiCalls          metric.Int64Counter
	apiFailures       metric.Int64Counter
	apiDuration       metric.Float64Histogram
}

var _ Metrics = (*OTelMetrics)(nil)

// NewOTelMetrics registers the instruments on meter. A nil inner defaults to NoOpMetrics.
func NewOTelMetrics(meter metric.Meter, inner Metrics) (*OTelMetrics, error) {
	if inner == nil {
		inner = &NoOpMetrics{}
	}

	m := &OTelMetrics{Metrics: inner}

	var err error

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&m.discoveryAttempts, metricDiscoveryAttemptsName, "Discovery runs started per source"},
		{&m.discoveryFailures, metricDiscoveryFailuresName, "Discovery runs that failed per source"},
		{&m.devicesDiscovered, metricDevicesDiscoveredName, "Devices returned by successful discovery runs"},
		{&m.apiCalls, metricAPICallsName, "Outbound API requests"},
		{&m.apiFailures, metricAPIFailuresName, "Outbound API requests that failed"},
	}

	for _, c := range counters {
		*c.dst, err = meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", c.name, err)
		}
	}

	m.discoveryDuration, err = meter.Float64Histogram(metricDiscoveryDurationName,
		metric.WithDescription("Duration of discovery runs"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", metricDiscoveryDurationName, err)
	}

	m.apiDuration, err = meter.Float64Histogram(metricAPIDurationName,
		metric.WithDescription("Duration of outbound API requests"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", metricAPIDurationName, err)
	}

	return m, nil
}

func (m *OTelMetrics) RecordDiscoveryAttempt(source string) {
	m.Metrics.RecordDiscoveryAttempt(source)
	m.discoveryAttempts.Add(context.Background(), 1, sourceAttr(source))
}

func (m *OTelMetrics) RecordDiscoverySuccess(source string, deviceCount int, duration time.Duration) {
	m.Metrics.RecordDiscoverySuccess(source, deviceCount, duration)

	ctx := context.Background()
	m.devicesDiscovered.Add(ctx, int64(deviceCount), sourceAttr(source))
	m.discoveryDuration.Record(ctx, millis(duration), sourceAttr(source),
		metric.WithAttributes(attribute.Bool("success", true)))
}

func (m *OTelMetrics) RecordDiscoveryFailure(source string, err error, duration time.Duration) {
	m.Metrics.RecordDiscoveryFailure(source, err, duration)

	ctx := context.Background()
	m.discoveryFailures.Add(ctx, 1, sourceAttr(source))
	m.discoveryDuration.Record(ctx, millis(duration), sourceAttr(source),
		metric.WithAttributes(attribute.Bool("success", false)))
}

func (m *OTelMetrics) RecordAPICall(integration, endpoint string) {
	m.Metrics.RecordAPICall(integration, endpoint)
	m.apiCalls.Add(context.Background(), 1, apiAttrs(integration, endpoint))
}

func (m *OTelMetrics) RecordAPISuccess(integration, endpoint string, duration time.Duration) {
	m.Metrics.RecordAPISuccess(integration, endpoint, duration)
	m.apiDuration.Record(context.Background(), millis(duration), apiAttrs(integration, endpoint))
}

func (m *OTelMetrics) RecordAPIFailure(integration, endpoint string, statusCode int, duration time.Duration) {
	m.Metrics.RecordAPIFailure(integration, endpoint, statusCode, duration)

	ctx := context.Background()
	status := metric.WithAttributes(attribute.String("status_code", strconv.Itoa(statusCode)))

	m.apiFailures.Add(ctx, 1, apiAttrs(integration, endpoint), status)
	m.apiDuration.Record(ctx, millis(duration), apiAttrs(integration, endpoint))
}

func sourceAttr(source string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("source", source))
}

func apiAttrs(integration, endpoint string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("integration", integration),
		attribute.String("endpoint", endpoint),
	)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
