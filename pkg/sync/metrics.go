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
	"net/http"
	"sync"
	"time"

	"github.com/carverauto/tailscale-inventory/pkg/logger"
)

// Metrics defines the interface for collecting integration metrics
type Metrics interface {
	RecordDiscoveryAttempt(source string)
	RecordDiscoverySuccess(source string, deviceCount int, duration time.Duration)
	RecordDiscoveryFailure(source string, err error, duration time.Duration)

	RecordAPICall(integration, endpoint string)
	RecordAPISuccess(integration, endpoint string, duration time.Duration)
	RecordAPIFailure(integration, endpoint string, statusCode int, duration time.Duration)

	GetMetrics() map[string]interface{}
}

// NoOpMetrics provides a no-op implementation of the Metrics interface
type NoOpMetrics struct{}

func (*NoOpMetrics) RecordDiscoveryAttempt(string)                       {}
func (*NoOpMetrics) RecordDiscoverySuccess(string, int, time.Duration)   {}
func (*NoOpMetrics) RecordDiscoveryFailure(string, error, time.Duration) {}
func (*NoOpMetrics) RecordAPICall(string, string)                        {}
func (*NoOpMetrics) RecordAPISuccess(string, string, time.Duration)      {}
func (*NoOpMetrics) RecordAPIFailure(string, string, int, time.Duration) {}
func (*NoOpMetrics) GetMetrics() map[string]interface{}                  { return map[string]interface{}{} }

// InMemoryMetrics provides an in-memory implementation of the Metrics interface
type InMemoryMetrics struct {
	mu     sync.RWMutex
	logger logger.Logger

	discoveryAttempts map[string]int
	discoverySuccess  map[string]int
	discoveryFailures map[string]int
	discoveryDuration map[string]time.Duration
	devicesDiscovered map[string]int

	apiCalls    map[string]int
	apiSuccess  map[string]int
	apiFailures map[string]int
	apiDuration map[string]time.Duration

	lastUpdated time.Time
}

// NewInMemoryMetrics creates a new in-memory metrics collector
func NewInMemoryMetrics(log logger.Logger) *InMemoryMetrics {
	return &InMemoryMetrics{
		logger:            log,
		discoveryAttempts: make(map[string]int),
		discoverySuccess:  make(map[string]int),
		discoveryFailures: make(map[string]int),
		discoveryDuration: make(map[string]time.Duration),
		devicesDiscovered: make(map[string]int),
		apiCalls:          make(map[string]int),
		apiSuccess:        make(map[string]int),
		apiFailures:       make(map[string]int),
		apiDuration:       make(map[string]time.Duration),
		lastUpdated:       time.Now(),
	}
}

func (m *InMemoryMetrics) RecordDiscoveryAttempt(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.discoveryAttempts[source]++
	m.lastUpdated = time.Now()
}

func (m *InMemoryMetrics) RecordDiscoverySuccess(source string, deviceCount int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.discoverySuccess[source]++
	m.discoveryDuration[source] = duration
	m.devicesDiscovered[source] = deviceCount
	m.lastUpdated = time.Now()

	m.logger.Debug().
		Str("source", source).
		Int("device_count", deviceCount).
		Dur("duration", duration).
		Msg("Discovery completed successfully")
}

func (m *InMemoryMetrics) RecordDiscoveryFailure(source string, err error, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.discoveryFailures[source]++
	m.discoveryDuration[source] = duration
	m.lastUpdated = time.Now()

	m.logger.Error().
		Str("source", source).
		Err(err).
		Dur("duration", duration).
		Msg("Discovery failed")
}

func (m *InMemoryMetrics) RecordAPICall(integration, endpoint string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiCalls[integration+":"+endpoint]++
	m.lastUpdated = time.Now()
}

func (m *InMemoryMetrics) RecordAPISuccess(integration, endpoint string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := integration + ":" + endpoint
	m.apiSuccess[key]++
	m.apiDuration[key] = duration
	m.lastUpdated = time.Now()
}

func (m *InMemoryMetrics) RecordAPIFailure(integration, endpoint string, statusCode int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := integration + ":" + endpoint
	m.apiFailures[key]++
	m.apiDuration[key] = duration
	m.lastUpdated = time.Now()

	m.logger.Warn().
		Str("integration", integration).
		Str("endpoint", endpoint).
		Int("status_code", statusCode).
		Dur("duration", duration).
		Msg("API call failed")
}

// GetMetrics returns a snapshot; the maps are copies and safe to keep.
func (m *InMemoryMetrics) GetMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"discovery": map[string]interface{}{
			"attempts":          copyCounts(m.discoveryAttempts),
			"successes":         copyCounts(m.discoverySuccess),
			"failures":          copyCounts(m.discoveryFailures),
			"durations":         copyDurations(m.discoveryDuration),
			"devices_by_source": copyCounts(m.devicesDiscovered),
		},
		"api": map[string]interface{}{
			"calls":     copyCounts(m.apiCalls),
			"successes": copyCounts(m.apiSuccess),
			"failures":  copyCounts(m.apiFailures),
			"durations": copyDurations(m.apiDuration),
		},
		"last_updated": m.lastUpdated,
	}
}

func copyCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}

func copyDurations(in map[string]time.Duration) map[string]time.Duration {
	out := make(map[string]time.Duration, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}

// MetricsHTTPClient wraps an HTTP client to collect API metrics
type MetricsHTTPClient struct {
	client      HTTPClient
	metrics     Metrics
	integration string
}

// NewMetricsHTTPClient creates a new HTTP client wrapper that collects metrics
func NewMetricsHTTPClient(client HTTPClient, integration string, metrics Metrics) *MetricsHTTPClient {
	return &MetricsHTTPClient{
		client:      client,
		metrics:     metrics,
		integration: integration,
	}
}

// Do executes an HTTP request and records metrics. Only 2xx counts as success.
func (m *MetricsHTTPClient) Do(req *http.Request) (*http.Response, error) {
	endpoint := req.URL.Path
	if endpoint == "" {
		endpoint = req.URL.String()
	}

	start := time.Now()
	m.metrics.RecordAPICall(m.integration, endpoint)

	resp, err := m.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		m.metrics.RecordAPIFailure(m.integration, endpoint, 0, duration)
		return resp, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		m.metrics.RecordAPIFailure(m.integration, endpoint, resp.StatusCode, duration)
	} else {
		m.metrics.RecordAPISuccess(m.integration, endpoint, duration)
	}

	return resp, err
}
