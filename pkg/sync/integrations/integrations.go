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

// Package integrations pkg/sync/integrations/integrations.go
package integrations

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/carverauto/tailscale-inventory/pkg/logger"
	"github.com/carverauto/tailscale-inventory/pkg/models"
	"github.com/carverauto/tailscale-inventory/pkg/sync"
	"github.com/carverauto/tailscale-inventory/pkg/sync/integrations/tailscale"
	"github.com/carverauto/tailscale-inventory/pkg/version"
)

const tracerName = "github.com/carverauto/tailscale-inventory/pkg/sync/integrations/tailscale"

// NewTailscaleIntegration creates a TailscaleIntegration backed by a real HTTP client.
// config is expected to have been validated already.
func NewTailscaleIntegration(
	_ context.Context,
	config *models.InventoryConfig,
	log logger.Logger,
	metrics sync.Metrics,
) *tailscale.TailscaleIntegration {
	if log == nil {
		log = logger.NewNopLogger()
	}

	if metrics == nil {
		metrics = &sync.NoOpMetrics{}
	}

	timeout := time.Duration(config.Timeout)
	if timeout <= 0 {
		timeout = models.DefaultTimeout
	}

	httpClient := &http.Client{
		Timeout: timeout,
	}

	if config.InsecureSkipVerify {
		//nolint:gosec // opt-in for self-hosted control servers with private CAs
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	fetcher := &tailscale.DefaultTailscaleIntegration{
		Endpoint:   config.Endpoint,
		Tailnet:    config.Tailnet,
		UserAgent:  version.UserAgent(),
		HTTPClient: sync.NewMetricsHTTPClient(httpClient, tailscale.SourceName, metrics),
		Tracer:     otel.Tracer(tracerName),
		Logger:     log,
	}

	return &tailscale.TailscaleIntegration{
		Config:        config,
		DeviceFetcher: fetcher,
		Metrics:       metrics,
		Logger:        log,
	}
}
