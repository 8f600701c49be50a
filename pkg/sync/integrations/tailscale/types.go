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

package tailscale

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/carverauto/tailscale-inventory/pkg/logger"
	"github.com/carverauto/tailscale-inventory/pkg/models"
	"github.com/carverauto/tailscale-inventory/pkg/sync"
)

const (
	// SourceName identifies this integration in metrics and logs.
	SourceName = "tailscale"

	devicesPathFormat = "/api/v2/tailnet/%s/devices"
	maxErrorBodyBytes = 512
)

// TailscaleIntegration fetches the current device list and normalizes it into hosts.
type TailscaleIntegration struct {
	Config        *models.InventoryConfig
	DeviceFetcher DeviceFetcher
	Metrics       sync.Metrics
	Logger        logger.Logger
}

// DefaultTailscaleIntegration is the HTTP-backed DeviceFetcher.
type DefaultTailscaleIntegration struct {
	Endpoint   string
	Tailnet    string
	UserAgent  string
	HTTPClient sync.HTTPClient
	Tracer     trace.Tracer
	Logger     logger.Logger
}
