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

// Package tailscale pulls the current device list from the Tailscale API and
// turns it into inventory hosts.
package tailscale

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/tailscale-inventory/pkg/models"
)

// Fetch retrieves devices from Tailscale and normalizes them into hosts.
func (t *TailscaleIntegration) Fetch(ctx context.Context) ([]models.Device, error) {
	fetchID := uuid.NewString()
	start := time.Now()

	log := t.Logger.With().
		Str("fetch_id", fetchID).
		Str("source", SourceName).
		Logger()

	t.Metrics.RecordDiscoveryAttempt(SourceName)

	devices, err := t.DeviceFetcher.FetchDevices(ctx, t.Config.APIKey)
	if err != nil {
		t.Metrics.RecordDiscoveryFailure(SourceName, err, time.Since(start))

		return nil, err
	}

	log.Debug().Int("device_count", len(devices)).Msg("Fetched devices from Tailscale")

	hosts, err := NormalizeHosts(devices, t.Config.OverwriteAnsibleHost, t.Config.MatchInventoryHostname)
	if err != nil {
		t.Metrics.RecordDiscoveryFailure(SourceName, err, time.Since(start))

		return nil, err
	}

	t.Metrics.RecordDiscoverySuccess(SourceName, len(hosts), time.Since(start))

	log.Info().
		Int("host_count", len(hosts)).
		Str("policy", t.Config.OverwriteAnsibleHost.String()).
		Str("identity_field", t.Config.MatchInventoryHostname).
		Msg("Normalized Tailscale hosts")

	return hosts, nil
}
