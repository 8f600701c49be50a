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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/carverauto/tailscale-inventory/pkg/models"
)

// FetchDevices performs a single authenticated GET of the device list.
// There is no pagination and no retry; any failure aborts the call.
func (d *DefaultTailscaleIntegration) FetchDevices(ctx context.Context, apiKey string) ([]models.Device, error) {
	if apiKey == "" {
		return nil, models.ErrMissingAPIKey
	}

	ctx, span := d.Tracer.Start(ctx, "tailscale.FetchDevices")
	defer span.End()

	devices, err := d.fetchDevices(ctx, apiKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetAttributes(attribute.Int("device_count", len(devices)))

	return devices, nil
}

func (d *DefaultTailscaleIntegration) fetchDevices(ctx context.Context, apiKey string) ([]models.Device, error) {
	reqURL := d.devicesURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "application/json")

	if d.UserAgent != "" {
		req.Header.Set("User-Agent", d.UserAgent)
	}

	d.Logger.Debug().Str("url", reqURL).Msg("Requesting device list")

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer d.closeResponse(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, fmt.Errorf("%w: %w: %d, response: %s",
			ErrFetchFailed, errUnexpectedStatusCode, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return decodeDevices(resp.Body)
}

func (d *DefaultTailscaleIntegration) devicesURL() string {
	tailnet := d.Tailnet
	if tailnet == "" {
		tailnet = models.DefaultTailnet
	}

	return strings.TrimRight(d.Endpoint, "/") + fmt.Sprintf(devicesPathFormat, url.PathEscape(tailnet))
}

// closeResponse closes the HTTP response body, logging any errors.
func (d *DefaultTailscaleIntegration) closeResponse(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		d.Logger.Warn().Err(err).Msg("Failed to close response body")
	}
}

// decodeDevices parses {"devices": [...]}. A body without a devices key is an
// error; an empty list is not.
func decodeDevices(r io.Reader) ([]models.Device, error) {
	var body models.DevicesResponse

	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %w", ErrFetchFailed, err)
	}

	if body.Devices == nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, errMissingDevicesField)
	}

	devices := *body.Devices
	for i, device := range devices {
		if device == nil {
			return nil, fmt.Errorf("%w: device %d is not an object", ErrFetchFailed, i)
		}
	}

	return devices, nil
}
