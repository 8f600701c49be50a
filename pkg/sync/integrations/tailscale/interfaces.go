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

	"github.com/carverauto/tailscale-inventory/pkg/models"
)

//go:generate mockgen -destination=mock_tailscale.go -package=tailscale github.com/carverauto/tailscale-inventory/pkg/sync/integrations/tailscale DeviceFetcher

// DeviceFetcher defines the interface for fetching the raw device list.
type DeviceFetcher interface {
	FetchDevices(ctx context.Context, apiKey string) ([]models.Device, error)
}
