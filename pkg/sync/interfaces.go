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

// Package sync holds the pieces shared by device-source integrations.
package sync

import (
	"context"
	"net/http"

	"github.com/carverauto/tailscale-inventory/pkg/models"
)

//go:generate mockgen -destination=mock_sync.go -package=sync github.com/carverauto/tailscale-inventory/pkg/sync HTTPClient,Integration,Metrics

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Integration defines the interface for fetching hosts from an external source.
type Integration interface {
	Fetch(ctx context.Context) ([]models.Device, error)
}
