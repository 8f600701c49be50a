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

package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/carverauto/tailscale-inventory/pkg/logger"
)

const (
	DefaultEndpoint      = "https://api.tailscale.com"
	DefaultTailnet       = "-"
	DefaultIdentityField = DeviceKeyHostname
	DefaultGroup         = "tailscale"
	DefaultTimeout       = 30 * time.Second
)

var (
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("api_key is required")
	// ErrInvalidPlugin is returned when the plugin field names another inventory plugin.
	ErrInvalidPlugin = errors.New("unsupported inventory plugin")
	// ErrReservedGroup is returned when group names one of Ansible's built-in groups.
	ErrReservedGroup = errors.New("group name is reserved")
)

// ReservedGroupNames cannot be used as the inventory group: "all" and
// "ungrouped" are implicit Ansible groups and "_meta" carries hostvars.
//
//nolint:gochecknoglobals // fixed lookup table
var ReservedGroupNames = []string{"all", "ungrouped", "_meta"}

// ValidPluginNames are the plugin identifiers an inventory source file may carry.
//
//nolint:gochecknoglobals // fixed lookup table
var ValidPluginNames = []string{
	"current_hosts",
	"ehharvey.tailscale.current_hosts",
	"tailscale.current_hosts",
}

// InventoryConfig is the inventory source file for the current_hosts plugin.
type InventoryConfig struct {
	Plugin                 string        `json:"plugin" yaml:"plugin"`
	APIKey                 string        `json:"api_key" yaml:"api_key" sensitive:"true"`
	OverwriteAnsibleHost   AddressPolicy `json:"overwrite_ansible_host" yaml:"overwrite_ansible_host"`
	MatchInventoryHostname string        `json:"match_inventory_hostname" yaml:"match_inventory_hostname"`

	Endpoint           string         `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Tailnet            string         `json:"tailnet,omitempty" yaml:"tailnet,omitempty"`
	Timeout            Duration       `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Group              string         `json:"group,omitempty" yaml:"group,omitempty"`
	InsecureSkipVerify bool           `json:"insecure_skip_verify,omitempty" yaml:"insecure_skip_verify,omitempty"`
	Logging            *logger.Config `json:"logging,omitempty" yaml:"logging,omitempty"`
}

// Validate fills in defaults and rejects unusable configurations.
func (c *InventoryConfig) Validate() error {
	if c.Plugin != "" && !isValidPlugin(c.Plugin) {
		return fmt.Errorf("%w: %s", ErrInvalidPlugin, c.Plugin)
	}

	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	if c.OverwriteAnsibleHost == "" {
		c.OverwriteAnsibleHost = PolicyDisabled
	}

	if err := c.OverwriteAnsibleHost.Validate(); err != nil {
		return err
	}

	if c.MatchInventoryHostname == "" {
		c.MatchInventoryHostname = DefaultIdentityField
	}

	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}

	if c.Tailnet == "" {
		c.Tailnet = DefaultTailnet
	}

	if time.Duration(c.Timeout) <= 0 {
		c.Timeout = Duration(DefaultTimeout)
	}

	if c.Group == "" {
		c.Group = DefaultGroup
	}

	for _, reserved := range ReservedGroupNames {
		if c.Group == reserved {
			return fmt.Errorf("%w: %s", ErrReservedGroup, c.Group)
		}
	}

	return nil
}

func isValidPlugin(name string) bool {
	for _, valid := range ValidPluginNames {
		if name == valid {
			return true
		}
	}

	return false
}
