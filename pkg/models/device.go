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

import "fmt"

// Well-known keys of a Tailscale device record.
const (
	DeviceKeyHostname  = "hostname"
	DeviceKeyName      = "name"
	DeviceKeyAddresses = "addresses"

	// FactAnsibleHost is the key the connection address is written under.
	FactAnsibleHost = "ansible_host"
	// FactTailscale is the host variable holding the full device record.
	FactTailscale = "tailscale"
)

// Device is a single device record as returned by the Tailscale API.
// Only hostname, name and addresses are interpreted; everything else is an
// opaque fact carried through to the inventory.
type Device map[string]interface{}

// Clone returns a shallow copy of the record.
func (d Device) Clone() Device {
	out := make(Device, len(d)+1)
	for k, v := range d {
		out[k] = v
	}

	return out
}

// Has reports whether key is present on the record, even with a null value.
func (d Device) Has(key string) bool {
	_, ok := d[key]

	return ok
}

// String returns a string-valued field, or "" if absent or not a string.
func (d Device) String(key string) string {
	if s, ok := d[key].(string); ok {
		return s
	}

	return ""
}

// Hostname returns the short machine name.
func (d Device) Hostname() string {
	return d.String(DeviceKeyHostname)
}

// FQDN returns the MagicDNS name of the device.
func (d Device) FQDN() string {
	return d.String(DeviceKeyName)
}

// Addresses returns the tailnet addresses in API order. Non-string entries
// are returned as "" so positional lookups stay aligned.
func (d Device) Addresses() []string {
	switch raw := d[DeviceKeyAddresses].(type) {
	case []string:
		return raw
	case []interface{}:
		out := make([]string, len(raw))

		for i, v := range raw {
			if s, ok := v.(string); ok {
				out[i] = s
			}
		}

		return out
	default:
		return nil
	}
}

// Identity renders the value of field as an inventory host name.
func (d Device) Identity(field string) (string, bool) {
	v, ok := d[field]
	if !ok || v == nil {
		return "", false
	}

	if s, ok := v.(string); ok {
		return s, s != ""
	}

	return fmt.Sprintf("%v", v), true
}

// DevicesResponse is the body of GET /api/v2/tailnet/{tailnet}/devices.
// Devices is nil when the key is absent, which is distinct from an empty list.
type DevicesResponse struct {
	Devices *[]Device `json:"devices"`
}
