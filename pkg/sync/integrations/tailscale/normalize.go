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
	"net/netip"

	"github.com/carverauto/tailscale-inventory/pkg/models"
)

const (
	ipv4Index = 0
	ipv6Index = 1
)

// NormalizeHosts validates each device against identityField and, when policy
// is enabled, attaches the resolved connection address as ansible_host.
//
// Output order matches input order and nothing is deduplicated. The first
// invalid device aborts the batch and no partial result is returned. Input
// records are never modified.
func NormalizeHosts(devices []models.Device, policy models.AddressPolicy, identityField string) ([]models.Device, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	if identityField == "" {
		identityField = models.DefaultIdentityField
	}

	hosts := make([]models.Device, 0, len(devices))

	for _, device := range devices {
		if !device.Has(identityField) {
			return nil, &MissingIdentityFieldError{Field: identityField, Device: device}
		}

		host := device.Clone()

		if policy.Enabled() {
			address, err := ResolveAddress(device, policy)
			if err != nil {
				return nil, err
			}

			host[models.FactAnsibleHost] = address
		}

		hosts = append(hosts, host)
	}

	return hosts, nil
}

// ResolveAddress returns the field of device selected by policy. A disabled
// policy resolves to "" without error.
func ResolveAddress(device models.Device, policy models.AddressPolicy) (string, error) {
	var (
		address string
		reason  string
	)

	switch policy {
	case models.PolicyIPv4:
		address, reason = addressOfFamily(device, ipv4Index, netip.Addr.Is4)
	case models.PolicyIPv6:
		address, reason = addressOfFamily(device, ipv6Index, isIPv6)
	case models.PolicyHostname:
		address, reason = device.Hostname(), "hostname is empty or missing"
	case models.PolicyFQDN:
		address, reason = device.FQDN(), "name is empty or missing"
	case "", models.PolicyDisabled:
		return "", nil
	default:
		return "", policy.Validate()
	}

	if address == "" {
		return "", &UnresolvedAddressError{Policy: policy, Device: device, Reason: reason}
	}

	return address, nil
}

func isIPv6(addr netip.Addr) bool {
	return addr.Is6() && !addr.Is4In6()
}

// addressOfFamily reads addresses[index] and checks it belongs to the
// expected family instead of trusting the position alone.
func addressOfFamily(device models.Device, index int, wantFamily func(netip.Addr) bool) (address, reason string) {
	addresses := device.Addresses()
	if index >= len(addresses) {
		return "", "address list has no entry at the expected position"
	}

	raw := addresses[index]
	if raw == "" {
		return "", "address entry is empty"
	}

	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return "", "address entry is not an IP address"
	}

	if !wantFamily(addr) {
		return "", "address entry belongs to the wrong family"
	}

	return raw, ""
}
