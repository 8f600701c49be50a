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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidPolicy is returned for overwrite_ansible_host values outside the known set.
	ErrInvalidPolicy = errors.New("invalid overwrite_ansible_host value")
	// ErrAmbiguousPolicy is returned for overwrite_ansible_host: true, which does not name an address.
	ErrAmbiguousPolicy = errors.New("overwrite_ansible_host: true is ambiguous; use ipv4, ipv6, hostname or fqdn")
)

// AddressPolicy selects which device field becomes the connection address.
type AddressPolicy string

const (
	PolicyDisabled AddressPolicy = "disabled"
	PolicyIPv4     AddressPolicy = "ipv4"
	PolicyIPv6     AddressPolicy = "ipv6"
	PolicyHostname AddressPolicy = "hostname"
	PolicyFQDN     AddressPolicy = "fqdn"
)

// ParseAddressPolicy maps a raw overwrite_ansible_host value onto a policy.
// An empty string and "false" both disable the overwrite.
func ParseAddressPolicy(raw string) (AddressPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "no", "off", string(PolicyDisabled):
		return PolicyDisabled, nil
	case string(PolicyIPv4), "ip":
		return PolicyIPv4, nil
	case string(PolicyIPv6):
		return PolicyIPv6, nil
	case string(PolicyHostname):
		return PolicyHostname, nil
	case string(PolicyFQDN):
		return PolicyFQDN, nil
	case "true", "yes", "on":
		return "", ErrAmbiguousPolicy
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, raw)
	}
}

// Enabled reports whether the policy overwrites the connection address.
func (p AddressPolicy) Enabled() bool {
	return p != "" && p != PolicyDisabled
}

// Validate checks that p is one of the known policies.
func (p AddressPolicy) Validate() error {
	switch p {
	case "", PolicyDisabled, PolicyIPv4, PolicyIPv6, PolicyHostname, PolicyFQDN:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPolicy, string(p))
	}
}

func (p AddressPolicy) String() string {
	if p == "" {
		return string(PolicyDisabled)
	}

	return string(p)
}

// UnmarshalText is used by the env loader.
func (p *AddressPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseAddressPolicy(string(text))
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}

// UnmarshalJSON accepts booleans as well as strings.
func (p *AddressPolicy) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*p = PolicyDisabled
		return nil
	case bool:
		return p.UnmarshalText([]byte(fmt.Sprintf("%t", value)))
	case string:
		return p.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, v)
	}
}

// UnmarshalYAML accepts booleans as well as strings.
func (p *AddressPolicy) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a scalar", ErrInvalidPolicy)
	}

	if value.Tag == "!!null" {
		*p = PolicyDisabled
		return nil
	}

	return p.UnmarshalText([]byte(value.Value))
}
