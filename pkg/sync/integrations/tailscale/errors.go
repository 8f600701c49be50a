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
	"errors"
	"fmt"

	"github.com/carverauto/tailscale-inventory/pkg/models"
)

var (
	// ErrFetchFailed wraps every transport, status or decoding failure talking to the API.
	ErrFetchFailed = errors.New("failed to fetch devices from Tailscale")
	// ErrMissingIdentityField is returned when a device lacks the configured join key.
	ErrMissingIdentityField = errors.New("match_inventory_hostname not found in device")
	// ErrUnresolvedAddress is returned when the selected address policy yields no value.
	ErrUnresolvedAddress = errors.New("connection address could not be resolved")

	errUnexpectedStatusCode = errors.New("unexpected status code")
	errMissingDevicesField  = errors.New("response has no devices field")
)

// MissingIdentityFieldError reports the device that lacked the identity field.
type MissingIdentityFieldError struct {
	Field  string
	Device models.Device
}

func (e *MissingIdentityFieldError) Error() string {
	return fmt.Sprintf("%s: %q (device: %v)", ErrMissingIdentityField.Error(), e.Field, e.Device)
}

func (*MissingIdentityFieldError) Unwrap() error {
	return ErrMissingIdentityField
}

// UnresolvedAddressError reports the device and policy that produced no address.
type UnresolvedAddressError struct {
	Policy models.AddressPolicy
	Device models.Device
	Reason string
}

func (e *UnresolvedAddressError) Error() string {
	return fmt.Sprintf("%s for policy %s: %s (device: %v)", ErrUnresolvedAddress.Error(), e.Policy, e.Reason, e.Device)
}

func (*UnresolvedAddressError) Unwrap() error {
	return ErrUnresolvedAddress
}
