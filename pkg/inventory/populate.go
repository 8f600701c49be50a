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

package inventory

import (
	"context"
	"fmt"

	"github.com/carverauto/tailscale-inventory/pkg/logger"
	"github.com/carverauto/tailscale-inventory/pkg/models"
	"github.com/carverauto/tailscale-inventory/pkg/sync"
)

// Options controls how hosts are attached to the inventory.
type Options struct {
	Group         string
	IdentityField string
	Policy        models.AddressPolicy
}

// Populate adds every host to inv. Hosts not yet known are added to "all",
// each is made a member of opts.Group, the full record is stored under the
// "tailscale" fact and, when the policy is enabled, ansible_host is set.
// When two records share an identity the later one wins.
func Populate(inv Inventory, hosts []models.Device, opts Options) error {
	if opts.Group == "" {
		opts.Group = models.DefaultGroup
	}

	if opts.IdentityField == "" {
		opts.IdentityField = models.DefaultIdentityField
	}

	if err := inv.AddGroup(opts.Group); err != nil {
		return err
	}

	for _, host := range hosts {
		name, ok := host.Identity(opts.IdentityField)
		if !ok {
			return fmt.Errorf("%w: field %q", ErrEmptyHostID, opts.IdentityField)
		}

		if !inv.HasHost(name) {
			if err := inv.AddHost(name, GroupAll); err != nil {
				return err
			}
		}

		if err := inv.AddToGroup(opts.Group, name); err != nil {
			return err
		}

		if err := inv.SetFact(name, models.FactTailscale, host); err != nil {
			return err
		}

		if opts.Policy.Enabled() {
			if err := inv.SetFact(name, models.FactAnsibleHost, host[models.FactAnsibleHost]); err != nil {
				return err
			}
		}
	}

	return nil
}

// Sync fetches hosts from src and populates inv with them. Nothing is added
// to inv when the fetch fails.
func Sync(ctx context.Context, src sync.Integration, inv Inventory, opts Options, log logger.Logger) error {
	hosts, err := src.Fetch(ctx)
	if err != nil {
		return err
	}

	if err := Populate(inv, hosts, opts); err != nil {
		return err
	}

	log.Debug().
		Int("host_count", len(hosts)).
		Str("group", opts.Group).
		Msg("Populated inventory")

	return nil
}
