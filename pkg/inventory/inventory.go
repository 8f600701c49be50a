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

// Package inventory turns normalized hosts into groups, hosts and facts of a
// host inventory. The inventory itself is an interface so the same
// population logic can drive any backing store.
package inventory

import "errors"

const (
	// GroupAll is the implicit group every host belongs to.
	GroupAll = "all"
	// GroupUngrouped collects hosts that belong to no explicit group.
	GroupUngrouped = "ungrouped"
)

var (
	ErrEmptyName    = errors.New("name must not be empty")
	ErrUnknownGroup = errors.New("unknown group")
	ErrUnknownHost  = errors.New("unknown host")
	ErrEmptyHostID  = errors.New("host identity is empty")
	ErrReservedName = errors.New("group name is reserved")
)

//go:generate mockgen -destination=mock_inventory.go -package=inventory github.com/carverauto/tailscale-inventory/pkg/inventory Inventory

// Inventory is the capability the population logic needs from a host inventory.
type Inventory interface {
	HasHost(name string) bool
	AddGroup(group string) error
	AddHost(name, group string) error
	AddToGroup(group, host string) error
	SetFact(host, key string, value interface{}) error
}
