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
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

const metaKey = "_meta"

type group struct {
	hosts []string
	index map[string]struct{}
}

func newGroup() *group {
	return &group{index: make(map[string]struct{})}
}

func (g *group) add(host string) {
	if _, ok := g.index[host]; ok {
		return
	}

	g.index[host] = struct{}{}
	g.hosts = append(g.hosts, host)
}

// AnsibleInventory is an in-memory Inventory that renders the JSON
// understood by Ansible dynamic inventory scripts.
type AnsibleInventory struct {
	mu       sync.RWMutex
	groups   map[string]*group
	order    []string
	hosts    []string
	hostvars map[string]map[string]interface{}
}

var _ Inventory = (*AnsibleInventory)(nil)

// NewAnsibleInventory returns an empty inventory.
func NewAnsibleInventory() *AnsibleInventory {
	return &AnsibleInventory{
		groups:   make(map[string]*group),
		hostvars: make(map[string]map[string]interface{}),
	}
}

func (a *AnsibleInventory) HasHost(name string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, ok := a.hostvars[name]

	return ok
}

// AddGroup creates group if it does not exist yet. "all" always exists.
func (a *AnsibleInventory) AddGroup(name string) error {
	if name == "" {
		return fmt.Errorf("group: %w", ErrEmptyName)
	}

	if name == GroupAll {
		return nil
	}

	if isReserved(name) {
		return fmt.Errorf("%w: %s", ErrReservedName, name)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.ensureGroup(name)

	return nil
}

// AddHost registers a host. Adding to "all" only registers it; any other
// group is created on demand and the host becomes its member.
func (a *AnsibleInventory) AddHost(name, groupName string) error {
	if name == "" {
		return fmt.Errorf("host: %w", ErrEmptyName)
	}

	if isReserved(groupName) {
		return fmt.Errorf("%w: %s", ErrReservedName, groupName)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.hostvars[name]; !ok {
		a.hostvars[name] = make(map[string]interface{})
		a.hosts = append(a.hosts, name)
	}

	if groupName != "" && groupName != GroupAll {
		a.ensureGroup(groupName).add(name)
	}

	return nil
}

// AddToGroup makes an existing host a member of an existing group.
func (a *AnsibleInventory) AddToGroup(groupName, host string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.hostvars[host]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHost, host)
	}

	if groupName == GroupAll {
		return nil
	}

	g, ok := a.groups[groupName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGroup, groupName)
	}

	g.add(host)

	return nil
}

// SetFact sets a host variable, replacing any previous value.
func (a *AnsibleInventory) SetFact(host, key string, value interface{}) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	vars, ok := a.hostvars[host]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHost, host)
	}

	vars[key] = value

	return nil
}

// Hosts returns host names in insertion order.
func (a *AnsibleInventory) Hosts() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return append([]string(nil), a.hosts...)
}

// GroupHosts returns the members of a group in insertion order.
func (a *AnsibleInventory) GroupHosts(name string) ([]string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	g, ok := a.groups[name]
	if !ok {
		return nil, false
	}

	return append([]string(nil), g.hosts...), true
}

// HostVars returns a copy of the variables set on host.
func (a *AnsibleInventory) HostVars(host string) (map[string]interface{}, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	vars, ok := a.hostvars[host]
	if !ok {
		return nil, false
	}

	out := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		out[k] = v
	}

	return out, true
}

// List builds the document printed for --list. Hosts that belong to no
// explicit group are reported under "ungrouped".
func (a *AnsibleInventory) List() map[string]interface{} {
	a.mu.RLock()
	defer a.mu.RUnlock()

	doc := make(map[string]interface{}, len(a.groups)+2)
	children := append([]string(nil), a.order...)

	grouped := make(map[string]struct{}, len(a.hosts))

	for _, name := range a.order {
		g := a.groups[name]
		for _, h := range g.hosts {
			grouped[h] = struct{}{}
		}

		doc[name] = map[string]interface{}{"hosts": copyHosts(g.hosts)}
	}

	var ungrouped []string

	for _, h := range a.hosts {
		if _, ok := grouped[h]; !ok {
			ungrouped = append(ungrouped, h)
		}
	}

	if len(ungrouped) > 0 {
		children = append(children, GroupUngrouped)
		doc[GroupUngrouped] = map[string]interface{}{"hosts": ungrouped}
	}

	sort.Strings(children)

	doc[GroupAll] = map[string]interface{}{
		"children": copyHosts(children),
		"hosts":    copyHosts(a.hosts),
	}

	hostvars := make(map[string]interface{}, len(a.hostvars))
	for h, vars := range a.hostvars {
		cp := make(map[string]interface{}, len(vars))
		for k, v := range vars {
			cp[k] = v
		}

		hostvars[h] = cp
	}

	doc[metaKey] = map[string]interface{}{"hostvars": hostvars}

	return doc
}

// ListJSON renders List as indented JSON.
func (a *AnsibleInventory) ListJSON() ([]byte, error) {
	return json.MarshalIndent(a.List(), "", "  ")
}

// HostJSON renders the variables of a single host. Unknown hosts render as
// an empty object, which is what Ansible expects from --host.
func (a *AnsibleInventory) HostJSON(host string) ([]byte, error) {
	vars, ok := a.HostVars(host)
	if !ok {
		vars = map[string]interface{}{}
	}

	return json.MarshalIndent(vars, "", "  ")
}

func (a *AnsibleInventory) ensureGroup(name string) *group {
	if g, ok := a.groups[name]; ok {
		return g
	}

	g := newGroup()
	a.groups[name] = g
	a.order = append(a.order, name)

	return g
}

// isReserved reports names that List computes itself.
func isReserved(name string) bool {
	return name == GroupUngrouped || name == metaKey
}

func copyHosts(s []string) []string {
	return append(make([]string, 0, len(s)), s...)
}
