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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnsibleInventory_AddHostAndGroups(t *testing.T) {
	inv := NewAnsibleInventory()

	require.NoError(t, inv.AddGroup("tailscale"))
	require.NoError(t, inv.AddHost("a", GroupAll))
	require.NoError(t, inv.AddHost("b", "web"))
	require.NoError(t, inv.AddToGroup("tailscale", "a"))
	require.NoError(t, inv.AddToGroup("tailscale", "a"))

	assert.True(t, inv.HasHost("a"))
	assert.True(t, inv.HasHost("b"))
	assert.False(t, inv.HasHost("c"))
	assert.Equal(t, []string{"a", "b"}, inv.Hosts())

	members, ok := inv.GroupHosts("tailscale")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, members)

	members, ok = inv.GroupHosts("web")
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, members)

	_, ok = inv.GroupHosts("missing")
	assert.False(t, ok)
}

func TestAnsibleInventory_Errors(t *testing.T) {
	inv := NewAnsibleInventory()

	require.ErrorIs(t, inv.AddGroup(""), ErrEmptyName)
	require.ErrorIs(t, inv.AddHost("", "tailscale"), ErrEmptyName)
	require.ErrorIs(t, inv.SetFact("ghost", "k", "v"), ErrUnknownHost)
	require.ErrorIs(t, inv.AddToGroup("tailscale", "ghost"), ErrUnknownHost)

	require.NoError(t, inv.AddHost("a", GroupAll))
	require.ErrorIs(t, inv.AddToGroup("tailscale", "a"), ErrUnknownGroup)
	require.NoError(t, inv.AddToGroup(GroupAll, "a"))
}

func TestAnsibleInventory_SetFactOverwrites(t *testing.T) {
	inv := NewAnsibleInventory()
	require.NoError(t, inv.AddHost("a", GroupAll))

	require.NoError(t, inv.SetFact("a", "ansible_host", "1.1.1.1"))
	require.NoError(t, inv.SetFact("a", "ansible_host", "2.2.2.2"))

	vars, ok := inv.HostVars("a")
	require.True(t, ok)
	assert.Equal(t, "2.2.2.2", vars["ansible_host"])

	vars["ansible_host"] = "mutated"

	again, _ := inv.HostVars("a")
	assert.Equal(t, "2.2.2.2", again["ansible_host"])
}

func TestAnsibleInventory_ListJSON(t *testing.T) {
	inv := NewAnsibleInventory()

	require.NoError(t, inv.AddGroup("tailscale"))
	require.NoError(t, inv.AddHost("l380-eharvey", GroupAll))
	require.NoError(t, inv.AddToGroup("tailscale", "l380-eharvey"))
	require.NoError(t, inv.SetFact("l380-eharvey", "ansible_host", "100.64.0.1"))
	require.NoError(t, inv.AddHost("loner", GroupAll))

	data, err := inv.ListJSON()
	require.NoError(t, err)

	var doc struct {
		All struct {
			Children []string `json:"children"`
			Hosts    []string `json:"hosts"`
		} `json:"all"`
		Tailscale struct {
			Hosts []string `json:"hosts"`
		} `json:"tailscale"`
		Ungrouped struct {
			Hosts []string `json:"hosts"`
		} `json:"ungrouped"`
		Meta struct {
			Hostvars map[string]map[string]interface{} `json:"hostvars"`
		} `json:"_meta"`
	}

	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, []string{"tailscale", "ungrouped"}, doc.All.Children)
	assert.Equal(t, []string{"l380-eharvey", "loner"}, doc.All.Hosts)
	assert.Equal(t, []string{"l380-eharvey"}, doc.Tailscale.Hosts)
	assert.Equal(t, []string{"loner"}, doc.Ungrouped.Hosts)
	assert.Equal(t, "100.64.0.1", doc.Meta.Hostvars["l380-eharvey"]["ansible_host"])
	assert.Empty(t, doc.Meta.Hostvars["loner"])
}

func TestAnsibleInventory_EmptyListJSON(t *testing.T) {
	data, err := NewAnsibleInventory().ListJSON()
	require.NoError(t, err)

	assert.JSONEq(t, `{"all":{"children":[],"hosts":[]},"_meta":{"hostvars":{}}}`, string(data))
}

func TestAnsibleInventory_HostJSON(t *testing.T) {
	inv := NewAnsibleInventory()
	require.NoError(t, inv.AddHost("a", GroupAll))
	require.NoError(t, inv.SetFact("a", "ansible_host", "a.tailnet"))

	data, err := inv.HostJSON("a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ansible_host":"a.tailnet"}`, string(data))

	data, err = inv.HostJSON("missing")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestAnsibleInventory_ReservedGroupNames(t *testing.T) {
	inv := NewAnsibleInventory()

	require.ErrorIs(t, inv.AddGroup(metaKey), ErrReservedName)
	require.ErrorIs(t, inv.AddGroup(GroupUngrouped), ErrReservedName)
	require.ErrorIs(t, inv.AddHost("a", metaKey), ErrReservedName)
	assert.False(t, inv.HasHost("a"))

	require.NoError(t, inv.AddHost("a", GroupAll))

	data, err := inv.ListJSON()
	require.NoError(t, err)

	var doc map[string]json.RawMessage

	require.NoError(t, json.Unmarshal(data, &doc))
	assert.JSONEq(t, `{"hostvars":{"a":{}}}`, string(doc[metaKey]))
	assert.JSONEq(t, `{"hosts":["a"]}`, string(doc[GroupUngrouped]))
}
