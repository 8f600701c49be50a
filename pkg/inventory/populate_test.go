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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/tailscale-inventory/pkg/logger"
	"github.com/carverauto/tailscale-inventory/pkg/models"
	"github.com/carverauto/tailscale-inventory/pkg/sync"
)

func testHost() models.Device {
	return models.Device{
		"hostname":     "l380-eharvey",
		"name":         "l380-eharvey.tailnet",
		"addresses":    []interface{}{"100.64.0.1", "fd7a::1"},
		"ansible_host": "l380-eharvey.tailnet",
	}
}

func TestPopulate_SetsFacts(t *testing.T) {
	inv := NewAnsibleInventory()
	host := testHost()

	err := Populate(inv, []models.Device{host}, Options{
		Group:  "tailscale",
		Policy: models.PolicyFQDN,
	})
	require.NoError(t, err)

	members, ok := inv.GroupHosts("tailscale")
	require.True(t, ok)
	assert.Equal(t, []string{"l380-eharvey"}, members)

	vars, ok := inv.HostVars("l380-eharvey")
	require.True(t, ok)
	assert.Equal(t, "l380-eharvey.tailnet", vars[models.FactAnsibleHost])
	assert.Equal(t, host, vars[models.FactTailscale])
}

func TestPopulate_DisabledPolicySkipsAnsibleHost(t *testing.T) {
	inv := NewAnsibleInventory()
	host := testHost()
	delete(host, models.FactAnsibleHost)

	require.NoError(t, Populate(inv, []models.Device{host}, Options{Policy: models.PolicyDisabled}))

	vars, ok := inv.HostVars("l380-eharvey")
	require.True(t, ok)
	assert.NotContains(t, vars, models.FactAnsibleHost)
	assert.Contains(t, vars, models.FactTailscale)

	_, ok = inv.GroupHosts(models.DefaultGroup)
	assert.True(t, ok)
}

func TestPopulate_CustomIdentityField(t *testing.T) {
	inv := NewAnsibleInventory()

	hosts := []models.Device{
		{"hostname": "a", "id": float64(7)},
		{"hostname": "b", "id": "node-b"},
	}

	require.NoError(t, Populate(inv, hosts, Options{IdentityField: "id"}))
	assert.Equal(t, []string{"7", "node-b"}, inv.Hosts())
}

func TestPopulate_DuplicateIdentityLastWins(t *testing.T) {
	inv := NewAnsibleInventory()

	hosts := []models.Device{
		{"hostname": "dup", "ansible_host": "100.64.0.1"},
		{"hostname": "dup", "ansible_host": "100.64.0.2"},
	}

	require.NoError(t, Populate(inv, hosts, Options{Policy: models.PolicyIPv4}))

	assert.Equal(t, []string{"dup"}, inv.Hosts())

	vars, _ := inv.HostVars("dup")
	assert.Equal(t, "100.64.0.2", vars[models.FactAnsibleHost])
}

func TestPopulate_EmptyIdentity(t *testing.T) {
	inv := NewAnsibleInventory()

	err := Populate(inv, []models.Device{{"hostname": ""}}, Options{})
	require.ErrorIs(t, err, ErrEmptyHostID)
	assert.Empty(t, inv.Hosts())
}

func TestPopulate_KnownHostIsNotReAdded(t *testing.T) {
	ctrl := gomock.NewController(t)
	inv := NewMockInventory(ctrl)
	host := models.Device{"hostname": "a"}

	gomock.InOrder(
		inv.EXPECT().AddGroup("tailscale").Return(nil),
		inv.EXPECT().HasHost("a").Return(true),
		inv.EXPECT().AddToGroup("tailscale", "a").Return(nil),
		inv.EXPECT().SetFact("a", models.FactTailscale, host).Return(nil),
	)

	require.NoError(t, Populate(inv, []models.Device{host}, Options{Group: "tailscale"}))
}

func TestPopulate_PropagatesInventoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	inv := NewMockInventory(ctrl)
	errBoom := errors.New("boom")

	inv.EXPECT().AddGroup("tailscale").Return(nil)
	inv.EXPECT().HasHost("a").Return(false)
	inv.EXPECT().AddHost("a", GroupAll).Return(errBoom)

	err := Populate(inv, []models.Device{{"hostname": "a"}}, Options{})
	require.ErrorIs(t, err, errBoom)
}

func TestSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := sync.NewMockIntegration(ctrl)
	ctx := context.Background()

	src.EXPECT().Fetch(ctx).Return([]models.Device{testHost()}, nil)

	inv := NewAnsibleInventory()
	err := Sync(ctx, src, inv, Options{Policy: models.PolicyFQDN}, logger.NewTestLogger())
	require.NoError(t, err)
	assert.True(t, inv.HasHost("l380-eharvey"))
}

func TestSync_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := sync.NewMockIntegration(ctrl)
	ctx := context.Background()
	errFetch := errors.New("fetch failed")

	src.EXPECT().Fetch(ctx).Return(nil, errFetch)

	inv := NewAnsibleInventory()
	err := Sync(ctx, src, inv, Options{}, logger.NewTestLogger())
	require.ErrorIs(t, err, errFetch)
	assert.Empty(t, inv.Hosts())
}
