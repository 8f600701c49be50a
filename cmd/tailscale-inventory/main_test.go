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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/tailscale-inventory/pkg/models"
)

const devicesBody = `{"devices":[
	{"hostname":"l380-eharvey","name":"l380-eharvey.tailnet","addresses":["100.64.0.1","fd7a::1"]},
	{"hostname":"nas","name":"nas.tailnet","addresses":["100.64.0.2","fd7a::2"]}
]}`

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"CONFIG_SOURCE",
		"CONFIG_ENV_PREFIX",
		"LOG_LEVEL",
		"DEBUG",
		"TAILSCALE_INVENTORY_API_KEY",
		"TAILSCALE_INVENTORY_ENDPOINT",
		"TAILSCALE_INVENTORY_OVERWRITE_ANSIBLE_HOST",
		"TAILSCALE_INVENTORY_CONFIG_JSON",
		"TAILSCALE_INVENTORY_LOGGING_LEVEL",
		"TAILSCALE_INVENTORY_LOGGING_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func newDevicesServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tskey-test" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(devicesBody))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func writeConfig(t *testing.T, endpoint, policy string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tailscale.yml")
	body := fmt.Sprintf(`plugin: ehharvey.tailscale.current_hosts
api_key: tskey-test
overwrite_ansible_host: %s
endpoint: %s
`, policy, endpoint)

	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_List(t *testing.T) {
	clearEnv(t)

	srv := newDevicesServer(t)
	path := writeConfig(t, srv.URL, "ipv4")

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-config", path, "-list"}, &stdout, &stderr)
	require.NoError(t, err)

	var doc map[string]json.RawMessage

	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	require.Contains(t, doc, "tailscale")
	require.Contains(t, doc, "_meta")

	var group struct {
		Hosts []string `json:"hosts"`
	}

	require.NoError(t, json.Unmarshal(doc["tailscale"], &group))
	assert.Equal(t, []string{"l380-eharvey", "nas"}, group.Hosts)

	var meta struct {
		Hostvars map[string]map[string]interface{} `json:"hostvars"`
	}

	require.NoError(t, json.Unmarshal(doc["_meta"], &meta))
	assert.Equal(t, "100.64.0.1", meta.Hostvars["l380-eharvey"][models.FactAnsibleHost])
	assert.Equal(t, "100.64.0.2", meta.Hostvars["nas"][models.FactAnsibleHost])
}

func TestRun_Host(t *testing.T) {
	clearEnv(t)

	srv := newDevicesServer(t)
	path := writeConfig(t, srv.URL, "fqdn")

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-config", path, "-host", "nas"}, &stdout, &stderr)
	require.NoError(t, err)

	var vars map[string]interface{}

	require.NoError(t, json.Unmarshal(stdout.Bytes(), &vars))
	assert.Equal(t, "nas.tailnet", vars[models.FactAnsibleHost])
	assert.Contains(t, vars, models.FactTailscale)
}

func TestRun_UnresolvedAddressFails(t *testing.T) {
	clearEnv(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"devices":[{"hostname":"v4only","addresses":["100.64.0.9"]}]}`))
	}))
	t.Cleanup(srv.Close)

	path := writeConfig(t, srv.URL, "ipv6")

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-config", path}, &stdout, &stderr)
	require.Error(t, err)
	assert.Empty(t, stdout.String())
}

func TestRun_APIErrorFails(t *testing.T) {
	clearEnv(t)

	srv := newDevicesServer(t)
	path := writeConfig(t, srv.URL, "false")

	t.Setenv("TAILSCALE_INVENTORY_API_KEY", "tskey-wrong")

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-config", path, "-list"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Empty(t, stdout.String())
}

func TestRun_MissingConfig(t *testing.T) {
	clearEnv(t)

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "nope.yml")}, &stdout, &stderr)
	require.Error(t, err)
}

func TestRun_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-env-file", filepath.Join(t.TempDir(), "missing.env")}, &stdout, &stderr)
	require.Error(t, err)
}

func TestParseFlags_ListAndHostExclusive(t *testing.T) {
	var stderr bytes.Buffer

	_, err := parseFlags([]string{"-list", "-host", "a"}, &stderr)
	require.ErrorIs(t, err, errListAndHost)
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"-version"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "tailscale-inventory dev")
}

func TestRun_LogLevelFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")

	srv := newDevicesServer(t)
	path := writeConfig(t, srv.URL, "hostname")

	var stdout, stderr bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"-config", path, "-list"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `"level":"debug"`)
	assert.Contains(t, stderr.String(), "Inventory run complete")

	var doc map[string]json.RawMessage

	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
}

func TestRun_DefaultLogLevelHidesDebug(t *testing.T) {
	clearEnv(t)

	srv := newDevicesServer(t)
	path := writeConfig(t, srv.URL, "hostname")

	var stdout, stderr bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"-config", path, "-list"}, &stdout, &stderr))
	assert.NotContains(t, stderr.String(), "Inventory run complete")
}
