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

// Command tailscale-inventory is an Ansible dynamic inventory that lists the
// devices of a Tailscale tailnet.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"

	"github.com/carverauto/tailscale-inventory/pkg/config"
	"github.com/carverauto/tailscale-inventory/pkg/inventory"
	"github.com/carverauto/tailscale-inventory/pkg/logger"
	"github.com/carverauto/tailscale-inventory/pkg/models"
	"github.com/carverauto/tailscale-inventory/pkg/sync"
	"github.com/carverauto/tailscale-inventory/pkg/sync/integrations"
	"github.com/carverauto/tailscale-inventory/pkg/version"
)

const defaultEnvFile = ".env"

var errListAndHost = errors.New("-list and -host are mutually exclusive")

type options struct {
	configPath  string
	envFile     string
	list        bool
	host        string
	showVersion bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()

	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "tailscale-inventory: %v\n", err)

		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("tailscale-inventory", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}

	fs.StringVar(&opts.configPath, "config", "tailscale.yml", "Path to inventory source file (YAML or JSON)")
	fs.StringVar(&opts.envFile, "env-file", "", "Path to a dotenv file (default: .env if present)")
	fs.BoolVar(&opts.list, "list", false, "Print the whole inventory")
	fs.StringVar(&opts.host, "host", "", "Print the variables of a single host")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.list && opts.host != "" {
		return nil, errListAndHost
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.showVersion {
		_, err = fmt.Fprintln(stdout, "tailscale-inventory", version.GetFullVersion())

		return err
	}

	if opts.envFile != "" {
		err = config.LoadDotEnv(opts.envFile, false)
	} else {
		err = config.LoadDotEnv(defaultEnvFile, true)
	}

	if err != nil {
		return err
	}

	var cfg models.InventoryConfig

	if err = config.NewConfig(bootLogger(stderr)).LoadAndValidate(ctx, opts.configPath, &cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cfg.Logging, stderr)
	if err != nil {
		return err
	}

	metrics, err := sync.NewOTelMetrics(otel.Meter(sync.MeterName), sync.NewInMemoryMetrics(log))
	if err != nil {
		return err
	}

	integration := integrations.NewTailscaleIntegration(ctx, &cfg, log, metrics)
	inv := inventory.NewAnsibleInventory()

	err = inventory.Sync(ctx, integration, inv, inventory.Options{
		Group:         cfg.Group,
		IdentityField: cfg.MatchInventoryHostname,
		Policy:        cfg.OverwriteAnsibleHost,
	}, log)
	if err != nil {
		return err
	}

	log.Debug().
		Interface("metrics", metrics.GetMetrics()).
		Msg("Inventory run complete")

	var out []byte

	if opts.host != "" {
		out, err = inv.HostJSON(opts.host)
	} else {
		out, err = inv.ListJSON()
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, string(out))

	return err
}

// bootLogger is used while the config file, and with it the logging
// section, is still being read. A bad LOG_LEVEL is reported later by
// newLogger, so here it just falls back to warn.
func bootLogger(w io.Writer) logger.Logger {
	log, err := logger.NewForWriter(logger.DefaultConfig(), w)
	if err != nil {
		return logger.NewWithWriter(w, zerolog.WarnLevel)
	}

	return log
}

// newLogger builds the run logger on w. Stdout carries the inventory
// document, so the configured output is ignored.
func newLogger(cfg *logger.Config, w io.Writer) (logger.Logger, error) {
	log, err := logger.NewForWriter(cfg, w)
	if err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}

	return log, nil
}
