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

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/carverauto/tailscale-inventory/pkg/logger"
)

var (
	errInvalidConfigSource = errors.New("invalid CONFIG_SOURCE value")
)

const (
	configSourceFile = "file"
	configSourceEnv  = "env"

	// DefaultEnvPrefix is prepended to every environment override.
	DefaultEnvPrefix = "TAILSCALE_INVENTORY_"
)

// ConfigLoader reads configuration from some source into dst.
type ConfigLoader interface {
	Load(ctx context.Context, path string, dst interface{}) error
}

// Validator is implemented by configs that check and default themselves.
type Validator interface {
	Validate() error
}

// Config holds the configuration loading dependencies.
type Config struct {
	defaultLoader ConfigLoader
	envLoader     ConfigLoader
	logger        logger.Logger
}

// NewConfig initializes a new Config instance with a default file loader and logger.
// If log is nil, a warn-level stderr logger is used.
func NewConfig(log logger.Logger) *Config {
	if log == nil {
		log = logger.NewWithWriter(os.Stderr, zerolog.WarnLevel)
	}

	return &Config{
		defaultLoader: NewFileConfigLoader(log),
		envLoader:     NewEnvConfigLoader(log, envPrefix()),
		logger:        log,
	}
}

func envPrefix() string {
	if prefix := os.Getenv("CONFIG_ENV_PREFIX"); prefix != "" {
		return prefix
	}

	return DefaultEnvPrefix
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}

	return v.Validate()
}

// LoadAndValidate loads a configuration, applies environment overrides and validates it.
//
// CONFIG_SOURCE=env skips the file entirely; the default reads path and then
// lets environment variables override individual fields.
func (c *Config) LoadAndValidate(ctx context.Context, path string, cfg interface{}) error {
	source := strings.ToLower(os.Getenv("CONFIG_SOURCE"))

	switch source {
	case configSourceEnv:
		if err := c.envLoader.Load(ctx, path, cfg); err != nil {
			return err
		}
	case configSourceFile, "":
		if err := c.defaultLoader.Load(ctx, path, cfg); err != nil {
			return err
		}

		if err := c.envLoader.Load(ctx, path, cfg); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s (expected '%s' or '%s')",
			errInvalidConfigSource, source, configSourceFile, configSourceEnv)
	}

	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	c.logger.Debug().
		Interface("config", Sanitize(cfg)).
		Msg("Loaded configuration")

	return nil
}
